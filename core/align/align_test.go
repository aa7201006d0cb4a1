package align

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlosum62Spot(t *testing.T) {
	m, err := Lookup("blosum62")
	require.NoError(t, err)
	require.Equal(t, 4, m.Score('A', 'A'))
	require.Equal(t, 11, m.Score('W', 'W'))
	require.Equal(t, -4, m.Score('L', 'D'))
	require.Equal(t, m.Score('Y', 'H'), m.Score('h', 'y'))
	require.Equal(t, -1, m.Score('X', 'X'), "unknown residues score as X")
	require.Equal(t, -1, m.Score('J', 'A'))
}

func TestBlosum62Symmetric(t *testing.T) {
	m := builtin["BLOSUM62"]
	const res = "ARNDCQEGHILKMFPSTWYVBZX*"
	for i := 0; i < len(res); i++ {
		for j := 0; j < len(res); j++ {
			require.Equal(t, m.Score(res[i], res[j]), m.Score(res[j], res[i]))
		}
	}
}

func TestAlignIdentity(t *testing.T) {
	m, err := Lookup("IDENTITY")
	require.NoError(t, err)
	a := Aligner{Matrix: m}

	v, err := a.Align([]byte("MKV"), []byte("AAMKVAA"))
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	v, err = a.Align([]byte("WWW"), []byte("AAA"))
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	v, err = a.Align(nil, []byte("AAA"))
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestAlignSelfScoreIsMaximal(t *testing.T) {
	a := Aligner{Matrix: builtin["BLOSUM62"]}
	self, err := a.Align([]byte("MKTAYIAKQR"), []byte("MKTAYIAKQR"))
	require.NoError(t, err)
	other, err := a.Align([]byte("MKTAYIAKQR"), []byte("MKTGYIPKQR"))
	require.NoError(t, err)
	require.Greater(t, self, other)
}

func TestLookupFileAndUnknown(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tiny.mat")
	require.NoError(t, os.WriteFile(fn, []byte("# tiny\n  A C\nA 2 -1\nC -1 3\n"), 0o644))
	m, err := Lookup(fn)
	require.NoError(t, err)
	require.Equal(t, 3, m.Score('C', 'C'))
	require.Equal(t, -1, m.Score('A', 'W'), "unknown falls back to matrix minimum")

	_, err = Lookup("PAM9000")
	require.ErrorIs(t, err, ErrUnknownMatrix)
}

func TestParseMatrixErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"ragged":    "A C\nA 1\n",
		"bad score": "A C\nA 1 x\nC 1 1\n",
		"order":     "A C\nC 1 1\nA 1 1\n",
		"empty":     "",
	} {
		_, err := ParseMatrix(strings.NewReader(doc), name)
		require.Errorf(t, err, "case %s", name)
	}
}

func TestAlignerWithoutMatrix(t *testing.T) {
	_, err := Aligner{}.Align([]byte("A"), []byte("A"))
	require.Error(t, err)
}
