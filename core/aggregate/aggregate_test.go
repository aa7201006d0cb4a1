package aggregate

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"genesmith/core/gene"
)

func gp(donorEnd int) gene.Path {
	mk := func(l string, s, e int) gene.Interval {
		return gene.Interval{Label: l, Start: s, End: e, Strand: "+", SequenceID: "chr1"}
	}
	return gene.Path{
		mk("inter", 1, 100),
		mk("start", 101, 103),
		mk("cds", 104, donorEnd-2),
		mk("don", donorEnd-1, donorEnd),
		mk("acc", 300, 301),
		mk("cds", 302, 400),
		mk("stop1", 401, 402),
		mk("stop2", 403, 403),
	}
}

func samples(r *rand.Rand) []gene.Path {
	var paths []gene.Path
	for i := 0; i < 623; i++ {
		paths = append(paths, gp(200))
	}
	for i := 0; i < 377; i++ {
		paths = append(paths, gp(250))
	}
	r.Shuffle(len(paths), func(i, j int) { paths[i], paths[j] = paths[j], paths[i] })
	return paths
}

func TestAggregatePercentages(t *testing.T) {
	e := gene.NewExtractor(nil, "")
	isos, err := Aggregate(e, samples(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	require.Len(t, isos, 2)

	byKey := map[string]Isoform{}
	for _, iso := range isos {
		byKey[iso.Key] = iso
	}
	p1 := byKey[Key(gp(200))]
	p2 := byKey[Key(gp(250))]
	require.Equal(t, "62.300", fmt.Sprintf("%.3f", p1.Support))
	require.Equal(t, "37.700", fmt.Sprintf("%.3f", p2.Support))
	require.Len(t, p1.Records, 2)
	for _, r := range p1.Records {
		require.True(t, r.Sampled)
		require.Equal(t, p1.Index, r.Isoform)
		require.Equal(t, 62.3, r.Support)
	}
}

func TestAggregateIndependentOfOrder(t *testing.T) {
	e := gene.NewExtractor(nil, "")
	a, err := Aggregate(e, samples(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	b, err := Aggregate(e, samples(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Less(t, a[0].Key, a[1].Key)
	require.Equal(t, 0, a[0].Index)
	require.Equal(t, 1, a[1].Index)
}

func TestAggregateNoSamples(t *testing.T) {
	isos, err := Aggregate(gene.NewExtractor(nil, ""), nil)
	require.ErrorIs(t, err, ErrNoSamples)
	require.Empty(t, isos)
}

func TestKeyIgnoresScores(t *testing.T) {
	a, b := gp(200), gp(200)
	b[2].Score = 42
	require.Equal(t, Key(a), Key(b))
	require.NotEqual(t, Key(a), Key(gp(250)))
	require.Equal(t, "", Key(nil))
	require.Equal(t, "|x:1-2|;|y:3-4|", Key(gene.Path{{Label: "x", Start: 1, End: 2}, {Label: "y", Start: 3, End: 4}}))
	require.Equal(t, "chr1|inter:1-100|+", Key(gp(200)[:1]))
}

func TestKeySeparatesStrandAndSequence(t *testing.T) {
	minus := gp(200)
	for i := range minus {
		minus[i].Strand = "-"
	}
	require.NotEqual(t, Key(gp(200)), Key(minus))

	other := gp(200)
	other[0].SequenceID = "chr2"
	require.NotEqual(t, Key(gp(200)), Key(other))
}

func TestKeyEscapesSeparatorsInLabels(t *testing.T) {
	a := gene.Path{{Label: "x:1-2;y", Start: 3, End: 4}}
	b := gene.Path{{Label: "x", Start: 1, End: 2}, {Label: "y", Start: 3, End: 4}}
	require.NotEqual(t, Key(a), Key(b))
	require.Equal(t, `|x\:1-2\;y:3-4|`, Key(a))

	c := gene.Path{{Label: `a\`, Start: 1, End: 1}}
	d := gene.Path{{Label: "a", Start: 1, End: 1}}
	require.NotEqual(t, Key(c), Key(d))
}

func TestAggregateStrandAndScoreIndependentOfOrder(t *testing.T) {
	mk := func(score float64, strand string) gene.Path {
		p := gp(200)
		for i := range p {
			p[i].Strand = strand
			p[i].Score = score
		}
		return p
	}
	e := gene.NewExtractor(nil, "")

	fwd, err := Aggregate(e, []gene.Path{mk(1, "+"), mk(9, "-")})
	require.NoError(t, err)
	rev, err := Aggregate(e, []gene.Path{mk(9, "-"), mk(1, "+")})
	require.NoError(t, err)
	require.Equal(t, fwd, rev)
	require.Len(t, fwd, 2, "strands are distinct isoforms")
	for _, iso := range fwd {
		require.Equal(t, 50.0, iso.Support)
	}

	fwd, err = Aggregate(e, []gene.Path{mk(1, "+"), mk(9, "+"), mk(5, "+")})
	require.NoError(t, err)
	rev, err = Aggregate(e, []gene.Path{mk(5, "+"), mk(9, "+"), mk(1, "+")})
	require.NoError(t, err)
	require.Equal(t, Records(fwd), Records(rev))
	require.Len(t, fwd, 1)
	require.Equal(t, 1.0, fwd[0].Records[0].Score, "lowest-scoring representative is kept")
}

func TestSupportRounding(t *testing.T) {
	require.Equal(t, 33.333, Support(1, 3))
	require.Equal(t, 66.667, Support(2, 3))
	require.Equal(t, 0.0, Support(1, 0))
}

func TestMinSupportAndByFrequency(t *testing.T) {
	isos, err := Aggregate(gene.NewExtractor(nil, ""), samples(rand.New(rand.NewSource(3))))
	require.NoError(t, err)

	ranked := ByFrequency(isos)
	require.Equal(t, 623, ranked[0].Count)

	kept := MinSupport(isos, 50)
	require.Len(t, kept, 1)
	require.Equal(t, 623, kept[0].Count)
	require.Len(t, isos, 2, "MinSupport must not modify its input")

	require.Len(t, Records(isos), 4)
}
