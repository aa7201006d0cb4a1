package output

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatFASTA = "fasta" // genesmith-score only: accepted proteins
)

// ScoreTSVHeader is the header row of genesmith-score text output.
const ScoreTSVHeader = "id\tframe\tprotein\tverdict\tscore"

// FeatureSuffix introduces the support column of sampled CDS lines.
const FeatureSuffix = ":percentage_reps="
