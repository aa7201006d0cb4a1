// Package writers turns CDS records and candidate scores into serialized
// outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV/JSON/JSONL/FASTA).
//   - Core packages stay domain-only; appcore stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
//
// Every Start* function returns an input channel and an error channel that
// yields exactly one value after the input channel is closed and all output
// is written.
package writers
