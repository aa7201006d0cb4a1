// Package pipeline feeds decoder jobs to a visit callback, one at a time.
//
// Jobs come from FASTA files in command-line order, or, when no file is
// given, from a decoder that lists its own inputs (decoder.JobLister).
// Each job is fully visited before the next one is read.
package pipeline
