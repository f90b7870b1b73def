// Package reads holds what both read processors share: the RawRead value,
// the Processor capability, the error kinds surfaced by processor queries,
// and a FASTA/FASTQ read source.
//
// Processors (core/kmer, core/overlap) depend on this package and never on
// the read source or any output layer; keep it that way.
package reads
