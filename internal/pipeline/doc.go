// Package pipeline streams reads from FASTA/FASTQ files into a visit
// callback, one read at a time and in file order.
//
// Decoding runs in a producer goroutine so I/O overlaps with processing;
// the visit callback always runs in a single consumer goroutine, which is
// what the single-threaded processors require.
package pipeline
