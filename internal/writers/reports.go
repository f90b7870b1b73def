package writers

import (
	"readsanalyzer/internal/output"
)

// Report writers per tool.
var (
	Kmer     = NewRegistry[output.KmerResult]("k-mer")
	Assembly = NewRegistry[output.AssemblyResult]("assembly")
)

func init() {
	Kmer.Register(output.FormatText, output.WriteKmerText)
	Kmer.Register(output.FormatTSV, output.WriteKmerTSV)
	Kmer.Register(output.FormatJSON, output.WriteKmerJSON)
	Kmer.Register(output.FormatJSONL, WriteKmerJSONL)

	Assembly.Register(output.FormatText, output.WriteAssemblyText)
	Assembly.Register(output.FormatJSON, output.WriteAssemblyJSON)
	Assembly.Register(output.FormatFASTA, output.WriteAssemblyFASTA)
}
