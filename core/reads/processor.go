package reads

// RawRead is one decoded read. Sequence is what processors consume; the
// rest identifies the read and travels with it for reporting.
type RawRead struct {
	Name     string
	Comment  string
	Sequence string
	Quality  string // FASTQ only
}

// Len is the sequence length in symbols.
func (r RawRead) Len() int { return len(r.Sequence) }

// Processor consumes one read at a time. Implementations apply a read
// completely or, on malformed input, return an error and leave their
// state untouched.
type Processor interface {
	ProcessRead(sequence string) error
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(sequence string) error

func (f ProcessorFunc) ProcessRead(sequence string) error { return f(sequence) }

// Feed pushes rs into p in order and returns how many were applied before
// the first error.
func Feed(p Processor, rs ...RawRead) (int, error) {
	for i, r := range rs {
		if err := p.ProcessRead(r.Sequence); err != nil {
			return i, err
		}
	}
	return len(rs), nil
}

// FeedSequences is Feed for bare sequence strings.
func FeedSequences(p Processor, seqs ...string) (int, error) {
	for i, s := range seqs {
		if err := p.ProcessRead(s); err != nil {
			return i, err
		}
	}
	return len(seqs), nil
}
