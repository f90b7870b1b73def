package kmer

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['U'] = 'A'
	complement['R'] = 'Y'
	complement['Y'] = 'R'
	complement['S'] = 'S'
	complement['W'] = 'W'
	complement['K'] = 'M'
	complement['M'] = 'K'
	complement['B'] = 'V'
	complement['V'] = 'B'
	complement['D'] = 'H'
	complement['H'] = 'D'
	complement['N'] = 'N'
	for _, b := range []byte("acgturyswkmbdhvn") {
		complement[b] = complement[b-'a'+'A'] + 'a' - 'A'
	}
}

// ReverseComplement returns the reverse complement of seq. Symbols outside
// the IUPAC nucleotide alphabet map to 'N'.
func ReverseComplement(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return string(out)
}

// Canonical returns the lexicographically smaller of kmer and its reverse
// complement.
func Canonical(kmer string) string {
	if rc := ReverseComplement(kmer); rc < kmer {
		return rc
	}
	return kmer
}
