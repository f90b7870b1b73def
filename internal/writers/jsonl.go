// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"readsanalyzer/internal/jsonlutil"
	"readsanalyzer/internal/output"
	"readsanalyzer/pkg/api"
)

// StartKmerJSONLWriter streams each k-mer count as one JSON line (v1).
func StartKmerJSONLWriter(out io.Writer, bufSize int) (chan<- api.KmerCountV1, <-chan error) {
	return jsonlutil.Start[api.KmerCountV1](out, bufSize,
		func(enc *json.Encoder, c api.KmerCountV1) error {
			return enc.Encode(c)
		},
		IsBrokenPipe,
	)
}

// WriteKmerJSONL writes the table of r as JSON lines in first-observation
// order.
func WriteKmerJSONL(w io.Writer, r output.KmerResult) error {
	in, done := StartKmerJSONLWriter(w, 256)
	r.Table.Each(func(k string, n int) bool {
		in <- api.KmerCountV1{Kmer: k, Count: n}
		return true
	})
	close(in)
	return <-done
}
