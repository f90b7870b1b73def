// pkg/api/reports_v1.go
package api

// RunV1 identifies one tool invocation. Embedded in every report.
type RunV1 struct {
	RunID   string   `json:"run_id"`
	Tool    string   `json:"tool"`
	Version string   `json:"version"`
	Inputs  []string `json:"inputs"`
	Reads   int      `json:"reads"`
	Bases   int64    `json:"bases"`
}

// KmerCountV1 is one k-mer and its abundance (JSON array element / JSONL line).
type KmerCountV1 struct {
	Kmer  string `json:"kmer"`
	Count int    `json:"count"`
}

// KmerReportV1 is the stable JSON schema of rs-kmers.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type KmerReportV1 struct {
	RunV1
	K                     int           `json:"k"`
	Canonical             bool          `json:"canonical"`
	TotalKmers            int           `json:"total_kmers"`
	DistinctKmers         int           `json:"distinct_kmers"`
	AbundanceDistribution []int         `json:"abundance_distribution"`
	Counts                []KmerCountV1 `json:"counts,omitempty"`
}

// OverlapV1 is one overlap-graph edge.
type OverlapV1 struct {
	Source  string `json:"source"`
	Dest    string `json:"dest"`
	Overlap int    `json:"overlap"`
}

// AssemblyReportV1 is the stable JSON schema of rs-assemble.
type AssemblyReportV1 struct {
	RunV1
	MinOverlap            int         `json:"min_overlap"`
	SelfLoops             bool        `json:"self_loops"`
	SourcePolicy          string      `json:"source_policy"`
	DistinctSequences     int         `json:"distinct_sequences"`
	Edges                 int         `json:"edges"`
	AbundanceDistribution []int       `json:"abundance_distribution"`
	OverlapDistribution   []int       `json:"overlap_distribution"`
	Source                string      `json:"source,omitempty"`
	Layout                []OverlapV1 `json:"layout"`
	Assembly              string      `json:"assembly"`
	AssemblyLength        int         `json:"assembly_length"`
	AssemblyError         string      `json:"assembly_error,omitempty"`
}
