package overlap

import "fmt"

// Overlap is an immutable edge: the last Length symbols of Source equal the
// first Length symbols of Dest. Values are comparable and usable as map keys.
type Overlap struct {
	src    string
	dst    string
	length int
}

// NewOverlap builds an edge value.
func NewOverlap(src, dst string, length int) Overlap {
	return Overlap{src: src, dst: dst, length: length}
}

func (o Overlap) Source() string { return o.src }
func (o Overlap) Dest() string   { return o.dst }
func (o Overlap) Length() int    { return o.length }

// Extension is the part of Dest that lies beyond the overlap.
func (o Overlap) Extension() string { return o.dst[o.length:] }

func (o Overlap) String() string {
	return fmt.Sprintf("%s->%s (%d)", o.src, o.dst, o.length)
}
