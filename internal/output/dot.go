package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

const dotGraphName = "overlaps"

// layoutEdge identifies an edge independent of its overlap length.
type layoutEdge struct{ src, dst string }

// DOT builds a Graphviz graph of r.Graph. Nodes are named r1, r2, ... in
// insertion order and labelled with length and abundance; the full sequence
// goes into the tooltip. Edge labels carry the overlap length and layout
// edges are drawn bold red.
func DOT(r AssemblyResult) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(dotGraphName); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}

	onPath := make(map[layoutEdge]bool, len(r.Path))
	for _, o := range r.Path {
		onPath[layoutEdge{o.Source(), o.Dest()}] = true
	}

	ids := make(map[string]string, r.Graph.Len())
	for i, seq := range r.Graph.DistinctSequences() {
		id := "r" + strconv.Itoa(i+1)
		ids[seq] = id
		n, _ := r.Graph.SequenceAbundance(seq)
		attrs := map[string]string{
			"label":   strconv.Quote(fmt.Sprintf("%s len=%d x%d", id, len(seq), n)),
			"tooltip": strconv.Quote(seq),
		}
		if seq == r.Source {
			attrs["shape"] = "box"
		}
		if err := g.AddNode(dotGraphName, id, attrs); err != nil {
			return nil, err
		}
	}

	for _, o := range r.Graph.Edges() {
		attrs := map[string]string{"label": strconv.Itoa(o.Length())}
		if onPath[layoutEdge{o.Source(), o.Dest()}] {
			attrs["color"] = "red"
			attrs["penwidth"] = "2"
		}
		if err := g.AddEdge(ids[o.Source()], ids[o.Dest()], true, attrs); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// WriteAssemblyDOT writes the overlap graph in Graphviz DOT syntax.
func WriteAssemblyDOT(w io.Writer, r AssemblyResult) error {
	g, err := DOT(r)
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	_, err = io.WriteString(w, g.String())
	return err
}
