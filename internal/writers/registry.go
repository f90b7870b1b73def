package writers

import (
	"fmt"
	"io"
	"sort"
)

// Registry maps an output format to the function that renders a T.
type Registry[T any] struct {
	name string
	fns  map[string]func(io.Writer, T) error
}

// NewRegistry returns an empty registry; name appears in errors.
func NewRegistry[T any](name string) *Registry[T] {
	return &Registry[T]{name: name, fns: map[string]func(io.Writer, T) error{}}
}

// Register adds or replaces (last wins) the writer for format.
func (r *Registry[T]) Register(format string, fn func(io.Writer, T) error) { r.fns[format] = fn }

// Has reports whether format has a writer.
func (r *Registry[T]) Has(format string) bool {
	_, ok := r.fns[format]
	return ok
}

// Formats lists the registered formats, sorted.
func (r *Registry[T]) Formats() []string {
	out := make([]string, 0, len(r.fns))
	for f := range r.fns {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write renders v in format to w.
func (r *Registry[T]) Write(format string, w io.Writer, v T) error {
	fn, ok := r.fns[format]
	if !ok {
		return fmt.Errorf("unknown %s format %q (no writer registered)", r.name, format)
	}
	return fn(w, v)
}
