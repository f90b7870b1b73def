// Package cli holds flag-set plumbing shared by every tool.
package cli

import (
	"io"

	"github.com/spf13/pflag"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError. Usage is left
// empty for the tool to install; parse errors are not printed by pflag.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	return fs
}
