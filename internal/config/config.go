// Package config loads YAML defaults for command-line flags.
//
// Top-level scalar or list keys are flag names shared by every tool;
// top-level mappings are per-tool sections keyed by tool section name:
//
//	log-level: debug
//	min-length: 20
//	kmers:
//	  kmer-size: 21
//	assemble:
//	  min-overlap: 15
//	  source: min-indegree
//
// Values only fill flags the user did not set on the command line.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// File is a parsed configuration file.
type File struct {
	Shared map[string]any
	Tools  map[string]map[string]any
}

// Load reads and parses path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Parse parses YAML configuration data.
func Parse(data []byte) (*File, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	f := &File{Shared: map[string]any{}, Tools: map[string]map[string]any{}}
	for k, v := range raw {
		if section, ok := v.(map[string]any); ok {
			f.Tools[k] = section
			continue
		}
		f.Shared[k] = v
	}
	return f, nil
}

// Apply sets every flag of fs named in the shared keys or in the section
// for tool, unless the flag was already set on the command line. Keys that
// match no flag are an error.
func (f *File) Apply(fs *pflag.FlagSet, tool string) error {
	var errs []error
	fromArgs := map[string]bool{}
	fs.Visit(func(fl *pflag.Flag) { fromArgs[fl.Name] = true })
	apply := func(values map[string]any) {
		for _, name := range sortedKeys(values) {
			fl := fs.Lookup(name)
			if fl == nil {
				errs = append(errs, fmt.Errorf("unknown setting %q", name))
				continue
			}
			if fromArgs[name] {
				continue
			}
			for _, s := range scalars(values[name]) {
				if err := fs.Set(name, s); err != nil {
					errs = append(errs, fmt.Errorf("setting %q: %w", name, err))
				}
			}
		}
	}
	apply(f.Shared)
	apply(f.Tools[tool])
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func scalars(v any) []string {
	if list, ok := v.([]any); ok {
		out := make([]string, 0, len(list))
		for _, x := range list {
			out = append(out, fmt.Sprint(x))
		}
		return out
	}
	return []string{fmt.Sprint(v)}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
