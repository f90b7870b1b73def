// internal/clibase/common.go
package clibase

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"readsanalyzer/internal/cliutil"
	"readsanalyzer/internal/config"
	"readsanalyzer/internal/logging"
)

// Common holds CLI fields shared by rs-kmers and rs-assemble.
type Common struct {
	// Input
	SeqFiles  []string
	MinLength int
	KeepCase  bool

	// Output
	Output        string
	OutFile       string
	Header        bool
	EmptyExitCode int

	// Run
	ConfigFile  string
	LogLevel    string
	LogFormat   string
	Quiet       bool
	Progress    bool
	MetricsFile string

	// Misc
	Version  bool
	Help     bool
	Examples bool
}

// Register wires shared flags onto fs and returns a pointer to the
// “no-header” bool that AfterParse folds into Common.Header.
func Register(fs *pflag.FlagSet, c *Common, defaultOutput string) *bool {
	// Input
	fs.StringArrayVarP(&c.SeqFiles, "sequences", "s", nil, "FASTA/FASTQ file(s) (repeatable) or '-'")
	fs.IntVar(&c.MinLength, "min-length", 1, "skip reads shorter than this [1]")
	fs.BoolVar(&c.KeepCase, "keep-case", false, "do not upper-case read sequences [false]")

	// Output
	fs.StringVarP(&c.Output, "output", "o", defaultOutput, "output format")
	fs.StringVar(&c.OutFile, "out", "", "write the report to FILE (.gz/.zst compress) [stdout]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress column header lines [false]")
	fs.IntVar(&c.EmptyExitCode, "empty-exit-code", 1, "exit code when the result is empty [1]")

	// Run
	fs.StringVar(&c.ConfigFile, "config", "", "YAML file with flag defaults")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level: debug | info | warn | error [info]")
	fs.StringVar(&c.LogFormat, "log-format", logging.FormatText, "log format: text | json [text]")
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "only log errors [false]")
	fs.BoolVar(&c.Progress, "progress", false, "show a progress bar on stderr [false]")
	fs.StringVar(&c.MetricsFile, "metrics", "", "write Prometheus metrics to FILE")

	// Misc
	fs.BoolVarP(&c.Version, "version", "v", false, "print version and exit")
	fs.BoolVarP(&c.Help, "help", "h", false, "show this help and exit")
	fs.BoolVar(&c.Examples, "examples", false, "print usage examples and exit")

	return &noHeader
}

// AfterParse applies the config file (if any) for the given tool section,
// finalizes header, expands positionals, then runs shared validation.
func AfterParse(fs *pflag.FlagSet, c *Common, noHeader *bool, section string, formats []string) error {
	if c.ConfigFile != "" {
		cfg, err := config.Load(c.ConfigFile)
		if err != nil {
			return err
		}
		if err := cfg.Apply(fs, section); err != nil {
			return err
		}
	}
	c.Header = !*noHeader

	if pos := fs.Args(); len(pos) > 0 {
		exp, err := cliutil.ExpandPositionals(pos)
		if err != nil {
			return err
		}
		c.SeqFiles = append(c.SeqFiles, exp...)
	}
	return Validate(c, formats)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common, formats []string) error {
	if len(c.SeqFiles) == 0 {
		return errors.New("at least one sequence file is required")
	}
	if cliutil.StdinCount(c.SeqFiles) > 1 {
		return errors.New("stdin ('-') may be given only once")
	}
	if c.MinLength < 0 {
		return errors.New("--min-length must be ≥ 0")
	}
	if !slices.Contains(formats, c.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", c.Output, strings.Join(formats, " | "))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != logging.FormatText && c.LogFormat != logging.FormatJSON {
		return fmt.Errorf("invalid --log-format %q", c.LogFormat)
	}
	if c.EmptyExitCode < 0 || c.EmptyExitCode > 255 {
		return errors.New("--empty-exit-code must be between 0 and 255")
	}
	return nil
}

// LoggingConfig maps the shared flags onto the logger settings.
func (c *Common) LoggingConfig() logging.Config {
	return logging.Config{Level: c.LogLevel, Format: c.LogFormat, Quiet: c.Quiet}
}
