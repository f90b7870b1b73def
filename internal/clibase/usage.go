// internal/clibase/usage.go
package clibase

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"readsanalyzer/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints the tool-specific flag block.
func UsageCommon(fs *pflag.FlagSet, name, summary string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n\n", name, summary)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [flags] [reads.fa|reads.fq[.gz|.zst] ...]\n", name)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --sequences file        FASTA/FASTQ file(s) (repeatable) or '-' for STDIN")
		fmt.Fprintf(out, "      --min-length int        Skip reads shorter than this [%s]\n", def("min-length"))
		fmt.Fprintf(out, "      --keep-case             Do not upper-case read sequences [%s]\n", def("keep-case"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output format [%s]\n", def("output"))
		fmt.Fprintln(out, "      --out file              Write the report to file (.gz/.zst compress) [stdout]")
		fmt.Fprintf(out, "      --no-header             Suppress column header lines [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --empty-exit-code int   Exit code when the result is empty [%s]\n", def("empty-exit-code"))

		fmt.Fprintln(out, "\nRun:")
		fmt.Fprintln(out, "      --config file           YAML file with flag defaults")
		fmt.Fprintf(out, "      --log-level string      debug | info | warn | error [%s]\n", def("log-level"))
		fmt.Fprintf(out, "      --log-format string     text | json [%s]\n", def("log-format"))
		fmt.Fprintf(out, "  -q, --quiet                 Only log errors [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --progress              Show a progress bar on stderr [%s]\n", def("progress"))
		fmt.Fprintln(out, "      --metrics file          Write Prometheus metrics to file")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "      --examples              Print usage examples and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
