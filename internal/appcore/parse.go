package appcore

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"readsanalyzer/internal/clibase"
	"readsanalyzer/internal/version"
	"readsanalyzer/internal/writers"
)

// Parsed handles the outcomes of option parsing that end the run before any
// input is read: help, examples, version and usage errors. done is false
// when the caller should go on with the run.
func Parsed(name string, fs *pflag.FlagSet, err error, showVersion bool, examples func(io.Writer), stdout, stderr io.Writer) (code int, done bool) {
	if err == nil && !showVersion {
		return ExitOK, false
	}
	outw := bufio.NewWriter(stdout)
	switch {
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		examples(outw)
	case errors.Is(err, pflag.ErrHelp):
		fs.SetOutput(outw)
		fs.Usage()
	case err != nil:
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		_, _ = fmt.Fprintf(stderr, "run '%s --help' for usage\n", name)
		return ExitUsage, true
	default:
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK, true
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitIO, true
	}
	return ExitOK, true
}
