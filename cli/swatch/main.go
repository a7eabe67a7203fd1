package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/kdybicz/adobe-color-swatch/utils/trace"
)

const (
	bin = "swatch"

	usageErrorExitCode   = 2
	generalErrorExitCode = 1
)

// cmd holds the flags every command shares.
type cmd struct {
	Verbose bool `short:"v" long:"verbose" description:"increase output verbosity"`
}

// setup enables the tracing targets behind the verbose flag. Trace output
// goes to stderr, next to the log messages.
func (c *cmd) setup() {
	if c.Verbose {
		trace.SetTarget(trace.General | trace.Codec)
	}
}

func main() {
	parser := flags.NewNamedParser(bin, flags.HelpFlag|flags.PassDoubleDash)
	parser.AddCommand("extract",
		"Extract an .aco input file to a .csv output file.",
		"Decode the Adobe Color Swatch file given with --input and write its colors as a table to the --output file.",
		&CmdExtract{})
	parser.AddCommand("generate",
		"Generate an .aco output file from a .csv input file.",
		"Parse the table given with --input and write its colors as an Adobe Color Swatch file to the --output file.",
		&CmdGenerate{})
	parser.AddCommand("version",
		"Show the version information.",
		"",
		&CmdVersion{})

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			switch flagsErr.Type {
			case flags.ErrHelp:
				parser.WriteHelp(os.Stdout)
				os.Exit(0)
			case flags.ErrCommandRequired:
				parser.WriteHelp(os.Stderr)
				os.Exit(generalErrorExitCode)
			default:
				fmt.Fprintln(os.Stderr, err)
				os.Exit(usageErrorExitCode)
			}
		}

		// The failed command already reported the details.
		os.Exit(generalErrorExitCode)
	}
}
