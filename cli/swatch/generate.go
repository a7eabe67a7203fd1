package main

import (
	"github.com/kdybicz/adobe-color-swatch"
)

type CmdGenerate struct {
	cmd

	Input  string `short:"i" long:"input" description:"input file" required:"true" value-name:"FILE"`
	Output string `short:"o" long:"output" description:"output file" required:"true" value-name:"FILE"`
}

func (c *CmdGenerate) Execute(args []string) error {
	c.setup()

	logger := newLogger(c.Verbose)
	logger.Info().Str("input", c.Input).Str("output", c.Output).Msg("generating swatch file")

	if err := swatch.PlainGenerate(c.Input, c.Output); err != nil {
		logger.Error().Err(err).Msg("generation failed")
		return err
	}

	logger.Debug().Msg("generation finished")
	return nil
}
