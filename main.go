package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ilyakaznacheev/cleanenv"
)

var version string = "unknown"

func main() {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Sprintf("Error parsing configuration from environment variables: %s", err))
	}

	input := &CLIInput{}
	parser, err := newParser(input, cfg)
	if err != nil {
		log.Fatal(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err = run(ctx, input, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func newParser(input *CLIInput, cfg Config) (*kong.Kong, error) {
	return kong.New(input,
		kong.Name("datekit"),
		kong.Description("Format, measure, shift and compare dates."),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
			"locale":  cfg.Locale,
			"layout":  cfg.layout(),
		},
	)
}

func run(ctx *kong.Context, input *CLIInput, out io.Writer) error {
	return ctx.Run(&runContext{
		out:    out,
		locale: input.Locale,
		layout: input.Layout,
	})
}
