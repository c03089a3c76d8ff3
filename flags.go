package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"

	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/prettycode/internal/directive"
	"go.abhg.dev/prettycode/internal/flagvalue"
	"go.abhg.dev/prettycode/internal/highlight"
	"go.abhg.dev/prettycode/internal/plugin"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _envVarPrefix is the prefix for environment variables
// that stand in for flags: PRETTYCODE_EXPORT_TYPE for -export-type.
const _envVarPrefix = "PRETTYCODE"

// params holds all arguments for prettycode.
type params struct {
	version bool
	help    Help

	Debug flagvalue.FileSwitch

	// Configuration:
	OptionsFile string

	// Rendering:
	ExportType string
	Options    []directive.Assignment
	Style      string
	OutputFile string

	// Alternative modes:
	Wrap        bool
	Languages   bool
	Backgrounds bool

	Inputs []string
}

// cliParser parses the command line arguments for prettycode.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("prettycode", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		_ = DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Configuration:
	flag.StringVar(&p.OptionsFile, "options", "", "")
	flag.String("config", "", "")

	// Rendering:
	flag.StringVar(&p.ExportType, "export-type", plugin.ExportHTMLSingle, "")
	flag.Var(flagvalue.ListOf(&p.Options), "option", "")
	flag.StringVar(&p.Style, "style", highlight.DefaultStyleName, "")
	flag.StringVar(&p.OutputFile, "out", "", "")

	// Alternative modes:
	flag.BoolVar(&p.Wrap, "wrap", false, "")
	flag.BoolVar(&p.Languages, "languages", false, "")
	flag.BoolVar(&p.Backgrounds, "backgrounds", false, "")

	// Program-level:
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()

	// The flag package prints usage after reporting its own errors.
	// Errors from environment variables and the configuration file
	// are not reported by anyone else.
	var reported bool
	usage := flag.Usage
	flag.Usage = func() {
		reported = true
		usage()
	}

	if err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix(_envVarPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	); err != nil {
		if !reported {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, err
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "prettycode", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil && h.Known() {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if !slices.Contains(plugin.ExportTypes, p.ExportType) {
		fmt.Fprintf(cmd.Stderr, "Unknown export type %q: valid values are %q\n", p.ExportType, plugin.ExportTypes)
		return nil, errInvalidArguments
	}

	if p.Wrap && len(args) > 1 {
		fmt.Fprintln(cmd.Stderr, "-wrap accepts at most one file.")
		_ = UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	if len(args) > 0 {
		p.Inputs = args
	}
	return p, nil
}
