// prettycode renders the syntax-highlighted code blocks of wiki pages.
//
// See help/default.txt for usage.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/prettycode/internal/background"
	"go.abhg.dev/prettycode/internal/confstore"
	"go.abhg.dev/prettycode/internal/errdefer"
	"go.abhg.dev/prettycode/internal/highlight"
	"go.abhg.dev/prettycode/internal/plugin"
)

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("prettycode: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("open debug log: %w", err))
	}
	defer errdefer.Call(&err, closeDebug)
	debugLog := log.New(debugw, "", 0)

	style, err := highlight.StyleByName(opts.Style)
	if err != nil {
		return err
	}
	engine := highlight.Engine{Style: style}

	if opts.Languages {
		for _, lang := range engine.Languages() {
			fmt.Fprintln(cmd.Stdout, lang)
		}
		return nil
	}

	store := confstore.New()
	if opts.OptionsFile != "" {
		store, err = confstore.Open(opts.OptionsFile)
		if err != nil {
			return errtrace.Wrap(fmt.Errorf("load options: %w", err))
		}
		debugLog.Printf("loaded options from %v", opts.OptionsFile)
	}

	pc := plugin.PrettyCode{
		Highlighter: &engine,
		Config:      store,
		Languages:   engine.Languages(),
		Log:         debugLog,
	}

	var host optionsHost
	if err := pc.RegisterOptions(&host); err != nil {
		return err
	}

	if opts.Backgrounds {
		return cmd.listBackgrounds(&host)
	}

	inputs, err := cmd.readInputs(opts.Inputs)
	if err != nil {
		return err
	}

	var outputs []string
	if opts.Wrap {
		block, err := wrap(&pc, inputs[0])
		if err != nil {
			return err
		}
		outputs = []string{block}
	} else {
		outputs, err = (&Renderer{
			Keys:       pc.InsertionKeys(),
			ExportType: opts.ExportType,
			Options:    opts.Options,
			Log:        debugLog,
		}).Render(inputs)
		if err != nil {
			return err
		}
	}

	return cmd.writeOutput(opts.OutputFile, outputs)
}

func (cmd *mainCmd) listBackgrounds(host *optionsHost) error {
	panel, err := host.newPanel()
	if err != nil {
		return err
	}

	for _, e := range panel.Backgrounds() {
		marker := " "
		if e.Name == panel.Background() {
			marker = "*"
		}
		fmt.Fprintf(cmd.Stdout, "%v %v\t%v\n", marker, e.Name, e.Style)
	}
	if panel.Background() == background.None {
		fmt.Fprintf(cmd.Stdout, "* %v\n", background.None)
	}
	return nil
}

// readInputs reads the named files, or stdin if there are none.
func (cmd *mainCmd) readInputs(paths []string) ([]string, error) {
	if len(paths) == 0 {
		b, err := io.ReadAll(cmd.Stdin)
		if err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("read stdin: %w", err))
		}
		return []string{string(b)}, nil
	}

	inputs := make([]string, 0, len(paths))
	for _, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		inputs = append(inputs, string(b))
	}
	return inputs, nil
}

func (cmd *mainCmd) writeOutput(path string, outputs []string) (err error) {
	w := cmd.Stdout
	if path != "" {
		var f *os.File
		f, err = os.Create(path)
		if err != nil {
			return errtrace.Wrap(err)
		}
		defer errdefer.Close(&err, f)
		w = f
	}

	_, err = io.WriteString(w, strings.Join(outputs, ""))
	return errtrace.Wrap(err)
}

// optionsHost records the options panel registered by the plugin.
type optionsHost struct {
	newPanel func() (*plugin.OptionsPanel, error)
}

var _ plugin.OptionsHost = (*optionsHost)(nil)

func (h *optionsHost) AddOptionsPanel(_ string, newPanel func() (*plugin.OptionsPanel, error)) {
	h.newPanel = newPanel
}
