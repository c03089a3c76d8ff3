package highlight

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
)

// ErrUnknownLanguage indicates that no lexer matches a language name.
var ErrUnknownLanguage = errors.New("unknown language")

// RenderOptions controls the presentation of a highlighted block.
type RenderOptions struct {
	// LineNumbers renders line numbers inline with the code.
	LineNumbers bool

	// StartLine is the number of the first line.
	// Values below 1 are treated as 1.
	StartLine int

	// HighlightLines lists lines to highlight,
	// counted from the first line of the block
	// regardless of StartLine.
	HighlightLines []int
}

// Engine turns source code into HTML.
// It's safe for concurrent use.
type Engine struct {
	// Style used for syntax highlighting of code.
	// Defaults to DefaultStyle.
	Style *chroma.Style
}

// Lexer finds the lexer for a language name or alias.
// Names are matched case-insensitively.
func (e *Engine) Lexer(language string) (chroma.Lexer, error) {
	var l chroma.Lexer
	if name := strings.TrimSpace(language); name != "" {
		l = lexers.Get(name)
	}
	if l == nil {
		return nil, errtrace.Wrap(fmt.Errorf("%w: %q", ErrUnknownLanguage, language))
	}
	return chroma.Coalesce(l), nil
}

// Highlight renders src as HTML.
//
// Leading and trailing whitespace is removed from src.
// The result is a <div class="source"> element
// wrapping the highlighted <pre>.
func (e *Engine) Highlight(src, language string, opts RenderOptions) (string, error) {
	lexer, err := e.Lexer(language)
	if err != nil {
		return "", err
	}

	iter, err := lexer.Tokenise(nil, strings.TrimSpace(src))
	if err != nil {
		return "", errtrace.Wrap(fmt.Errorf("tokenise %v: %w", language, err))
	}

	var buf bytes.Buffer
	buf.WriteString(`<div class="source">`)
	if err := chromahtml.New(formatterOptions(opts)...).Format(&buf, e.style(), iter); err != nil {
		return "", errtrace.Wrap(fmt.Errorf("format: %w", err))
	}
	buf.WriteString(`</div>`)
	return buf.String(), nil
}

// Languages returns the names of all supported languages, sorted.
func (e *Engine) Languages() []string {
	return lexers.Names(false)
}

func (e *Engine) style() *chroma.Style {
	if e.Style != nil {
		return e.Style
	}
	return DefaultStyle
}

func formatterOptions(opts RenderOptions) []chromahtml.Option {
	start := max(opts.StartLine, 1)

	options := []chromahtml.Option{
		chromahtml.WithClasses(false),
		chromahtml.BaseLineNumber(start),
	}
	if opts.LineNumbers {
		options = append(options,
			chromahtml.WithLineNumbers(true),
			chromahtml.LineNumbersInTable(false),
		)
	}

	if len(opts.HighlightLines) > 0 {
		// Chroma numbers highlighted lines from the base line number.
		ranges := make([][2]int, 0, len(opts.HighlightLines))
		for _, n := range opts.HighlightLines {
			line := n + start - 1
			ranges = append(ranges, [2]int{line, line})
		}
		options = append(options, chromahtml.HighlightLines(ranges))
	}

	return options
}
