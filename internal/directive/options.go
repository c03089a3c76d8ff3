package directive

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	// DefaultLanguage is the language used when nothing else is configured.
	DefaultLanguage = "Python"

	// DefaultBackground is the reserved background name
	// that selects the configured default background.
	DefaultBackground = "default"
)

// Options controls how a single code block is rendered.
//
// Options are built fresh for every code block
// and are not modified after rendering starts.
type Options struct {
	// Language names the highlighter lexer.
	// It is matched case-insensitively.
	Language string

	// ShowLineNumbers renders line numbers next to the code.
	ShowLineNumbers bool

	// StartLine is the number of the first line. Always >= 1.
	StartLine int

	// HighlightLines lists line numbers to highlight,
	// relative to the first line of the block.
	// Order and duplicates are preserved as written.
	HighlightLines []int

	// Background is the name of a background style,
	// or DefaultBackground.
	Background string
}

// Defaults returns the built-in defaults.
func Defaults() Options {
	return Options{
		Language:   DefaultLanguage,
		StartLine:  1,
		Background: DefaultBackground,
	}
}

// Set applies a single name/value assignment.
//
// The name is matched case-insensitively after trimming,
// and the value is trimmed before use.
// Options is left unchanged if the assignment fails.
func (o *Options) Set(name, value string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	value = strings.TrimSpace(value)

	switch name {
	case "lang":
		o.Language = value

	case "showlines":
		n, err := parseInt(name, value)
		if err != nil {
			return err
		}
		o.ShowLineNumbers = n != 0

	case "startline":
		n, err := parsePositive(name, value)
		if err != nil {
			return err
		}
		o.StartLine = n

	case "hllines":
		if value == "" {
			o.HighlightLines = nil
			return nil
		}

		parts := strings.Split(value, ",")
		lines := make([]int, 0, len(parts))
		for _, part := range parts {
			n, err := parsePositive(name, strings.TrimSpace(part))
			if err != nil {
				return err
			}
			lines = append(lines, n)
		}
		o.HighlightLines = lines

	case "bkg":
		// "default" keeps whatever background was already selected.
		if value != DefaultBackground {
			o.Background = value
		}

	default:
		return &UnknownOptionError{Name: name}
	}

	return nil
}

// Format serializes the options back into assignment form.
// Parsing the result reproduces the same Options.
func (o Options) Format() string {
	lines := make([]string, len(o.HighlightLines))
	for i, n := range o.HighlightLines {
		lines[i] = strconv.Itoa(n)
	}

	var showLines int
	if o.ShowLineNumbers {
		showLines = 1
	}

	return fmt.Sprintf("lang=%s;showLines=%d;startLine=%d;hlLines=%s;bkg=%s",
		o.Language, showLines, o.StartLine, strings.Join(lines, ","), o.Background)
}

func (o Options) clone() Options {
	o.HighlightLines = slices.Clone(o.HighlightLines)
	return o
}

func parseInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ParseError{
			Option: name,
			Value:  value,
			Reason: "expected an integer",
		}
	}
	return n, nil
}

func parsePositive(name, value string) (int, error) {
	n, err := parseInt(name, value)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, &ParseError{
			Option: name,
			Value:  value,
			Reason: "expected a positive integer",
		}
	}
	return n, nil
}
