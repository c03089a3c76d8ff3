package plugin

import (
	"errors"
	"fmt"

	"go.abhg.dev/prettycode/internal/directive"
	"go.abhg.dev/prettycode/internal/wxhtml"
)

const _diagnosticColor = "#CC033C"

// Diagnostic renders an error as inline markup for the page.
//
// ErrNoOptions gets a hint about the expected format;
// anything else is reported as a bad option.
func Diagnostic(err error) string {
	if errors.Is(err, directive.ErrNoOptions) {
		return diagnostic(fmt.Sprintf(
			"prettyCode: <b>Invalid format.</b> Use [:%s:///source code:::lang=C++;showLine=0;...///]",
			InsertionTag,
		))
	}
	return diagnostic(fmt.Sprintf(
		"prettyCode: <b>Invalid option format. (%s)</b> Use 'lang=C++;showLine=0;...'",
		wxhtml.Escape(reason(err)),
	))
}

// LanguageDiagnostic renders an unknown language name as inline markup.
func LanguageDiagnostic(language string) string {
	return diagnostic(fmt.Sprintf(
		"prettyCode: <b>Invalid language name '%s'</b>",
		wxhtml.Escape(language),
	))
}

func failureDiagnostic(err error) string {
	return diagnostic(fmt.Sprintf(
		"prettyCode: <b>Highlighting failed. (%s)</b>",
		wxhtml.Escape(err.Error()),
	))
}

func diagnostic(msg string) string {
	return "<span style='color: " + _diagnosticColor + "'>" + msg + "</span>"
}

// reason extracts the message of the underlying assignment error.
func reason(err error) string {
	var (
		parseErr   *directive.ParseError
		unknownErr *directive.UnknownOptionError
	)
	switch {
	case errors.As(err, &unknownErr):
		return unknownErr.Error()
	case errors.As(err, &parseErr):
		return parseErr.Error()
	default:
		return err.Error()
	}
}
