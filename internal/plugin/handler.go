package plugin

import (
	"errors"
	"fmt"
	"io"
	"log"

	"braces.dev/errtrace"
	"go.abhg.dev/prettycode/internal/background"
	"go.abhg.dev/prettycode/internal/directive"
	"go.abhg.dev/prettycode/internal/highlight"
	"go.abhg.dev/prettycode/internal/settings"
	"go.abhg.dev/prettycode/internal/wikitext"
	"go.abhg.dev/prettycode/internal/wxhtml"
)

// InsertionHandler renders "pc" insertions as HTML.
//
// Calls to CreateContent during an export task
// are bracketed by TaskStart and TaskEnd.
// The handler is not safe for concurrent use.
type InsertionHandler struct {
	Highlighter Highlighter
	Config      settings.Store

	// Log receives debug messages.
	// Defaults to discarding them.
	Log *log.Logger

	// Settings loaded for the current task, if any.
	task *settings.Settings
}

// TaskStart begins an export task.
// Settings are read once here and shared by the task's insertions.
func (h *InsertionHandler) TaskStart(exportType string) {
	h.logger().Printf("start %v export", exportType)
	h.task = h.loadSettings()
}

// TaskEnd ends the export task.
func (h *InsertionHandler) TaskEnd() {
	h.task = nil
}

// CreateContent renders an insertion for the given export type.
//
// Problems with the insertion itself,
// such as bad options or unknown languages,
// are rendered as inline diagnostics.
// An error is returned only if the highlighted output
// could not be converted for the embedded viewer.
func (h *InsertionHandler) CreateContent(exportType string, in wikitext.Insertion) (string, error) {
	s := h.task
	if s == nil {
		s = h.loadSettings()
	}

	out := h.render(s, in)
	if exportType == ExportHTMLPreviewWX {
		converted, err := wxhtml.Convert(out)
		if err != nil {
			return "", errtrace.Wrap(fmt.Errorf("convert for preview: %w", err))
		}
		out = converted
	}
	return out, nil
}

func (h *InsertionHandler) render(s *settings.Settings, in wikitext.Insertion) string {
	res := directive.Parse(in.Value, in.Appendices, s.Defaults())
	if res.Err != nil {
		h.logger().Printf("insertion at %d: %v", in.Start, res.Err)
		return Diagnostic(res.Err)
	}
	opts := res.Options

	out, err := h.Highlighter.Highlight(res.Code, opts.Language, highlight.RenderOptions{
		LineNumbers:    opts.ShowLineNumbers,
		StartLine:      opts.StartLine,
		HighlightLines: opts.HighlightLines,
	})
	if err != nil {
		h.logger().Printf("insertion at %d: %v", in.Start, err)
		if errors.Is(err, highlight.ErrUnknownLanguage) {
			return LanguageDiagnostic(opts.Language)
		}
		return failureDiagnostic(err)
	}

	if style, ok := s.ResolveBackground(opts.Background); ok && style != "" {
		out = `<pre style="` + wxhtml.Escape(style) + `">` + out + `</pre>`
	}
	return out
}

// loadSettings reads the plugin settings,
// falling back to the out-of-the-box values if they're unreadable.
func (h *InsertionHandler) loadSettings() *settings.Settings {
	s, err := settings.Load(h.Config)
	if err != nil {
		h.logger().Printf("using default settings: %v", err)
		s = &settings.Settings{
			Language:    directive.DefaultLanguage,
			Backgrounds: background.Defaults(),
			Background:  background.DefaultName,
		}
	}
	return s
}

func (h *InsertionHandler) logger() *log.Logger {
	if h.Log != nil {
		return h.Log
	}
	return log.New(io.Discard, "", 0)
}
