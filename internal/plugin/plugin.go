// Package plugin implements the prettyCode wiki plugin.
//
// The host application talks to the plugin through the Plugin interface:
// it installs the menu items, routes "pc" insertions to the insertion
// handler during exports, and shows the options panel.
package plugin

import (
	"io"
	"log"

	"go.abhg.dev/prettycode/internal/highlight"
	"go.abhg.dev/prettycode/internal/settings"
)

// InsertionTag is the insertion key handled by the plugin.
const InsertionTag = "pc"

// Export types the insertion handler supports.
const (
	ExportHTMLSingle    = "html_single"
	ExportHTMLPreviewWX = "html_previewWX"
	ExportHTMLPreview   = "html_preview"
	ExportHTMLMulti     = "html_multi"
)

// ExportTypes lists all supported export types.
var ExportTypes = []string{
	ExportHTMLSingle,
	ExportHTMLPreviewWX,
	ExportHTMLPreview,
	ExportHTMLMulti,
}

// Plugin is the set of capabilities a plugin offers the host.
type Plugin interface {
	// MenuItems lists the menu commands to install.
	MenuItems() []MenuItem

	// InsertionKeys lists the insertion keys the plugin renders.
	InsertionKeys() []InsertionKey

	// RegisterOptions registers configuration defaults
	// and the options panel.
	RegisterOptions(OptionsHost) error
}

// InsertionKey binds an insertion key to its handler.
type InsertionKey struct {
	Key         string
	ExportTypes []string
	Handler     *InsertionHandler
}

// Highlighter renders source code as HTML.
//
// highlight.Engine implements it.
type Highlighter interface {
	Highlight(src, language string, opts highlight.RenderOptions) (string, error)
}

var _ Highlighter = (*highlight.Engine)(nil)

// PrettyCode is the prettyCode plugin.
type PrettyCode struct {
	// Highlighter renders code blocks.
	Highlighter Highlighter

	// Config is the host's configuration store.
	Config settings.DefaultsStore

	// Languages lists the language names offered by the options panel.
	Languages []string

	// Log receives debug messages.
	// Defaults to discarding them.
	Log *log.Logger
}

var _ Plugin = (*PrettyCode)(nil)

// InsertionKeys reports that "pc" insertions are rendered
// for all HTML export types.
func (p *PrettyCode) InsertionKeys() []InsertionKey {
	return []InsertionKey{
		{
			Key:         InsertionTag,
			ExportTypes: ExportTypes,
			Handler: &InsertionHandler{
				Highlighter: p.Highlighter,
				Config:      p.Config,
				Log:         p.log(),
			},
		},
	}
}

// RegisterOptions writes the option defaults into the configuration store
// and adds the options panel to the host.
func (p *PrettyCode) RegisterOptions(host OptionsHost) error {
	if err := settings.Register(p.Config); err != nil {
		return err
	}
	host.AddOptionsPanel(OptionsPanelTitle, func() (*OptionsPanel, error) {
		return NewOptionsPanel(p.Config, p.Languages)
	})
	return nil
}

func (p *PrettyCode) log() *log.Logger {
	if p.Log != nil {
		return p.Log
	}
	return log.New(io.Discard, "", 0)
}
