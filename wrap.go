package main

import (
	"errors"

	"go.abhg.dev/prettycode/internal/plugin"
)

// _wrapCommand is the menu command used by -wrap.
const _wrapCommand = "Add code tags"

// wrap wraps text in a code block
// by running the plugin's "Add code tags" command
// over a buffer where all of text is selected.
func wrap(p plugin.Plugin, text string) (string, error) {
	buf := textBuffer{selection: text}
	wiki := wrapWiki{editor: &buf}

	for _, item := range p.MenuItems() {
		if item.Label != _wrapCommand {
			continue
		}
		if !item.Enabled(&wiki) {
			return "", errors.New("wrap: command is disabled")
		}
		if err := item.Run(&wiki); err != nil {
			return "", err
		}
		return buf.text + buf.selection, nil
	}
	return "", errors.New("wrap: plugin has no " + _wrapCommand + " command")
}

// wrapWiki is a wiki with a single page open in the text editor.
type wrapWiki struct {
	editor *textBuffer
}

var _ plugin.Wiki = (*wrapWiki)(nil)

func (w *wrapWiki) CurrentWikiWord() (string, bool) { return "stdin", true }
func (w *wrapWiki) CurrentSubControl() string       { return plugin.TextEditControl }
func (w *wrapWiki) ActiveEditor() plugin.Editor     { return w.editor }

func (w *wrapWiki) Clipboard() plugin.Clipboard { return w.editor }

// textBuffer is an editor holding only a selection.
// It doubles as a clipboard holding the same text.
type textBuffer struct {
	text      string
	selection string
}

var (
	_ plugin.Editor    = (*textBuffer)(nil)
	_ plugin.Clipboard = (*textBuffer)(nil)
)

func (b *textBuffer) AddText(text string)          { b.text += text }
func (b *textBuffer) SelectedText() string         { return b.selection }
func (b *textBuffer) ReplaceSelection(text string) { b.selection = text }
func (b *textBuffer) Text() (string, error)        { return b.selection, nil }
