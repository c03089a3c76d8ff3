package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.abhg.dev/prettycode/internal/confstore"
	"go.abhg.dev/prettycode/internal/highlight"
	"go.abhg.dev/prettycode/internal/settings"
)

// newStore builds a configuration store with the plugin's defaults.
func newStore(t testing.TB) *confstore.File {
	store := confstore.New()
	require.NoError(t, settings.Register(store))
	return store
}

type fakeWiki struct {
	word       string
	subControl string
	editor     *fakeEditor
	clipboard  fakeClipboard
}

func (w *fakeWiki) CurrentWikiWord() (string, bool) { return w.word, w.word != "" }
func (w *fakeWiki) CurrentSubControl() string       { return w.subControl }
func (w *fakeWiki) ActiveEditor() Editor            { return w.editor }
func (w *fakeWiki) Clipboard() Clipboard            { return w.clipboard }

type fakeEditor struct {
	text      string
	selection string
}

func (e *fakeEditor) AddText(text string)          { e.text += text }
func (e *fakeEditor) SelectedText() string         { return e.selection }
func (e *fakeEditor) ReplaceSelection(text string) { e.selection = text }

type fakeClipboard struct {
	text string
	err  error
}

func (c fakeClipboard) Text() (string, error) { return c.text, c.err }

var errHighlight = errors.New("highlighter broke")

// failingHighlighter always fails with errHighlight.
type failingHighlighter struct{}

func (failingHighlighter) Highlight(string, string, highlight.RenderOptions) (string, error) {
	return "", errHighlight
}

type fakeOptionsHost struct {
	title    string
	newPanel func() (*OptionsPanel, error)
}

func (h *fakeOptionsHost) AddOptionsPanel(title string, newPanel func() (*OptionsPanel, error)) {
	h.title = title
	h.newPanel = newPanel
}
