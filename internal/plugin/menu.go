package plugin

import (
	"strings"

	"go.abhg.dev/prettycode/internal/directive"
	"go.abhg.dev/prettycode/internal/settings"
)

// TextEditControl is the name of the host's text editor sub-control.
const TextEditControl = "textedit"

// Wiki is the host's main window.
type Wiki interface {
	// CurrentWikiWord returns the name of the open page.
	// ok is false if no page is open.
	CurrentWikiWord() (word string, ok bool)

	// CurrentSubControl names the active view of the open page,
	// or returns "" if there's none.
	CurrentSubControl() string

	// ActiveEditor returns the text editor of the open page.
	ActiveEditor() Editor

	// Clipboard returns the system clipboard.
	Clipboard() Clipboard
}

// Editor is a text buffer.
type Editor interface {
	AddText(text string)
	SelectedText() string
	ReplaceSelection(text string)
}

// Clipboard is a source of text.
type Clipboard interface {
	Text() (string, error)
}

// MenuItem is a command installed in the host's menus.
type MenuItem struct {
	Label    string
	Shortcut string
	Help     string

	// Run executes the command.
	Run func(Wiki) error

	// Enabled reports whether the command is available.
	Enabled func(Wiki) bool
}

// MenuItems returns the "Paste code" and "Add code tags" commands.
func (p *PrettyCode) MenuItems() []MenuItem {
	return []MenuItem{
		{
			Label:    "Paste code",
			Shortcut: "Ctrl+Shift-V",
			Help:     "Paste source code",
			Run:      p.pasteCode,
			Enabled:  editingPage,
		},
		{
			Label:    "Add code tags",
			Shortcut: "Ctrl+Shift-L",
			Help:     "Surround selected source code with the appropriate tags",
			Run:      p.addCodeTags,
			Enabled:  editingPage,
		},
	}
}

func editingPage(w Wiki) bool {
	if _, ok := w.CurrentWikiWord(); !ok {
		return false
	}
	return w.CurrentSubControl() == TextEditControl
}

// pasteCode inserts the clipboard text as a code block.
// An unreadable clipboard pastes an empty block.
func (p *PrettyCode) pasteCode(w Wiki) error {
	text, err := w.Clipboard().Text()
	if err != nil {
		p.log().Printf("read clipboard: %v", err)
		text = ""
	}

	block, err := p.codeBlock(text)
	if err != nil {
		return err
	}
	w.ActiveEditor().AddText(block)
	return nil
}

// addCodeTags wraps the selected text in a code block.
func (p *PrettyCode) addCodeTags(w Wiki) error {
	ed := w.ActiveEditor()
	block, err := p.codeBlock(ed.SelectedText())
	if err != nil {
		return err
	}
	ed.ReplaceSelection(block)
	return nil
}

func (p *PrettyCode) codeBlock(text string) (string, error) {
	s, err := settings.Load(p.Config)
	if err != nil {
		return "", err
	}
	return CodeBlock(text, s.Defaults()), nil
}

// CodeBlock wraps text in a "pc" insertion
// that spells out every option.
// The background is always written as the default one.
func CodeBlock(text string, opts directive.Options) string {
	opts.Background = directive.DefaultBackground

	var sb strings.Builder
	sb.WriteString("[:" + InsertionTag + ":///\n")
	sb.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString(directive.Separator)
	sb.WriteString(opts.Format())
	sb.WriteString("///]\n")
	return sb.String()
}
