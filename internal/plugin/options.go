package plugin

import (
	"errors"
	"fmt"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/prettycode/internal/background"
	"go.abhg.dev/prettycode/internal/directive"
	"go.abhg.dev/prettycode/internal/settings"
)

// OptionsPanelTitle is the title of the plugin's options panel.
const OptionsPanelTitle = "Pretty Code"

// OptionsHost is the host's options dialog.
type OptionsHost interface {
	// AddOptionsPanel registers a panel.
	// newPanel is called every time the dialog is opened.
	AddOptionsPanel(title string, newPanel func() (*OptionsPanel, error))
}

// OptionsPanel holds the state edited by the options panel:
// the default options and the background registry.
//
// Edits are kept in the panel until HandleOk saves them.
type OptionsPanel struct {
	store     settings.Store
	languages []string
	settings  *settings.Settings
}

// NewOptionsPanel loads the current settings into a new panel.
//
// A default language that isn't one of languages
// falls back to directive.DefaultLanguage,
// and a default background that doesn't exist falls back to None.
func NewOptionsPanel(store settings.Store, languages []string) (*OptionsPanel, error) {
	s, err := settings.Load(store)
	if err != nil {
		return nil, err
	}

	p := OptionsPanel{
		store:     store,
		languages: languages,
		settings:  s,
	}
	if err := p.SetLanguage(s.Language); err != nil {
		s.Language = directive.DefaultLanguage
	}
	if err := p.SetBackground(s.Background); err != nil {
		s.Background = background.None
	}
	return &p, nil
}

// Languages lists the language choices.
func (p *OptionsPanel) Languages() []string { return p.languages }

// Language is the selected default language.
func (p *OptionsPanel) Language() string { return p.settings.Language }

// SetLanguage selects the default language.
// The name must match one of the choices, ignoring case.
func (p *OptionsPanel) SetLanguage(name string) error {
	for _, lang := range p.languages {
		if strings.EqualFold(lang, name) {
			p.settings.Language = lang
			return nil
		}
	}
	return errtrace.Wrap(fmt.Errorf("unknown language %q", name))
}

// ShowLineNumbers reports whether line numbers are shown by default.
func (p *OptionsPanel) ShowLineNumbers() bool { return p.settings.ShowLineNumbers }

// SetShowLineNumbers changes whether line numbers are shown by default.
func (p *OptionsPanel) SetShowLineNumbers(show bool) {
	p.settings.ShowLineNumbers = show
}

// Background is the selected default background,
// or background.None.
func (p *OptionsPanel) Background() string { return p.settings.Background }

// BackgroundChoices lists the choices for the default background:
// None followed by all backgrounds.
func (p *OptionsPanel) BackgroundChoices() []string {
	entries := p.settings.Backgrounds.Entries()
	choices := make([]string, 0, len(entries)+1)
	choices = append(choices, background.None)
	for _, e := range entries {
		choices = append(choices, e.Name)
	}
	return choices
}

// SetBackground selects the default background.
func (p *OptionsPanel) SetBackground(name string) error {
	if name == background.None {
		p.settings.Background = name
		return nil
	}
	for _, e := range p.settings.Backgrounds.Entries() {
		if e.Name == name {
			p.settings.Background = name
			return nil
		}
	}
	return errtrace.Wrap(fmt.Errorf("%w: %q", background.ErrNotFound, name))
}

// Backgrounds lists the editable backgrounds.
func (p *OptionsPanel) Backgrounds() []background.Entry {
	return p.settings.Backgrounds.Entries()
}

// AddBackground adds a background with a generated name
// and returns that name.
func (p *OptionsPanel) AddBackground() string {
	return p.settings.Backgrounds.AddNew()
}

// DeleteBackground removes a background.
// Deleting the default background selects None.
func (p *OptionsPanel) DeleteBackground(name string) error {
	if err := p.settings.Backgrounds.Delete(name); err != nil {
		return err
	}
	if strings.EqualFold(p.settings.Background, name) {
		p.settings.Background = background.None
	}
	return nil
}

// RenameBackground renames a background.
// The default background selection follows the rename.
func (p *OptionsPanel) RenameBackground(from, to string) error {
	if err := p.settings.Backgrounds.Rename(from, to); err != nil {
		return err
	}
	if strings.EqualFold(p.settings.Background, from) {
		p.settings.Background = strings.TrimSpace(to)
	}
	return nil
}

// SetBackgroundStyle changes the style of a background.
func (p *OptionsPanel) SetBackgroundStyle(name, style string) error {
	return p.settings.Backgrounds.SetStyle(name, style)
}

// CheckOk validates the panel before it's saved.
// It reports every background whose style isn't a list of CSS declarations.
func (p *OptionsPanel) CheckOk() error {
	var errs []error
	for _, e := range p.settings.Backgrounds.Entries() {
		if err := background.ValidateStyle(e.Style); err != nil {
			errs = append(errs, fmt.Errorf("background %q: %w", e.Name, err))
		}
	}
	return errtrace.Wrap(errors.Join(errs...))
}

// HandleOk saves the panel's state to the configuration store.
func (p *OptionsPanel) HandleOk() error {
	return p.settings.Save(p.store)
}
