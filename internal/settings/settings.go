// Package settings holds the persisted plugin options:
// the default language, whether to show line numbers,
// the background registry, and the default background.
package settings

import (
	"fmt"

	"braces.dev/errtrace"
	"go.abhg.dev/prettycode/internal/background"
	"go.abhg.dev/prettycode/internal/directive"
)

// Section is the configuration section holding the plugin options.
const Section = "main"

// Configuration keys in Section.
const (
	LanguageKey        = "plugin_prettyCode_lang"
	ShowLineNumbersKey = "plugin_prettyCode_ShowLN"
	BackgroundsKey     = "plugin_prettyCode_Bkgs"
	BackgroundKey      = "plugin_prettyCode_Bkg"
)

// Store is a sectioned key/value configuration store.
//
// confstore.File implements it.
type Store interface {
	Get(section, key, fallback string) string
	GetBool(section, key string, fallback bool) bool
	Set(section, key, value string)
	SetBool(section, key string, value bool)
}

// DefaultsStore is a Store that also accepts default values.
type DefaultsStore interface {
	Store

	SetDefault(section, key, value string)
}

// Register writes the out-of-the-box plugin options
// as defaults into the given store.
func Register(store DefaultsStore) error {
	bkgs, err := background.Defaults().MarshalText()
	if err != nil {
		return errtrace.Wrap(err)
	}

	store.SetDefault(Section, LanguageKey, directive.DefaultLanguage)
	store.SetDefault(Section, ShowLineNumbersKey, "False")
	store.SetDefault(Section, BackgroundsKey, string(bkgs))
	store.SetDefault(Section, BackgroundKey, background.DefaultName)
	return nil
}

// Settings are the persisted plugin options.
type Settings struct {
	// Language is the default highlighting language.
	Language string

	// ShowLineNumbers reports whether blocks number their lines
	// unless they say otherwise.
	ShowLineNumbers bool

	// Backgrounds is the registry of named backgrounds.
	Backgrounds *background.Registry

	// Background is the name of the default background.
	// This is background.None or a name in Backgrounds.
	Background string
}

// Load reads the plugin options from the given store.
//
// Missing keys take their out-of-the-box values.
// A malformed background registry is an error.
func Load(store Store) (*Settings, error) {
	s := Settings{
		Language:        store.Get(Section, LanguageKey, directive.DefaultLanguage),
		ShowLineNumbers: store.GetBool(Section, ShowLineNumbersKey, false),
		Background:      store.Get(Section, BackgroundKey, background.DefaultName),
		Backgrounds:     background.Defaults(),
	}

	if raw := store.Get(Section, BackgroundsKey, ""); raw != "" {
		var bkgs background.Registry
		if err := bkgs.UnmarshalText([]byte(raw)); err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("load %v: %w", BackgroundsKey, err))
		}
		s.Backgrounds = &bkgs
	}

	return &s, nil
}

// Save writes the plugin options into the given store.
func (s *Settings) Save(store Store) error {
	bkgs, err := s.Backgrounds.MarshalText()
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("save %v: %w", BackgroundsKey, err))
	}

	store.Set(Section, LanguageKey, s.Language)
	store.SetBool(Section, ShowLineNumbersKey, s.ShowLineNumbers)
	store.Set(Section, BackgroundsKey, string(bkgs))
	store.Set(Section, BackgroundKey, s.Background)
	return nil
}

// Defaults builds the options a code block starts with
// before its own assignments are applied.
func (s *Settings) Defaults() directive.Options {
	opts := directive.Defaults()
	opts.Language = s.Language
	opts.ShowLineNumbers = s.ShowLineNumbers
	return opts
}

// ResolveBackground returns the style for a background name.
//
// The name is matched ignoring case.
// directive.DefaultBackground refers to the configured default.
// ok is false if the name doesn't refer to a background,
// including when it's background.None.
func (s *Settings) ResolveBackground(name string) (style string, ok bool) {
	if name == directive.DefaultBackground {
		name = s.Background
	}
	if s.Backgrounds == nil {
		return "", false
	}
	return s.Backgrounds.Lookup(name)
}
