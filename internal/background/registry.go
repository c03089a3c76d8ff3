// Package background manages the named styles
// used to frame rendered code blocks.
package background

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"braces.dev/errtrace"
	"github.com/aymerick/douceur/parser"
	"github.com/pelletier/go-toml/v2"
	"go.abhg.dev/prettycode/internal/must"
	"golang.org/x/text/cases"
)

const (
	// Default is the reserved name that refers to
	// the configured default background.
	// It is never stored in a registry.
	Default = "default"

	// None is the reserved name for "no background".
	None = "None"

	// DefaultName is the background selected out of the box.
	DefaultName = "Light Blue"

	// Template is the style given to new backgrounds.
	Template = "background-color: #F7F9FA; border: 1px #8CACBB dashed; width: 80%; padding: 4px; margin: 2"

	_newNameFormat = "Bkg %d"
)

var (
	// ErrEmptyName indicates a blank background name.
	ErrEmptyName = errors.New("background name is empty")

	// ErrReservedName indicates use of Default or None as a name.
	ErrReservedName = errors.New("background name is reserved")

	// ErrDuplicateName indicates a name already in use.
	ErrDuplicateName = errors.New("background name already exists")

	// ErrNotFound indicates a name that isn't in the registry.
	ErrNotFound = errors.New("background not found")
)

// Entry is a single named background.
type Entry struct {
	Name  string
	Style string
}

// Registry maps background names to CSS declarations.
//
// Names are unique under case-insensitive comparison.
// The zero value is an empty registry.
type Registry struct {
	// folded name => entry
	entries map[string]Entry
}

// Defaults returns a registry with the built-in backgrounds.
func Defaults() *Registry {
	var r Registry
	must.NotErrorf(r.Add(DefaultName, Template), "add %q", DefaultName)
	must.NotErrorf(r.Add("Light Yellow",
		"background-color: #FFFFDD; border: 1px #8CACBB dashed; width: 80%; padding: 4px; margin: 2",
	), "add Light Yellow")
	return &r
}

// Len reports the number of backgrounds.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns all backgrounds sorted by name.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}

// Lookup returns the style for a name, ignoring case.
func (r *Registry) Lookup(name string) (style string, ok bool) {
	e, ok := r.entries[fold(name)]
	return e.Style, ok
}

// Add adds a new background.
// Names are trimmed and must be non-empty, unique, and not reserved.
func (r *Registry) Add(name, style string) error {
	name, err := r.checkName(name)
	if err != nil {
		return err
	}

	if r.entries == nil {
		r.entries = make(map[string]Entry)
	}
	r.entries[fold(name)] = Entry{Name: name, Style: strings.TrimSpace(style)}
	return nil
}

// AddNew adds a background with the template style
// and a generated unique name, returning that name.
func (r *Registry) AddNew() string {
	for i := 1; ; i++ {
		name := fmt.Sprintf(_newNameFormat, i)
		if _, ok := r.entries[fold(name)]; ok {
			continue
		}
		must.NotErrorf(r.Add(name, Template), "add %q", name)
		return name
	}
}

// SetStyle changes the style of an existing background.
func (r *Registry) SetStyle(name, style string) error {
	key := fold(name)
	e, ok := r.entries[key]
	if !ok {
		return errtrace.Wrap(fmt.Errorf("%w: %q", ErrNotFound, name))
	}
	e.Style = strings.TrimSpace(style)
	r.entries[key] = e
	return nil
}

// Rename gives an existing background a new name.
// Renaming to the same name with different case is allowed.
func (r *Registry) Rename(from, to string) error {
	oldKey := fold(from)
	e, ok := r.entries[oldKey]
	if !ok {
		return errtrace.Wrap(fmt.Errorf("%w: %q", ErrNotFound, from))
	}

	to = strings.TrimSpace(to)
	if fold(to) != oldKey {
		var err error
		if to, err = r.checkName(to); err != nil {
			return err
		}
	}

	delete(r.entries, oldKey)
	e.Name = to
	r.entries[fold(to)] = e
	return nil
}

// Delete removes a background.
func (r *Registry) Delete(name string) error {
	key := fold(name)
	if _, ok := r.entries[key]; !ok {
		return errtrace.Wrap(fmt.Errorf("%w: %q", ErrNotFound, name))
	}
	delete(r.entries, key)
	return nil
}

func (r *Registry) checkName(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", errtrace.Wrap(ErrEmptyName)
	case fold(name) == fold(Default), name == None:
		return "", errtrace.Wrap(fmt.Errorf("%w: %q", ErrReservedName, name))
	}
	if _, ok := r.entries[fold(name)]; ok {
		return "", errtrace.Wrap(fmt.Errorf("%w: %q", ErrDuplicateName, name))
	}
	return name, nil
}

// MarshalText encodes the registry as a TOML table of name = style.
func (r *Registry) MarshalText() ([]byte, error) {
	m := make(map[string]string, len(r.entries))
	for _, e := range r.entries {
		m[e.Name] = e.Style
	}
	b, err := toml.Marshal(m)
	return b, errtrace.Wrap(err)
}

// UnmarshalText replaces the contents of the registry
// with a TOML table of name = style.
func (r *Registry) UnmarshalText(b []byte) error {
	var m map[string]string
	if err := toml.Unmarshal(b, &m); err != nil {
		return errtrace.Wrap(fmt.Errorf("decode backgrounds: %w", err))
	}

	var fresh Registry
	for name, style := range m {
		if err := fresh.Add(name, style); err != nil {
			return errtrace.Wrap(fmt.Errorf("decode backgrounds: %w", err))
		}
	}
	*r = fresh
	return nil
}

// ValidateStyle reports whether style is a list of CSS declarations.
func ValidateStyle(style string) error {
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("bad style %q: %w", style, err))
	}
	if len(decls) == 0 {
		return errtrace.Wrap(fmt.Errorf("bad style %q: no declarations", style))
	}
	return nil
}

func fold(name string) string {
	// Casers hold state and can't be shared.
	return cases.Fold().String(strings.TrimSpace(name))
}
