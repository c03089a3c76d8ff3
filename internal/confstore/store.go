// Package confstore implements a sectioned key/value configuration store
// persisted as a TOML file.
//
// The store has two layers:
// values set explicitly, which are saved,
// and registered defaults, which are not.
package confstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"sync"

	"braces.dev/errtrace"
	"github.com/pelletier/go-toml/v2"
	"go.abhg.dev/prettycode/internal/errdefer"
)

type sections map[string]map[string]string

func (s sections) get(section, key string) (string, bool) {
	v, ok := s[section][key]
	return v, ok
}

func (s sections) set(section, key, value string) sections {
	if s == nil {
		s = make(sections)
	}
	if s[section] == nil {
		s[section] = make(map[string]string)
	}
	s[section][key] = value
	return s
}

// File is a configuration store backed by a TOML file.
// It's safe for concurrent use.
type File struct {
	path string

	mu       sync.RWMutex
	values   sections
	defaults sections
}

// New builds an empty store that isn't backed by a file.
// Save fails on such a store.
func New() *File {
	return new(File)
}

// Open loads a store from the TOML file at path.
// A missing file yields an empty store that will be created on Save.
func Open(path string) (*File, error) {
	f := File{path: path}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &f, nil
		}
		return nil, errtrace.Wrap(err)
	}

	if err := toml.Unmarshal(b, &f.values); err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("%v: %w", path, err))
	}
	return &f, nil
}

// Path reports the file backing this store, if any.
func (f *File) Path() string { return f.path }

// Get returns the value of a key,
// falling back to its registered default and then to fallback.
func (f *File) Get(section, key, fallback string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if v, ok := f.values.get(section, key); ok {
		return v
	}
	if v, ok := f.defaults.get(section, key); ok {
		return v
	}
	return fallback
}

// GetBool is like Get for boolean values.
// Values that don't parse as booleans yield fallback.
func (f *File) GetBool(section, key string, fallback bool) bool {
	s := f.Get(section, key, "")
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return v
}

// Set sets the value of a key.
func (f *File) Set(section, key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values = f.values.set(section, key, value)
}

// SetBool sets a boolean value, stored as "True" or "False".
func (f *File) SetBool(section, key string, value bool) {
	s := "False"
	if value {
		s = "True"
	}
	f.Set(section, key, s)
}

// SetDefault registers the default value for a key.
// Defaults aren't saved.
func (f *File) SetDefault(section, key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.defaults = f.defaults.set(section, key, value)
}

// Save writes explicitly set values back to the file.
func (f *File) Save() (err error) {
	if f.path == "" {
		return errtrace.Wrap(errors.New("configuration store has no file"))
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	out, err := os.Create(f.path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, out)

	if err := toml.NewEncoder(out).Encode(f.values); err != nil {
		return errtrace.Wrap(fmt.Errorf("%v: %w", f.path, err))
	}
	return nil
}
