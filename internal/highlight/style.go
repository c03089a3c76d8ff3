package highlight

import (
	"fmt"
	"slices"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyleName names the style used when none is configured.
const DefaultStyleName = "friendly"

// DefaultStyle is the style used when none is configured.
var DefaultStyle = styles.Get(DefaultStyleName)

// StyleByName looks up a registered Chroma style.
// Unlike styles.Get, it fails instead of falling back.
func StyleByName(name string) (*chroma.Style, error) {
	if s, ok := styles.Registry[name]; ok {
		return s, nil
	}
	return nil, errtrace.Wrap(fmt.Errorf("unknown style %q: valid values are %q", name, StyleNames()))
}

// StyleNames lists the registered style names, sorted.
func StyleNames() []string {
	names := styles.Names()
	slices.Sort(names)
	return names
}
