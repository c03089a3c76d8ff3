package flagvalue

import (
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"braces.dev/errtrace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pair is a "key=value" flag value.
type pair struct{ Key, Value string }

var _ flag.Getter = (*pair)(nil)

func (p pair) Get() any       { return p }
func (p pair) String() string { return p.Key + "=" + p.Value }

func (p *pair) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return errtrace.Wrap(errors.New("expected form 'key=value'"))
	}
	p.Key, p.Value = key, value
	return nil
}

func TestList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc       string
		give       []string
		want       []pair
		wantString string
	}{
		{
			desc: "no arguments",
			give: []string{"-wrap"},
		},
		{
			desc:       "separate",
			give:       []string{"-option", "lang=Go"},
			want:       []pair{{"lang", "Go"}},
			wantString: "lang=Go",
		},
		{
			desc:       "joint",
			give:       []string{"-option=lang=Go"},
			want:       []pair{{"lang", "Go"}},
			wantString: "lang=Go",
		},
		{
			desc:       "interleaved",
			give:       []string{"-option", "lang=Go", "-wrap", "-option=bkg=None"},
			want:       []pair{{"lang", "Go"}, {"bkg", "None"}},
			wantString: "lang=Go; bkg=None",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)

			var got []pair
			list := ListOf(&got)
			fset.Var(list, "option", "")
			_ = fset.Bool("wrap", false, "")
			require.NoError(t, fset.Parse(tt.give))

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, list.Get(), "Get")
			assert.Equal(t, tt.wantString, list.String(), "String")
		})
	}
}

func TestList_error(t *testing.T) {
	t.Parallel()

	fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	var got []pair
	fset.Var(ListOf(&got), "option", "")

	err := fset.Parse([]string{"-option=lang=Go", "-option=lang", "-option", "bkg=None"})
	assert.ErrorContains(t, err, "expected form 'key=value'")
	assert.Equal(t, []pair{{"lang", "Go"}}, got, "stops at the first bad value")
}
