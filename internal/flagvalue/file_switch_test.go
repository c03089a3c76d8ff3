package flagvalue

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFileSwitch(t *testing.T, args ...string) *FileSwitch {
	t.Helper()

	fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	var fs FileSwitch
	fset.Var(&fs, "debug", "")
	require.NoError(t, fset.Parse(args))
	return &fs
}

func TestFileSwitch_parse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc     string
		give     []string
		want     string
		wantBool bool
	}{
		{desc: "absent"},
		{desc: "bare", give: []string{"-debug"}, want: "-", wantBool: true},
		{desc: "path", give: []string{"-debug=run.log"}, want: "run.log", wantBool: true},
		{desc: "disabled", give: []string{"-debug", "-debug=false"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			fs := parseFileSwitch(t, tt.give...)
			assert.Equal(t, tt.want, fs.Get())
			assert.Equal(t, tt.want, fs.String())
			assert.Equal(t, tt.wantBool, fs.Bool())
		})
	}
}

func TestFileSwitch_Create(t *testing.T) {
	t.Parallel()

	t.Run("absent", func(t *testing.T) {
		t.Parallel()

		got, done, err := parseFileSwitch(t).Create(new(bytes.Buffer))
		require.NoError(t, err)
		assert.True(t, got == io.Discard, "expected io.Discard, got %v", got)
		require.NoError(t, done())
	})

	t.Run("fallback", func(t *testing.T) {
		t.Parallel()

		buff := new(bytes.Buffer)
		got, done, err := parseFileSwitch(t, "-debug").Create(buff)
		require.NoError(t, err)
		assert.True(t, got == buff, "expected fallback, got %v", got)
		require.NoError(t, done())
	})

	t.Run("appends to file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "run.log")
		fs := parseFileSwitch(t, "-debug="+path)

		for _, line := range []string{"first\n", "second\n"} {
			w, done, err := fs.Create(new(bytes.Buffer))
			require.NoError(t, err)
			_, err = io.WriteString(w, line)
			require.NoError(t, err)
			require.NoError(t, done())
		}

		body, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "first\nsecond\n", string(body))
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "does_not_exist", "run.log")
		_, _, err := parseFileSwitch(t, "-debug="+path).Create(new(bytes.Buffer))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
