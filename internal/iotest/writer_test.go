package iotest

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeT struct {
	*testing.T

	Buffer bytes.Buffer
}

func (t *fakeT) Logf(msg string, args ...any) {
	fmt.Fprintf(&t.Buffer, "[%s]", fmt.Sprintf(msg, args...))
}

func TestWriter(t *testing.T) {
	t.Parallel()

	fakeT := fakeT{T: t}
	w := Writer(&fakeT)

	n, err := io.WriteString(w, "foo\nbar")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, "[foo]", fakeT.Buffer.String())

	_, err = io.WriteString(w, "baz\n\nqux\n")
	require.NoError(t, err)
	assert.Equal(t, "[foo][barbaz][][qux]", fakeT.Buffer.String())
}

func TestWriter_flush(t *testing.T) {
	t.Parallel()

	fakeT := fakeT{T: t}
	w := Writer(&fakeT).(*writer)

	_, err := io.WriteString(w, "partial")
	require.NoError(t, err)
	assert.Empty(t, fakeT.Buffer.String())

	w.flush()
	assert.Equal(t, "[partial]", fakeT.Buffer.String())

	w.flush()
	assert.Equal(t, "[partial]", fakeT.Buffer.String(), "nothing left to flush")
}
