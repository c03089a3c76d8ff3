package highlight

import (
	"slices"
	"strings"
	"testing"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// _markerStyle highlights lines with a color that appears nowhere else.
var _markerStyle = chroma.MustNewStyle("marker", chroma.StyleEntries{
	chroma.Keyword:       "bold #007020",
	chroma.Background:    "bg:#ffffff",
	chroma.LineHighlight: "bg:#fa1234",
})

func TestEngine_Highlight(t *testing.T) {
	t.Parallel()

	var e Engine
	got, err := e.Highlight("\n\ndef main():\n    pass\n\n", "Python", RenderOptions{})
	require.NoError(t, err)

	doc, err := html.Parse(strings.NewReader(got))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, `<div class="source"><pre`), "got %q", got)
	assert.True(t, strings.HasSuffix(got, `</div>`), "got %q", got)

	pre := cascadia.Query(doc, cascadia.MustCompile("div.source > pre"))
	require.NotNil(t, pre, "no pre in %q", got)
	assert.Contains(t, textOf(pre), "def main():")

	// Whitespace around the code is dropped.
	assert.False(t, strings.HasPrefix(textOf(pre), "\n"))

	// Inline styles, no classes.
	assert.NotContains(t, got, "class=\"k")
	assert.Contains(t, got, "font-weight:bold")
}

func TestEngine_Highlight_languageCase(t *testing.T) {
	t.Parallel()

	var e Engine
	for _, lang := range []string{"python", "PYTHON", "Python", "py"} {
		_, err := e.Highlight("x = 1", lang, RenderOptions{})
		assert.NoError(t, err, lang)
	}
}

func TestEngine_Highlight_unknownLanguage(t *testing.T) {
	t.Parallel()

	var e Engine
	for _, lang := range []string{"", "  ", "not a real language"} {
		_, err := e.Highlight("x", lang, RenderOptions{})
		assert.ErrorIs(t, err, ErrUnknownLanguage, "%q", lang)
	}
}

func TestEngine_Highlight_lineNumbers(t *testing.T) {
	t.Parallel()

	e := Engine{Style: _markerStyle}
	got, err := e.Highlight("a = 1\nb = 2\nc = 3", "python", RenderOptions{
		LineNumbers: true,
		StartLine:   10,
	})
	require.NoError(t, err)
	assert.Contains(t, got, ">10</span>")
	assert.Contains(t, got, ">11</span>")

	plain, err := e.Highlight("a = 1\nb = 2\nc = 3", "python", RenderOptions{StartLine: 10})
	require.NoError(t, err)
	assert.NotContains(t, plain, ">10</span>")
}

func TestEngine_Highlight_highlightLines(t *testing.T) {
	t.Parallel()

	const src = "a = 1\nb = 2\nc = 3\nd = 4"

	tests := []struct {
		desc string
		give RenderOptions
		want int // number of highlighted lines
	}{
		{desc: "none", give: RenderOptions{}},
		{
			desc: "one",
			give: RenderOptions{HighlightLines: []int{2}},
			want: 1,
		},
		{
			desc: "unordered",
			give: RenderOptions{HighlightLines: []int{4, 1}},
			want: 2,
		},
		{
			desc: "relative to start line",
			give: RenderOptions{StartLine: 100, HighlightLines: []int{1, 3}},
			want: 2,
		},
		{
			desc: "past the end",
			give: RenderOptions{HighlightLines: []int{9}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			e := Engine{Style: _markerStyle}
			got, err := e.Highlight(src, "python", tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.Count(got, "#fa1234"), "got %q", got)
		})
	}
}

func TestEngine_Languages(t *testing.T) {
	t.Parallel()

	var e Engine
	langs := e.Languages()
	assert.Contains(t, langs, "Python")
	assert.Contains(t, langs, "Go")
	assert.True(t, slices.IsSorted(langs), "languages must be sorted")
}

func TestStyleByName(t *testing.T) {
	t.Parallel()

	s, err := StyleByName("friendly")
	require.NoError(t, err)
	assert.Same(t, DefaultStyle, s)

	_, err = StyleByName("no-such-style")
	assert.ErrorContains(t, err, `unknown style "no-such-style"`)

	assert.Contains(t, StyleNames(), DefaultStyleName)
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return sb.String()
}
