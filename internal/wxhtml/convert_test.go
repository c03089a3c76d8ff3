package wxhtml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want string
	}{
		{
			desc: "style span",
			give: `<span style="color: #ff0000; font-weight: bold">hi</span>`,
			want: `<font color="#ff0000"><b>hi</b></font>`,
		},
		{
			desc: "passthrough",
			give: `<div class="x">a &amp; b</div>`,
			want: `<div class="x">a &amp; b</div>`,
		},
		{
			desc: "nested spans",
			give: `<span style="font-style: italic"><span style="color: #000">x</span></span>`,
			want: `<i><font color="#000">x</font></i>`,
		},
		{
			desc: "unknown property",
			give: `<span style="text-decoration: underline; font-style: italic">u</span>`,
			want: `<i>u</i>`,
		},
		{
			desc: "attribute re-escaped",
			give: `<a title='say "hi"' href="?a=1&amp;b=2">x</a>`,
			want: `<a title="say &quot;hi&quot;" href="?a=1&amp;b=2">x</a>`,
		},
		{
			desc: "highlighter output",
			give: `<pre style="background-color:#f0f0f0"><code>` +
				`<span style="display:flex;"><span>` +
				`<span style="color:#007020;font-weight:bold">def</span> ` +
				`<span style="color:#06287e">f</span>():` +
				`<span style="color:#60a0b0;font-style:italic"># &#39;c&#39;</span>` +
				"\n</span></span></code></pre>",
			want: `<pre style="background-color:#f0f0f0"><code>` +
				`<font color="#007020"><b>def</b></font> ` +
				`<font color="#06287e">f</font>():` +
				`<font color="#60a0b0"><i># &#39;c&#39;</i></font>` +
				"\n</code></pre>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := Convert(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_unbalanced(t *testing.T) {
	t.Parallel()

	_, err := Convert(`x</span>`)
	assert.ErrorIs(t, err, ErrUnbalancedSpan)

	_, err = Convert(`<span style="color: red">x`)
	assert.ErrorIs(t, err, ErrUnclosedSpan)
}
