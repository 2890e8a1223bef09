package markup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/richtext"
	"github.com/npillmayer/richtext/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func attrsAt(t *testing.T, text *richtext.Text, pos int) richtext.Attributes {
	t.Helper()
	attrs, _, err := text.AttributesAt(pos)
	require.NoError(t, err)
	return attrs
}

func TestDecodeBold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := FromMarkup("Hello <b>bold</b> world")
	require.NoError(t, text.Err())
	assert.Equal(t, "Hello bold world", text.String())
	plain := attrsAt(t, text, 0)
	require.NotNil(t, plain.Font)
	assert.Equal(t, "Go Regular", plain.Font.Name)
	assert.Equal(t, DefaultSize, plain.Font.Size)
	bold := attrsAt(t, text, 6)
	require.NotNil(t, bold.Font)
	assert.Equal(t, "Go Bold", bold.Font.Name)
	_, rng, _ := text.AttributesAt(7)
	assert.Equal(t, richtext.Range{Offset: 6, Length: 4}, rng)
}

func TestDecodeNestedEmphasis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := FromMarkup("<strong>a<em>b</em></strong><code>c</code>")
	assert.Equal(t, "abc", text.String())
	assert.Equal(t, "Go Bold Italic", attrsAt(t, text, 1).Font.Name)
	assert.Equal(t, "Go Mono", attrsAt(t, text, 2).Font.Family)
}

func TestDecodeCSS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	src := `<span style="color:#c00; background-color: yellow; font-size: 150%; text-decoration: underline line-through">x</span>` +
		`<font color="blue" size="7">y</font>`
	text := FromMarkup(src)
	require.NoError(t, text.Err())
	x := attrsAt(t, text, 0)
	assert.Equal(t, "#cc0000", richtext.Hex(x.Foreground))
	assert.Equal(t, richtext.Hex(colornames.Yellow), richtext.Hex(x.Background))
	assert.Equal(t, 18.0, x.Font.Size)
	assert.Equal(t, richtext.LineSingle, x.Underline)
	assert.Equal(t, richtext.LineSingle, x.Strikethrough)
	y := attrsAt(t, text, 1)
	assert.Equal(t, richtext.Hex(colornames.Blue), richtext.Hex(y.Foreground))
	assert.Equal(t, 36.0, y.Font.Size)
	assert.Equal(t, richtext.LineStyle(0), y.Underline)
}

func TestDecodeLegacyFontSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	cases := []struct {
		size     string
		expected float64
	}{
		{"1", 8}, {"3", 12}, {"7", 36}, {"9", 36},
		{"+2", 18}, {"-1", 10}, {"+10", 36}, {"-5", 8},
		{"big", DefaultSize},
	}
	for _, c := range cases {
		text := FromMarkup(`<font size="` + c.size + `">x</font>`)
		f := attrsAt(t, text, 0).Font
		require.NotNil(t, f, c.size)
		assert.Equal(t, c.expected, f.Size, "size=%q", c.size)
	}
}

func TestDecodeBlocksAndWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	cases := []struct {
		src, expected string
	}{
		{"<p>one</p><p>two</p>", "one\ntwo"},
		{"  a   <i>b</i>\n c ", "a b c"},
		{"line<br>break", "line\nbreak"},
		{"<ul><li>a</li><li>b</li></ul>", "• a\n• b"},
		{"<script>alert(1)</script>ok", "ok"},
		{"<pre>a  b</pre>", "a  b"},
	}
	for _, c := range cases {
		text, err := Decode(strings.NewReader(c.src), nil)
		require.NoError(t, err, c.src)
		assert.Equal(t, c.expected, text.String(), c.src)
	}
}

func TestDecodeHeadingAndLink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := FromMarkup(`<h1>Title</h1><a href="https://example.com/x">go</a>`)
	assert.Equal(t, "Title\ngo", text.String())
	h := attrsAt(t, text, 0)
	assert.Equal(t, 24.0, h.Font.Size)
	assert.Equal(t, font.Bold, h.Font.Weight)
	a := attrsAt(t, text, 6)
	require.NotNil(t, a.Link)
	assert.Equal(t, "https://example.com/x", a.Link.String())
	assert.Nil(t, h.Link)
}

func TestDecodeUnknownFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := FromMarkupWithOptions(`<font face="NoSuchFace">x</font>`, &Options{BaseSize: 10})
	require.NoError(t, text.Err())
	f := attrsAt(t, text, 0).Font
	assert.Equal(t, "Go Regular", f.Name)
	assert.Equal(t, 10.0, f.Size)
}

func TestMalformedFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	_, err := Decode(strings.NewReader("bad \xff <b>input</b>"), nil)
	assert.ErrorIs(t, err, ErrMalformedMarkup)
	text := FromMarkup("bad \xff <b>input</b>")
	require.NoError(t, text.Err())
	assert.Equal(t, "bad \uFFFD <b>input</b>", text.String())
	runs := text.StyleRuns()
	require.Len(t, runs, 1)
	assert.True(t, runs[0].Attributes.IsEmpty())
}

func TestEncodePlain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, richtext.TextFromString("a<b\nc")))
	assert.Equal(t, "a&lt;b<br>c", buf.String())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := richtext.TextFromString("Hello World").
		SystemFont(12, font.Regular).
		SystemFont(12, font.Bold, richtext.Range{Offset: 0, Length: 5}).
		Foreground(colornames.Red, richtext.Range{Offset: 6, Length: 5}).
		Underline(richtext.LineSingle, nil, richtext.Range{Offset: 6, Length: 5}).
		LinkString("https://example.com", richtext.Range{Offset: 6, Length: 5})
	require.NoError(t, text.Err())
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, text))
	t.Logf("encoded: %s", buf.String())
	decoded, err := Decode(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, text.String(), decoded.String())
	hello := attrsAt(t, decoded, 0)
	assert.Equal(t, "Go Bold", hello.Font.Name)
	world := attrsAt(t, decoded, 6)
	assert.Equal(t, "Go Regular", world.Font.Name)
	assert.Equal(t, "#ff0000", richtext.Hex(world.Foreground))
	assert.Equal(t, richtext.LineSingle, world.Underline)
	require.NotNil(t, world.Link)
	assert.Equal(t, "https://example.com", world.Link.String())
}

func TestEncodeFailedText(t *testing.T) {
	text := richtext.TextFromString("x").Foreground(colornames.Red, richtext.Range{Offset: 0, Length: 5})
	var buf bytes.Buffer
	assert.ErrorIs(t, Encode(&buf, text), richtext.ErrIndexOutOfBounds)
	assert.Zero(t, buf.Len())
}
