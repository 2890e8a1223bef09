package markup

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/richtext"
	"github.com/npillmayer/richtext/font"
	"golang.org/x/image/colornames"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultSize is the base font size in points for decoded text.
const DefaultSize = 12.0

// Options configure decoding. The zero value is ready to use.
type Options struct {
	Fonts    *font.Library // defaults to font.Default()
	BaseSize float64       // defaults to DefaultSize
}

func (opts *Options) fonts() *font.Library {
	if opts == nil || opts.Fonts == nil {
		return font.Default()
	}
	return opts.Fonts
}

func (opts *Options) baseSize() float64 {
	if opts == nil || opts.BaseSize <= 0 {
		return DefaultSize
	}
	return opts.BaseSize
}

// FromMarkup decodes an HTML fragment into a styled text. If decoding fails,
// the result is an unstyled text containing s verbatim. FromMarkup never
// returns nil.
func FromMarkup(s string) *richtext.Text {
	return FromMarkupWithOptions(s, nil)
}

// FromMarkupWithOptions is like FromMarkup, with decoding options.
func FromMarkupWithOptions(s string, opts *Options) *richtext.Text {
	text, err := Decode(strings.NewReader(s), opts)
	if err != nil {
		tracer().Errorf("markup: cannot decode, falling back to raw text: %v", err)
		return richtext.TextFromString(strings.ToValidUTF8(s, string(utf8.RuneError)))
	}
	return text
}

// Decode creates a styled text from the textual content of an HTML fragment.
// The fragment should reflect the content of a paragraph-like element or a
// sequence of such elements.
//
// Decode returns ErrMalformedMarkup if the input is not valid UTF-8 or cannot be read.
func Decode(input io.Reader, opts *Options) (*richtext.Text, error) {
	src, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
	}
	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrMalformedMarkup)
	}
	nodes, err := html.ParseFragment(bytes.NewReader(src), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
	}
	d := &decoder{
		text: richtext.TextFromString(""),
		lib:  opts.fonts(),
	}
	ctx := style{size: opts.baseSize()}
	for _, n := range nodes {
		d.collectText(n, ctx)
	}
	text := d.text
	if n := text.Len(); n > 0 && d.last == '\n' {
		if text, err = richtext.Section(text, richtext.Range{Offset: 0, Length: n - 1}); err != nil {
			return nil, err
		}
	}
	if err = text.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
	}
	return text, nil
}

// --- Decoder ---------------------------------------------------------------

type decoder struct {
	text    *richtext.Text
	lib     *font.Library
	last    rune   // last rune written, 0 at start
	pending *style // style of a held back blank
}

// style is the inherited styling context while descending the node tree.
type style struct {
	family    string
	size      float64
	bold      bool
	italic    bool
	mono      bool
	pre       bool
	fg, bg    color.Color
	underline bool
	strike    bool
	link      *url.URL
}

var headingScale = map[atom.Atom]float64{
	atom.H1: 2.0, atom.H2: 1.5, atom.H3: 1.17, atom.H4: 1.0, atom.H5: 0.83, atom.H6: 0.67,
}

// legacy <font size=1…7>, in points
var fontSizes = [...]float64{8, 10, 12, 14, 18, 24, 36}

// legacySize interprets the size attribute of <font>, either absolute (1…7)
// or relative to the default size 3 (+n, -n). The result is clamped to 1…7.
func legacySize(v string) (int, bool) {
	v = strings.TrimSpace(v)
	sz, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	if strings.HasPrefix(v, "+") || strings.HasPrefix(v, "-") {
		sz += 3
	}
	return min(max(sz, 1), len(fontSizes)), true
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Li, atom.Ul, atom.Ol, atom.Pre, atom.Blockquote, atom.Tr,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

func (d *decoder) collectText(n *html.Node, ctx style) {
	switch n.Type {
	case html.TextNode:
		d.appendText(n.Data, ctx)
		return
	case html.ElementNode:
		tracer().Debugf("markup: collect text of <%s>", n.Data)
		switch n.DataAtom {
		case atom.Head, atom.Script, atom.Style, atom.Title:
			return
		case atom.Br:
			d.pending = nil
			d.write("\n", ctx)
			return
		case atom.Img:
			if alt := attr(n, "alt"); alt != "" {
				d.appendText(alt, ctx)
			}
			return
		}
		if isBlock(n.DataAtom) {
			d.endLine(ctx)
		}
		ctx = d.styleElement(n, ctx)
		if n.DataAtom == atom.Li {
			d.write("• ", ctx)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.collectText(c, ctx)
	}
	if n.Type == html.ElementNode && isBlock(n.DataAtom) {
		d.endLine(ctx)
	}
}

// styleElement derives the styling context for the children of n.
func (d *decoder) styleElement(n *html.Node, ctx style) style {
	switch n.DataAtom {
	case atom.B, atom.Strong:
		ctx.bold = true
	case atom.I, atom.Em, atom.Cite, atom.Var:
		ctx.italic = true
	case atom.U, atom.Ins:
		ctx.underline = true
	case atom.S, atom.Strike, atom.Del:
		ctx.strike = true
	case atom.Code, atom.Tt, atom.Kbd, atom.Samp:
		ctx.mono = true
	case atom.Pre:
		ctx.mono, ctx.pre = true, true
	case atom.Mark:
		ctx.bg = colornames.Yellow
	case atom.A:
		if href := attr(n, "href"); href != "" {
			if u, err := url.Parse(href); err == nil {
				ctx.link = u
			} else {
				tracer().Infof("markup: ignoring link %q: %v", href, err)
			}
		}
	case atom.Font:
		if c, ok := parseColor(attr(n, "color")); ok {
			ctx.fg = c
		}
		if face := attr(n, "face"); face != "" {
			ctx.family = strings.TrimSpace(strings.Split(face, ",")[0])
		}
		if sz, ok := legacySize(attr(n, "size")); ok {
			ctx.size = fontSizes[sz-1]
		}
	}
	if scale, ok := headingScale[n.DataAtom]; ok {
		ctx.bold = true
		ctx.size *= scale
	}
	if css := attr(n, "style"); css != "" {
		ctx = applyCSS(css, ctx)
	}
	return ctx
}

// appendText writes character data. Outside of <pre>, runs of white space
// collapse to a single blank, and blanks at the start or end of a line are dropped.
// A trailing blank is held back until more text follows, keeping its style.
func (d *decoder) appendText(s string, ctx style) {
	if ctx.pre {
		d.pending = nil
		d.write(s, ctx)
		return
	}
	s = collapseSpace(s)
	core := strings.Trim(s, " ")
	if core == "" {
		if s != "" && d.pending == nil {
			d.pending = &ctx
		}
		return
	}
	if d.last != 0 && d.last != ' ' && d.last != '\n' {
		if d.pending != nil {
			d.write(" ", *d.pending)
		} else if s[0] == ' ' {
			d.write(" ", ctx)
		}
	}
	d.pending = nil
	d.write(core, ctx)
	if s[len(s)-1] == ' ' {
		d.pending = &ctx
	}
}

// collapseSpace replaces each run of HTML white space by a single blank.
func collapseSpace(s string) string {
	var b strings.Builder
	space := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}
	if space {
		b.WriteByte(' ')
	}
	return b.String()
}

func (d *decoder) endLine(ctx style) {
	d.pending = nil
	if d.last != 0 && d.last != '\n' {
		d.write("\n", ctx)
	}
}

func (d *decoder) write(s string, ctx style) {
	if s == "" {
		return
	}
	d.text.Append(s, d.styler(ctx))
	r, _ := utf8.DecodeLastRuneInString(s)
	d.last = r
}

// styler returns a function which styles a fragment according to ctx.
func (d *decoder) styler(ctx style) func(string) *richtext.Text {
	return func(s string) *richtext.Text {
		frag := richtext.TextFromString(s).Font(d.resolveFont(ctx))
		if ctx.fg != nil {
			frag.Foreground(ctx.fg)
		}
		if ctx.bg != nil {
			frag.Background(ctx.bg)
		}
		if ctx.underline {
			frag.Underline(richtext.LineSingle, nil)
		}
		if ctx.strike {
			frag.Strikethrough(richtext.LineSingle, nil)
		}
		if ctx.link != nil {
			frag.Link(ctx.link)
		}
		return frag
	}
}

func (d *decoder) resolveFont(ctx style) font.Font {
	weight := font.Regular
	if ctx.bold {
		weight = font.Bold
	}
	family := font.SystemFamily
	if ctx.mono {
		family = font.SystemFamily + " Mono"
	}
	if ctx.family != "" {
		family = ctx.family
	}
	f, err := d.lib.Lookup(family, ctx.size)
	if err != nil {
		tracer().Infof("markup: %v, using system font", err)
		return d.lib.System(ctx.size, weight)
	}
	if v, err := d.lib.Variant(f, weight, ctx.italic); err == nil {
		return v
	}
	return f
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
