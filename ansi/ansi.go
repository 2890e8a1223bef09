package ansi

import (
	"image/color"
	"io"
	"os"
	"strings"

	fcolor "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/richtext"
	"github.com/npillmayer/richtext/font"
	"golang.org/x/term"
)

// Mode controls whether escape sequences are written.
type Mode int8

const (
	ModeAuto   Mode = iota // escape sequences only when writing to a terminal
	ModeAlways             // always write escape sequences
	ModeNever              // write plain text
)

// Palette is a table of the 16 standard terminal colors: black, red, green,
// yellow, blue, magenta, cyan, white, followed by their bright variants.
type Palette [16]color.Color

// XTermPalette holds the default colors of xterm.
var XTermPalette = Palette{
	rgb(0x00, 0x00, 0x00), rgb(0xcd, 0x00, 0x00), rgb(0x00, 0xcd, 0x00), rgb(0xcd, 0xcd, 0x00),
	rgb(0x00, 0x00, 0xee), rgb(0xcd, 0x00, 0xcd), rgb(0x00, 0xcd, 0xcd), rgb(0xe5, 0xe5, 0xe5),
	rgb(0x7f, 0x7f, 0x7f), rgb(0xff, 0x00, 0x00), rgb(0x00, 0xff, 0x00), rgb(0xff, 0xff, 0x00),
	rgb(0x5c, 0x5c, 0xff), rgb(0xff, 0x00, 0xff), rgb(0x00, 0xff, 0xff), rgb(0xff, 0xff, 0xff),
}

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Format is a type for outputting styled text to a terminal.
// A Format may be used concurrently.
type Format struct {
	Mode    Mode
	palette [16]colorful.Color
}

// NewFormat creates a new format. If palette is nil, XTermPalette is used.
func NewFormat(mode Mode, palette *Palette) *Format {
	if palette == nil {
		palette = &XTermPalette
	}
	f := &Format{Mode: mode}
	for i, c := range palette {
		f.palette[i], _ = colorful.MakeColor(c)
	}
	return f
}

var defaultFormat = NewFormat(ModeAuto, nil)

// Sprint renders a styled text with escape sequences, using the default format.
func Sprint(text *richtext.Text) string {
	return defaultFormat.Sprint(text)
}

// Fprint writes a styled text to w, using the default format.
func Fprint(w io.Writer, text *richtext.Text) error {
	return defaultFormat.Fprint(w, text)
}

// Sprint renders a styled text. Escape sequences are omitted for ModeNever only.
func (f *Format) Sprint(text *richtext.Text) string {
	if text == nil {
		return ""
	}
	return f.render(text, f.Mode != ModeNever)
}

// Fprint writes a styled text to w. With ModeAuto, escape sequences are written
// if w is a terminal and the NO_COLOR environment variable is unset.
//
// If text has failed, nothing is written and its error is returned.
func (f *Format) Fprint(w io.Writer, text *richtext.Text) error {
	if text == nil {
		return nil
	}
	if err := text.Err(); err != nil {
		return err
	}
	escapes := f.Mode == ModeAlways || (f.Mode == ModeAuto && isTerminal(w))
	_, err := io.WriteString(w, f.render(text, escapes))
	return err
}

func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func (f *Format) render(text *richtext.Text, escapes bool) string {
	var b strings.Builder
	for content, attrs := range text.RangeStyleRun() {
		if !escapes || attrs.IsEmpty() {
			b.WriteString(content)
			continue
		}
		c := f.colorFor(attrs)
		if c == nil {
			b.WriteString(content)
			continue
		}
		c.EnableColor()
		b.WriteString(c.Sprint(content))
	}
	return b.String()
}

// colorFor maps attributes to SGR parameters. It returns nil if none of the
// attributes has a terminal representation.
func (f *Format) colorFor(attrs richtext.Attributes) *fcolor.Color {
	var params []fcolor.Attribute
	if attrs.Font != nil {
		if attrs.Font.Weight >= font.Semibold {
			params = append(params, fcolor.Bold)
		}
		if attrs.Font.Italic {
			params = append(params, fcolor.Italic)
		}
	}
	if isDrawn(attrs.Underline) {
		params = append(params, fcolor.Underline)
	}
	if isDrawn(attrs.Strikethrough) {
		params = append(params, fcolor.CrossedOut)
	}
	if attrs.Foreground != nil {
		params = append(params, fgAttribute(f.Nearest(attrs.Foreground)))
	}
	if attrs.Background != nil {
		params = append(params, bgAttribute(f.Nearest(attrs.Background)))
	}
	tracer().Debugf("ansi: %v -> %v", attrs, params)
	if len(params) == 0 {
		return nil
	}
	return fcolor.New(params...)
}

func isDrawn(ls richtext.LineStyle) bool {
	return ls != 0 && ls.Base() != richtext.LineNone
}

// Nearest returns the index of the palette color closest to c, measured as
// distance in CIE L*a*b* space.
func (f *Format) Nearest(c color.Color) int {
	target, _ := colorful.MakeColor(c)
	best, dist := 0, -1.0
	for i, p := range f.palette {
		if d := target.DistanceLab(p); dist < 0 || d < dist {
			best, dist = i, d
		}
	}
	return best
}

func fgAttribute(i int) fcolor.Attribute {
	if i < 8 {
		return fcolor.FgBlack + fcolor.Attribute(i)
	}
	return fcolor.FgHiBlack + fcolor.Attribute(i-8)
}

func bgAttribute(i int) fcolor.Attribute {
	if i < 8 {
		return fcolor.BgBlack + fcolor.Attribute(i)
	}
	return fcolor.BgHiBlack + fcolor.Attribute(i-8)
}
