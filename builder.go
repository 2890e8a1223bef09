package richtext

import (
	"fmt"
	"image"
	"image/color"
	"net/url"

	"github.com/npillmayer/richtext/font"
)

// SetAttributes applies a set of attributes to a range of the text, or to the
// complete text if no range is given. Attributes not set in attrs are left
// untouched. A range exceeding the text puts t into the failed state with
// ErrIndexOutOfBounds.
//
// All other styling calls are expressed in terms of SetAttributes.
func (t *Text) SetAttributes(attrs Attributes, rng ...Range) *Text {
	if t.err != nil {
		return t
	}
	spn, err := spanOf(rng, t.Len())
	if err != nil {
		return t.fail(err)
	}
	t.runs = t.runs.style(attrs, spn)
	return t
}

// Font sets the font.
func (t *Text) Font(f font.Font, rng ...Range) *Text {
	if f.IsVoid() {
		return t.fail(fmt.Errorf("font is void: %w", ErrIllegalArguments))
	}
	return t.SetAttributes(Attributes{Font: &f}, rng...)
}

// CustomFont sets a font given by name and point size, resolved from the
// default font library. If there is no such font, t is left unstyled and put
// into the failed state with an error wrapping font.ErrFontNotFound.
func (t *Text) CustomFont(name string, size float64, rng ...Range) *Text {
	return t.CustomFontFrom(font.Default(), name, size, rng...)
}

// CustomFontFrom is like CustomFont, resolving the font from lib.
func (t *Text) CustomFontFrom(lib *font.Library, name string, size float64, rng ...Range) *Text {
	if t.err != nil {
		return t
	}
	f, err := lib.Lookup(name, size)
	if err != nil {
		return t.fail(fmt.Errorf("custom font: %w", err))
	}
	return t.Font(f, rng...)
}

// SystemFont sets the system font at a given size and weight. Use font.Regular
// for the normal weight.
func (t *Text) SystemFont(size float64, w font.Weight, rng ...Range) *Text {
	if size <= 0 {
		return t.fail(fmt.Errorf("system font size %g: %w", size, ErrIllegalArguments))
	}
	return t.Font(font.Default().System(size, w), rng...)
}

// Foreground sets the text color.
func (t *Text) Foreground(c color.Color, rng ...Range) *Text {
	if c == nil {
		return t.fail(fmt.Errorf("foreground color is nil: %w", ErrIllegalArguments))
	}
	return t.SetAttributes(Attributes{Foreground: c}, rng...)
}

// Background sets the color behind the text.
func (t *Text) Background(c color.Color, rng ...Range) *Text {
	if c == nil {
		return t.fail(fmt.Errorf("background color is nil: %w", ErrIllegalArguments))
	}
	return t.SetAttributes(Attributes{Background: c}, rng...)
}

// ParagraphStyle sets the paragraph style, replacing any paragraph style the
// range had before.
func (t *Text) ParagraphStyle(ps ParagraphStyle, rng ...Range) *Text {
	return t.SetAttributes(Attributes{Paragraph: &ps}, rng...)
}

// Underline sets the underline style. c may be nil, in which case the line
// is drawn in the foreground color. LineNone removes an underline.
func (t *Text) Underline(style LineStyle, c color.Color, rng ...Range) *Text {
	style = normalizeLine(style)
	return t.SetAttributes(Attributes{Underline: style, UnderlineColor: c}, rng...)
}

// Strikethrough sets the strikethrough style. c may be nil, in which case the
// line is drawn in the foreground color. LineNone removes a strikethrough.
func (t *Text) Strikethrough(style LineStyle, c color.Color, rng ...Range) *Text {
	style = normalizeLine(style)
	return t.SetAttributes(Attributes{Strikethrough: style, StrikethroughColor: c}, rng...)
}

// normalizeLine turns the zero style into LineNone and a bare pattern into a
// single patterned line.
func normalizeLine(style LineStyle) LineStyle {
	switch {
	case style == 0:
		return LineNone
	case style.Base() == 0:
		return style | LineSingle
	}
	return style
}

// Stroke sets the stroke width, as a percentage of the font size. A negative
// width strokes and fills the glyphs, a positive width strokes only. c may be
// nil, in which case the stroke uses the foreground color.
func (t *Text) Stroke(width float64, c color.Color, rng ...Range) *Text {
	return t.SetAttributes(Attributes{StrokeWidth: &width, StrokeColor: c}, rng...)
}

// Kerning sets the character spacing adjustment in points. 0 disables kerning.
func (t *Text) Kerning(v float64, rng ...Range) *Text {
	return t.SetAttributes(Attributes{Kerning: &v}, rng...)
}

// Shadow sets a drop shadow.
func (t *Text) Shadow(s Shadow, rng ...Range) *Text {
	return t.SetAttributes(Attributes{Shadow: &s}, rng...)
}

// Link makes the text a link to u. Handling activation of links is up to the
// client displaying the text.
func (t *Text) Link(u *url.URL, rng ...Range) *Text {
	if u == nil {
		return t.fail(fmt.Errorf("link is nil: %w", ErrIllegalArguments))
	}
	link := *u
	return t.SetAttributes(Attributes{Link: &link}, rng...)
}

// LinkString is like Link, parsing the URL from a string.
func (t *Text) LinkString(s string, rng ...Range) *Text {
	if t.err != nil {
		return t
	}
	u, err := url.Parse(s)
	if err != nil {
		return t.fail(fmt.Errorf("link %q: %v: %w", s, err, ErrIllegalArguments))
	}
	return t.Link(u, rng...)
}

// Attachment attaches an inline image to a range. bounds may be nil, in which
// case the natural size of the image is used.
func (t *Text) Attachment(img image.Image, bounds *image.Rectangle, rng ...Range) *Text {
	if img == nil {
		return t.fail(fmt.Errorf("attachment image is nil: %w", ErrIllegalArguments))
	}
	return t.SetAttributes(Attributes{Attachment: NewAttachment(img, bounds)}, rng...)
}

// AppendAttachment appends a placeholder character carrying an inline image.
func (t *Text) AppendAttachment(img image.Image, bounds *image.Rectangle) *Text {
	return t.Append(string(ObjectReplacement), func(s string) *Text {
		return TextFromString(s).Attachment(img, bounds)
	})
}

// Append styles a string with a function and appends the result to t.
// style receives s and returns a new styled fragment; the fragment's
// attributes are shifted to the current end of t. If style is nil, s is
// appended without attributes.
//
// If the fragment has failed, t takes over its error.
func (t *Text) Append(s string, style func(string) *Text) *Text {
	if t.err != nil {
		return t
	}
	if style == nil {
		return t.AppendText(TextFromString(s))
	}
	frag := style(s)
	if frag == nil {
		return t.fail(fmt.Errorf("append: style function returned nil: %w", ErrIllegalArguments))
	}
	return t.AppendText(frag)
}

// AppendText appends a styled fragment to t. The fragment is not modified.
func (t *Text) AppendText(frag *Text) *Text {
	if t.err != nil {
		return t
	}
	if frag == nil {
		return t
	}
	if frag.err != nil {
		return t.fail(frag.err)
	}
	t.text = append(t.text, frag.text...)
	t.runs = t.runs.concat(frag.runs)
	return t
}
