package richtext

import (
	"fmt"
	"image"
	"image/color"
	"net/url"
	"reflect"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/richtext/font"
)

// Attributes is a set of style attributes, applicable to a run of text.
// Each field is one attribute key; the zero value of a field means “not set”.
//
// Applying attributes to a range merges them field by field: fields set in the
// new attributes replace what the range had, unset fields leave it alone.
// Some keys have a companion color (underline, strikethrough, stroke). A
// companion color is only recorded where its key is set; a nil companion
// color means “use the foreground color”.
type Attributes struct {
	Font               *font.Font
	Foreground         color.Color
	Background         color.Color
	Underline          LineStyle
	UnderlineColor     color.Color
	Strikethrough      LineStyle
	StrikethroughColor color.Color
	StrokeWidth        *float64 // percentage of font size; negative = stroke and fill
	StrokeColor        color.Color
	Kerning            *float64 // in points; 0 disables kerning
	Shadow             *Shadow
	Paragraph          *ParagraphStyle
	Link               *url.URL
	Attachment         *Attachment
}

// IsEmpty is true if no attribute is set.
func (a Attributes) IsEmpty() bool {
	return a.Equals(Attributes{})
}

// merge returns a with all fields of b set that are set in b.
func (a Attributes) merge(b Attributes) Attributes {
	if b.Font != nil {
		a.Font = b.Font
	}
	if b.Foreground != nil {
		a.Foreground = b.Foreground
	}
	if b.Background != nil {
		a.Background = b.Background
	}
	a.Underline, a.UnderlineColor = mergeDecoration(a.Underline, a.UnderlineColor,
		b.Underline, b.UnderlineColor)
	a.Strikethrough, a.StrikethroughColor = mergeDecoration(a.Strikethrough, a.StrikethroughColor,
		b.Strikethrough, b.StrikethroughColor)
	if b.StrokeWidth != nil {
		a.StrokeWidth, a.StrokeColor = b.StrokeWidth, b.StrokeColor
	} else if b.StrokeColor != nil && a.StrokeWidth != nil {
		a.StrokeColor = b.StrokeColor
	}
	if b.Kerning != nil {
		a.Kerning = b.Kerning
	}
	if b.Shadow != nil {
		a.Shadow = b.Shadow
	}
	if b.Paragraph != nil {
		a.Paragraph = b.Paragraph
	}
	if b.Link != nil {
		a.Link = b.Link
	}
	if b.Attachment != nil {
		a.Attachment = b.Attachment
	}
	return a
}

// mergeDecoration sets a line style together with its color. LineNone removes
// the decoration. A color without a style only re-colors an existing decoration.
func mergeDecoration(style LineStyle, c color.Color, newStyle LineStyle, newColor color.Color) (LineStyle, color.Color) {
	switch {
	case newStyle.Base() == LineNone:
		return 0, nil
	case newStyle != 0:
		return newStyle, newColor
	case newColor != nil && style != 0:
		return style, newColor
	}
	return style, c
}

// Equals compares two attribute sets by value.
func (a Attributes) Equals(b Attributes) bool {
	return sameFont(a.Font, b.Font) &&
		sameColor(a.Foreground, b.Foreground) &&
		sameColor(a.Background, b.Background) &&
		a.Underline == b.Underline && sameColor(a.UnderlineColor, b.UnderlineColor) &&
		a.Strikethrough == b.Strikethrough && sameColor(a.StrikethroughColor, b.StrikethroughColor) &&
		sameFloat(a.StrokeWidth, b.StrokeWidth) && sameColor(a.StrokeColor, b.StrokeColor) &&
		sameFloat(a.Kerning, b.Kerning) &&
		a.Shadow.Equals(b.Shadow) &&
		sameParagraph(a.Paragraph, b.Paragraph) &&
		sameLink(a.Link, b.Link) &&
		a.Attachment.Equals(b.Attachment)
}

// String returns an informational string listing the attributes set.
// Clients must not rely on the format of the string.
func (a Attributes) String() string {
	var parts []string
	add := func(format string, args ...any) {
		parts = append(parts, fmt.Sprintf(format, args...))
	}
	if a.Font != nil {
		add("font=%s", a.Font)
	}
	if a.Foreground != nil {
		add("fg=%s", Hex(a.Foreground))
	}
	if a.Background != nil {
		add("bg=%s", Hex(a.Background))
	}
	if a.Underline != 0 {
		add("underline=%s", a.Underline)
	}
	if a.Strikethrough != 0 {
		add("strikethrough=%s", a.Strikethrough)
	}
	if a.StrokeWidth != nil {
		add("stroke=%g", *a.StrokeWidth)
	}
	if a.Kerning != nil {
		add("kern=%g", *a.Kerning)
	}
	if a.Shadow != nil {
		add("shadow")
	}
	if a.Paragraph != nil {
		add("para")
	}
	if a.Link != nil {
		add("link=%s", a.Link)
	}
	if a.Attachment != nil {
		add("attachment=%v", a.Attachment.Bounds)
	}
	if len(parts) == 0 {
		return "[plain]"
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Hex returns the hex representation “#rrggbb” of a color, ignoring alpha.
func Hex(c color.Color) string {
	if c == nil {
		return ""
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

// ParseColor parses a hex color “#rgb” or “#rrggbb”.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", s, ErrIllegalArguments)
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func sameFont(a, b *font.Font) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameParagraph(a, b *ParagraphStyle) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameLink(a, b *url.URL) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}

// --- Decoration lines ------------------------------------------------------

// LineStyle is the style of an underline or strikethrough. It is one of the
// line styles, optionally or'ed with a pattern and with LineByWord.
// The zero value means “not set”.
type LineStyle uint16

// Line styles.
const (
	LineNone LineStyle = iota + 1 // removes a decoration
	LineSingle
	LineThick
	LineDouble
)

// Line patterns, to be combined with a line style, e.g. LineSingle|PatternDot.
const (
	PatternDot LineStyle = 1 << (iota + 8)
	PatternDash
	PatternDashDot
	PatternDashDotDot
	LineByWord // draw the line under words only, not under whitespace
)

const lineStyleMask = 0xff

// Base returns the line style without pattern flags.
func (ls LineStyle) Base() LineStyle {
	return ls & lineStyleMask
}

func (ls LineStyle) String() string {
	var s string
	switch ls.Base() {
	case 0:
		return "unset"
	case LineNone:
		s = "none"
	case LineSingle:
		s = "single"
	case LineThick:
		s = "thick"
	case LineDouble:
		s = "double"
	default:
		s = fmt.Sprintf("LineStyle(%d)", ls.Base())
	}
	for _, p := range []struct {
		flag LineStyle
		name string
	}{{PatternDot, "dot"}, {PatternDash, "dash"}, {PatternDashDot, "dashdot"},
		{PatternDashDotDot, "dashdotdot"}, {LineByWord, "byword"}} {
		if ls&p.flag != 0 {
			s += "+" + p.name
		}
	}
	return s
}

// --- Shadow ----------------------------------------------------------------

// Point is an offset in points.
type Point struct {
	X, Y float64
}

type shadowField uint8

const (
	shadowOffset shadowField = 1 << iota
	shadowColor
	shadowBlur
)

// DefaultShadowColor is the color of a shadow without explicit color:
// black with one third opacity.
var DefaultShadowColor color.Color = color.NRGBA{A: 0x55}

// Shadow describes a drop shadow. Shadows are created with NewShadow; fields
// not given keep their defaults (no offset, DefaultShadowColor, no blur).
type Shadow struct {
	offset Point
	color  color.Color
	blur   float64
	set    shadowField
}

// ShadowOption sets a field of a Shadow.
type ShadowOption func(*Shadow)

// ShadowOffset sets the offset of a shadow.
func ShadowOffset(x, y float64) ShadowOption {
	return func(s *Shadow) {
		s.offset = Point{X: x, Y: y}
		s.set |= shadowOffset
	}
}

// ShadowColor sets the color of a shadow.
func ShadowColor(c color.Color) ShadowOption {
	return func(s *Shadow) {
		if c == nil {
			return
		}
		s.color = c
		s.set |= shadowColor
	}
}

// ShadowBlur sets the blur radius of a shadow.
func ShadowBlur(radius float64) ShadowOption {
	return func(s *Shadow) {
		s.blur = radius
		s.set |= shadowBlur
	}
}

// NewShadow creates a shadow from the options given.
func NewShadow(opts ...ShadowOption) Shadow {
	var s Shadow
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Offset returns the shadow's offset.
func (s Shadow) Offset() Point { return s.offset }

// BlurRadius returns the shadow's blur radius.
func (s Shadow) BlurRadius() float64 { return s.blur }

// Color returns the shadow's color.
func (s Shadow) Color() color.Color {
	if s.set&shadowColor == 0 {
		return DefaultShadowColor
	}
	return s.color
}

// Equals compares two shadows by value. Either of them may be nil.
func (s *Shadow) Equals(other *Shadow) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.set == other.set && s.offset == other.offset && s.blur == other.blur &&
		sameColor(s.Color(), other.Color())
}

// --- Attachment ------------------------------------------------------------

// ObjectReplacement is the placeholder character for an attachment.
const ObjectReplacement = '\uFFFC'

// Attachment is an inline image.
type Attachment struct {
	Image  image.Image
	Bounds image.Rectangle // defaults to the image's bounds
}

// NewAttachment creates an attachment for an image. If bounds is nil, the
// natural size of the image is used.
func NewAttachment(img image.Image, bounds *image.Rectangle) *Attachment {
	a := &Attachment{Image: img}
	if bounds != nil {
		a.Bounds = *bounds
	} else if img != nil {
		a.Bounds = img.Bounds()
	}
	return a
}

// Equals compares two attachments. Images are compared by identity.
func (a *Attachment) Equals(other *Attachment) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Bounds == other.Bounds && sameImage(a.Image, other.Image)
}

func sameImage(a, b image.Image) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
