package font

import (
	"fmt"
	"strings"
)

// Weight is the stroke weight of a font.
type Weight int8

// Font weights, from lightest to heaviest.
const (
	UltraLight Weight = iota - 3
	Thin
	Light
	Regular // the normal weight
	Medium
	Semibold
	Bold
	Heavy
	Black
)

var weightNames = [...]string{
	"ultralight", "thin", "light", "regular", "medium", "semibold", "bold", "heavy", "black",
}

func (w Weight) String() string {
	i := int(w) - int(UltraLight)
	if i < 0 || i >= len(weightNames) {
		return fmt.Sprintf("Weight(%d)", w)
	}
	return weightNames[i]
}

// Font describes a resolved font at a given size. Fonts are created by a
// Library. Two fonts are equal if they have the same name and size.
type Font struct {
	Name   string  // regularized full name, e.g. “Go Bold”
	Family string  // family name, e.g. “Go”
	Size   float64 // size in points
	Weight Weight
	Italic bool
}

// WithSize returns a copy of f with a different point size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

// IsVoid reports whether f is the zero font, i.e. has not been resolved.
func (f Font) IsVoid() bool {
	return f.Name == ""
}

func (f Font) String() string {
	if f.IsVoid() {
		return "[no font]"
	}
	return fmt.Sprintf("%s %gpt", f.Name, f.Size)
}

// styleFromName derives weight and slant from a font's (sub)family name.
// Order of the checks matters, as “semibold” contains “bold”.
func styleFromName(name string) (Weight, bool) {
	n := strings.ToLower(name)
	italic := strings.Contains(n, "italic") || strings.Contains(n, "oblique")
	switch {
	case strings.Contains(n, "ultralight"), strings.Contains(n, "extralight"):
		return UltraLight, italic
	case strings.Contains(n, "thin"), strings.Contains(n, "hairline"):
		return Thin, italic
	case strings.Contains(n, "light"):
		return Light, italic
	case strings.Contains(n, "semibold"), strings.Contains(n, "demibold"):
		return Semibold, italic
	case strings.Contains(n, "extrabold"), strings.Contains(n, "heavy"):
		return Heavy, italic
	case strings.Contains(n, "black"):
		return Black, italic
	case strings.Contains(n, "bold"):
		return Bold, italic
	case strings.Contains(n, "medium"):
		return Medium, italic
	}
	return Regular, italic
}
