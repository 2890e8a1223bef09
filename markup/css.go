package markup

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/npillmayer/richtext"
	"golang.org/x/image/colornames"
)

// applyCSS interprets the declarations of an inline style attribute.
// Unknown properties and values are ignored.
func applyCSS(css string, ctx style) style {
	for _, decl := range strings.Split(css, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		switch prop {
		case "color":
			if c, ok := parseColor(value); ok {
				ctx.fg = c
			}
		case "background-color", "background":
			if c, ok := parseColor(value); ok {
				ctx.bg = c
			}
		case "font-family":
			family := strings.Split(value, ",")[0]
			ctx.family = strings.Trim(strings.TrimSpace(family), `"'`)
		case "font-size":
			if sz, ok := parseSize(value, ctx.size); ok {
				ctx.size = sz
			}
		case "font-weight":
			ctx.bold = isBoldWeight(value)
		case "font-style":
			v := strings.ToLower(value)
			ctx.italic = v == "italic" || v == "oblique"
		case "text-decoration", "text-decoration-line":
			v := strings.ToLower(value)
			if v == "none" {
				ctx.underline, ctx.strike = false, false
				continue
			}
			ctx.underline = ctx.underline || strings.Contains(v, "underline")
			ctx.strike = ctx.strike || strings.Contains(v, "line-through")
		default:
			tracer().Debugf("markup: ignoring CSS property %q", prop)
		}
	}
	return ctx
}

// parseColor understands hex colors, rgb(…) and SVG color names.
func parseColor(s string) (color.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return nil, false
	case strings.HasPrefix(s, "#"):
		c, err := richtext.ParseColor(s)
		return c, err == nil
	case strings.HasPrefix(s, "rgb("):
		var r, g, b uint8
		if _, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
			return nil, false
		}
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
	}
	c, ok := colornames.Map[s]
	return c, ok
}

// parseSize interprets a CSS length as a font size in points, relative to
// the inherited size for em and percentages.
func parseSize(s string, inherited float64) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	units := []struct {
		suffix string
		scale  func(float64) float64
	}{
		{"pt", func(v float64) float64 { return v }},
		{"px", func(v float64) float64 { return v * 0.75 }},
		{"em", func(v float64) float64 { return v * inherited }},
		{"%", func(v float64) float64 { return v * inherited / 100 }},
	}
	for _, u := range units {
		if num, ok := strings.CutSuffix(s, u.suffix); ok {
			v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
			if err != nil || v <= 0 {
				return 0, false
			}
			return u.scale(v), true
		}
	}
	return 0, false
}

func isBoldWeight(s string) bool {
	switch s = strings.ToLower(s); s {
	case "bold", "bolder":
		return true
	case "normal", "lighter":
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 600
}
