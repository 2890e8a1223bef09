package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/richtext"
	"github.com/npillmayer/richtext/font"
	"golang.org/x/net/html"
)

// Encode writes a styled text as an HTML fragment. Each run of uniform
// attributes becomes a span element with inline CSS, links become anchor
// elements and newlines become br elements. Attributes without an HTML
// equivalent are omitted, as are inline attachments.
//
// Decoding the output of Encode yields the same characters, fonts, colors,
// decorations and links.
func Encode(w io.Writer, text *richtext.Text) error {
	if text == nil {
		return nil
	}
	if err := text.Err(); err != nil {
		return err
	}
	var b strings.Builder
	for content, attrs := range text.RangeStyleRun() {
		content = strings.ReplaceAll(content, string(richtext.ObjectReplacement), "")
		if content == "" {
			continue
		}
		if attrs.Link != nil {
			fmt.Fprintf(&b, `<a href="%s">`, html.EscapeString(attrs.Link.String()))
		}
		css := cssOf(attrs)
		if css != "" {
			fmt.Fprintf(&b, `<span style="%s">`, html.EscapeString(css))
		}
		for i, line := range strings.Split(content, "\n") {
			if i > 0 {
				b.WriteString("<br>")
			}
			b.WriteString(html.EscapeString(line))
		}
		if css != "" {
			b.WriteString("</span>")
		}
		if attrs.Link != nil {
			b.WriteString("</a>")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// cssOf returns the inline CSS declarations for a set of attributes.
func cssOf(attrs richtext.Attributes) string {
	var decls []string
	add := func(prop, format string, args ...any) {
		decls = append(decls, prop+":"+fmt.Sprintf(format, args...))
	}
	if f := attrs.Font; f != nil {
		add("font-family", "'%s'", f.Family)
		add("font-size", "%gpt", f.Size)
		if f.Weight >= font.Semibold {
			add("font-weight", "bold")
		}
		if f.Italic {
			add("font-style", "italic")
		}
	}
	if attrs.Foreground != nil {
		add("color", "%s", richtext.Hex(attrs.Foreground))
	}
	if attrs.Background != nil {
		add("background-color", "%s", richtext.Hex(attrs.Background))
	}
	var deco []string
	if attrs.Underline != 0 && attrs.Underline.Base() != richtext.LineNone {
		deco = append(deco, "underline")
	}
	if attrs.Strikethrough != 0 && attrs.Strikethrough.Base() != richtext.LineNone {
		deco = append(deco, "line-through")
	}
	if len(deco) > 0 {
		add("text-decoration", "%s", strings.Join(deco, " "))
		if c := decorationColor(attrs); c != "" {
			add("text-decoration-color", "%s", c)
		}
	}
	return strings.Join(decls, ";")
}

// CSS knows a single decoration color. Underline color takes precedence.
func decorationColor(attrs richtext.Attributes) string {
	if attrs.UnderlineColor != nil {
		return richtext.Hex(attrs.UnderlineColor)
	}
	return richtext.Hex(attrs.StrikethroughColor)
}
