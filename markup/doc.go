/*
Package markup converts between HTML and styled text.

Decoding supports the subset of HTML which is meaningful for inline styled
text: emphasis and strong elements, underline and strikethrough elements,
links, legacy font elements, headings and block elements, and the CSS
properties color, background-color, font-family, font-size, font-weight,
font-style and text-decoration in style attributes.

	text := markup.FromMarkup(`Hello <b>bold</b> <span style="color:#c00">world</span>`)

FromMarkup never fails. If the input cannot be decoded, it returns an
unstyled text holding the input verbatim. Clients wanting to know about
decoding errors call Decode instead.

Encode writes a styled text as HTML, using span elements with inline CSS.
*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}

// MarkupError is an error type for the markup package.
type MarkupError string

func (e MarkupError) Error() string {
	return string(e)
}

// ErrMalformedMarkup is flagged if an input cannot be decoded.
const ErrMalformedMarkup = MarkupError("malformed markup")
