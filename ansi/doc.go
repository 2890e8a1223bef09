/*
Package ansi renders styled text for terminals, using ANSI SGR escape sequences.

Terminals have no notion of fonts or sizes. A Format maps what it can: bold
and italic fonts, underline and strikethrough, and foreground and background
colors, which are reduced to the nearest color of a 16-color palette.
Other attributes are dropped.

	ansi.Fprint(os.Stdout, text)

No line breaking or bidi reordering is done; the text is written in logical order.
*/
package ansi

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}
