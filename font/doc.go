/*
Package font resolves font descriptors for styled text.

A font is identified by its regularized full name, e.g. “Go Bold Italic”, and a
point size. Fonts live in a Library. Every library knows the Go font family
(https://blog.golang.org/go-fonts), which serves as the system font family.
Clients may register additional TrueType or OpenType fonts.

Resolving a font is a lookup only. Font descriptors are small comparable values
and may be stored as text attributes. Loading glyph data is deferred until a
client asks for a face, which is outside of what styled text needs.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package font

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}

// FontError is an error type for the font package.
type FontError string

func (e FontError) Error() string {
	return string(e)
}

// ErrFontNotFound is flagged if a font library has no font of a given name.
const ErrFontNotFound = FontError("font not found")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = FontError("illegal arguments")
