/*
Package richtext offers fluent construction of styled text.

Styled Text

A styled text is a sequence of characters together with runs of style
attributes. Attributes are font, foreground and background color, underline,
strikethrough, stroke, kerning, shadow, paragraph style, link and inline image
attachment. Clients start with a plain string and chain styling calls:

	greet := richtext.TextFromString("Hello").
		SystemFont(20, font.Bold).
		Foreground(colornames.Darkblue).
		Append("!", func(s string) *richtext.Text {
			return richtext.TextFromString(s).Underline(richtext.LineSingle, nil)
		})
	if greet.Err() != nil {
		…
	}

Every styling call mutates the receiver and returns it, so the next call may be
chained. Styling calls accept an optional Range. Without a range, the call
styles the complete text as it is at the time of the call. Ranges are measured
in runes (Unicode code points). Clients dealing with user-perceived characters
may convert grapheme positions with Text.GraphemeRange.

Errors

A range outside of the text is an error and will not be clamped. A font name
which cannot be resolved is an error as well. Errors are sticky: the first error
puts the text into a failed state, in which all further styling calls are
skipped. Check Text.Err at the end of a chain.

Concatenation

Combine and Concat join texts and strings into a new styled text, leaving the
operands untouched.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package richtext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}

// TextError is an error type for the richtext module.
type TextError string

func (e TextError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a range is not contained in the
// text it is applied to.
const ErrIndexOutOfBounds = TextError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TextError("illegal arguments")
