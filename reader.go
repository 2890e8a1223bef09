package richtext

import (
	"io"
	"unicode/utf8"
)

// Reader returns a reader for the UTF-8 bytes of the text's characters.
// Attributes are not part of the byte stream. The reader operates on a
// snapshot of the characters, so later edits of t do not affect it.
func (t *Text) Reader() io.Reader {
	return &textReader{text: append([]rune(nil), t.text...)}
}

type textReader struct {
	text   []rune
	cursor int    // next rune to encode
	buf    []byte // encoded bytes not yet read
}

func (tr *textReader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(tr.buf) == 0 {
			if tr.cursor == len(tr.text) {
				break
			}
			tr.buf = utf8.AppendRune(tr.buf[:0], tr.text[tr.cursor])
			tr.cursor++
		}
		c := copy(p[n:], tr.buf)
		tr.buf = tr.buf[c:]
		n += c
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}
