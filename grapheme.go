package richtext

import (
	"bufio"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
)

var setupGraphemes sync.Once

// graphemeLengths returns the length in runes of each grapheme cluster of t.
// The text is streamed through a segmenter, so there is no limit on its size.
func (t *Text) graphemeLengths() ([]int, error) {
	if t.Len() == 0 {
		return nil, nil
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	segmenter := segment.NewSegmenter(grapheme.NewBreaker(1))
	segmenter.Init(bufio.NewReader(t.Reader()))
	lengths := make([]int, 0, t.Len())
	for segmenter.Next() {
		lengths = append(lengths, utf8.RuneCount(segmenter.Bytes()))
	}
	if err := segmenter.Err(); err != nil {
		return nil, fmt.Errorf("grapheme segmentation: %w", err)
	}
	return lengths, nil
}

// GraphemeCount returns the number of user-perceived characters (grapheme
// clusters, UAX#29) of the text.
func (t *Text) GraphemeCount() int {
	lengths, err := t.graphemeLengths()
	if err != nil {
		tracer().Errorf("richtext: %v", err)
	}
	return len(lengths)
}

// GraphemeRange converts a span of n grapheme clusters, starting at grapheme
// offset, into a rune range suitable for styling calls.
//
//	t := TextFromString("e\u0301te\u0301") // “été” with combining accents, 5 runes
//	r, _ := t.GraphemeRange(1, 2)           // {Offset: 2, Length: 3}
func (t *Text) GraphemeRange(offset, n int) (Range, error) {
	lengths, err := t.graphemeLengths()
	if err != nil {
		return Range{}, err
	}
	if offset < 0 || n < 0 || offset+n > len(lengths) {
		return Range{}, fmt.Errorf("graphemes %d+%d of %d: %w", offset, n, len(lengths), ErrIndexOutOfBounds)
	}
	r := Range{}
	for i, cnt := range lengths[:offset+n] {
		if i < offset {
			r.Offset += cnt
		} else {
			r.Length += cnt
		}
	}
	return r, nil
}
