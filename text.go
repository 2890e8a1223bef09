package richtext

import (
	"fmt"
	"iter"
)

// --- Styled Text -----------------------------------------------------------

// Text is a styled text. Its characters and its attribute runs are
// automatically synchronized.
//
// A Text is not safe for concurrent mutation. Clients sharing a text between
// goroutines must either serialize access or hand out copies.
type Text struct {
	text []rune
	runs runs
	err  error // sticky error, see Err
}

// TextFromString creates a stylable text from a string. The text does not
// carry any attributes.
func TextFromString(s string) *Text {
	t := &Text{text: []rune(s)}
	if len(t.text) > 0 {
		t.runs = runs{{length: len(t.text)}}
	}
	return t
}

// Copy returns an independent copy of t, including its failure state.
func (t *Text) Copy() *Text {
	return &Text{
		text: append([]rune(nil), t.text...),
		runs: t.runs.clone(),
		err:  t.err,
	}
}

// Len returns the length of the text in runes.
func (t *Text) Len() int {
	return len(t.text)
}

// String returns the raw text without any attributes.
func (t *Text) String() string {
	return string(t.text)
}

// Runes returns a copy of the raw text as runes.
func (t *Text) Runes() []rune {
	return append([]rune(nil), t.text...)
}

// Err returns the first error which occurred while styling the text, if any.
// Once a text has an error, styling calls have no effect.
func (t *Text) Err() error {
	return t.err
}

// fail puts t into the failed state. The first error wins.
func (t *Text) fail(err error) *Text {
	tracer().Errorf("richtext: %v", err)
	if t.err == nil {
		t.err = err
	}
	return t
}

// AttributesAt returns the attributes at rune position pos, together with the
// range of the run of uniform attributes containing pos.
func (t *Text) AttributesAt(pos int) (Attributes, Range, error) {
	rn, spn, ok := t.runs.at(pos)
	if !ok {
		return Attributes{}, Range{}, fmt.Errorf("position %d in text of length %d: %w",
			pos, t.Len(), ErrIndexOutOfBounds)
	}
	return rn.attrs, spn.asRange(), nil
}

// StyleChange holds attributes and the text position where the run starts.
type StyleChange struct {
	Attributes Attributes
	Position   int
	Length     int
}

// StyleRuns returns a slice of attribute runs for a styled text.
func (t *Text) StyleRuns() []StyleChange {
	slice := make([]StyleChange, len(t.runs))
	pos := 0
	for i, rn := range t.runs {
		slice[i] = StyleChange{Attributes: rn.attrs, Position: pos, Length: rn.length}
		pos += rn.length
	}
	return slice
}

// EachStyleRun applies a function to each run of uniform attributes.
// pos is the text position of the run within the styled text.
// Iteration stops at the first error returned by f.
func (t *Text) EachStyleRun(f func(content string, attrs Attributes, pos int) error) error {
	pos := 0
	for _, rn := range t.runs {
		if err := f(string(t.text[pos:pos+rn.length]), rn.attrs, pos); err != nil {
			return err
		}
		pos += rn.length
	}
	return nil
}

// RangeStyleRun returns an iterator over the runs of uniform attributes.
func (t *Text) RangeStyleRun() iter.Seq2[string, Attributes] {
	return func(yield func(string, Attributes) bool) {
		pos := 0
		for _, rn := range t.runs {
			if !yield(string(t.text[pos:pos+rn.length]), rn.attrs) {
				return
			}
			pos += rn.length
		}
	}
}

// Section copies a piece of styled text, delimited by r.
func Section(t *Text, r Range) (*Text, error) {
	spn, err := spanOf([]Range{r}, t.Len())
	if err != nil {
		return nil, err
	}
	return &Text{
		text: append([]rune(nil), t.text[spn.l:spn.r]...),
		runs: t.runs.section(spn),
	}, nil
}
