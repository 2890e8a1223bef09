package richtext

import (
	"golang.org/x/text/unicode/bidi"
)

// NaturalDirection determines the writing direction of a range of text from
// its first strong character, skipping isolated sequences (rules P2 and P3 of
// the Unicode Bidi Algorithm). If the range has no strong character,
// DirectionNatural is returned.
func (t *Text) NaturalDirection(rng ...Range) (WritingDirection, error) {
	spn, err := spanOf(rng, t.Len())
	if err != nil {
		return DirectionNatural, err
	}
	isolates := 0
	for _, r := range t.text[spn.l:spn.r] {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.LRI, bidi.RLI, bidi.FSI:
			isolates++
		case bidi.PDI:
			if isolates > 0 {
				isolates--
			}
		case bidi.L:
			if isolates == 0 {
				return DirectionLeftToRight, nil
			}
		case bidi.R, bidi.AL:
			if isolates == 0 {
				return DirectionRightToLeft, nil
			}
		case bidi.B:
			return DirectionNatural, nil // paragraph separator
		}
	}
	return DirectionNatural, nil
}
