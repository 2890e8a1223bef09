package richtext

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGraphemeRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := TextFromString("e\u0301te\u0301!")
	if text.Len() != 6 {
		t.Fatalf("expected 6 runes, have %d", text.Len())
	}
	if n := text.GraphemeCount(); n != 4 {
		t.Errorf("expected 4 graphemes, have %d", n)
	}
	r, err := text.GraphemeRange(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if r != (Range{Offset: 2, Length: 3}) {
		t.Errorf("expected rune range [2…5), have %v", r)
	}
	if _, err = text.GraphemeRange(3, 2); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected grapheme range beyond text to fail, have %v", err)
	}
}

func TestGraphemesOfEmptyText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := TextFromString("")
	if n := text.GraphemeCount(); n != 0 {
		t.Errorf("expected empty text to have 0 graphemes, has %d", n)
	}
	r, err := text.GraphemeRange(0, 0)
	if err != nil || r != (Range{}) {
		t.Errorf("expected empty range for empty text, have %v, %v", r, err)
	}
	if _, err = text.GraphemeRange(0, 1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected grapheme range in empty text to fail, have %v", err)
	}
}

func TestGraphemesOfLongText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := TextFromString(strings.Repeat("a", 70000) + "e\u0301")
	if n := text.GraphemeCount(); n != 70001 {
		t.Errorf("expected 70001 graphemes, have %d", n)
	}
	r, err := text.GraphemeRange(70000, 1)
	if err != nil {
		t.Fatal(err)
	}
	if r != (Range{Offset: 70000, Length: 2}) {
		t.Errorf("expected rune range [70000…70002), have %v", r)
	}
	if r, _ = text.GraphemeRange(0, 1); r != (Range{Offset: 0, Length: 1}) {
		t.Errorf("expected rune range [0…1), have %v", r)
	}
}

func TestNaturalDirection(t *testing.T) {
	cases := []struct {
		s    string
		want WritingDirection
	}{
		{"Hello", DirectionLeftToRight},
		{"123 שלום", DirectionRightToLeft},
		{"\u2067abc\u2069 مرحبا", DirectionRightToLeft}, // isolate is skipped
		{"1234 !", DirectionNatural},
	}
	for _, c := range cases {
		d, err := TextFromString(c.s).NaturalDirection()
		if err != nil {
			t.Fatal(err)
		}
		if d != c.want {
			t.Errorf("expected direction of %q to be %v, have %v", c.s, c.want, d)
		}
	}
	text := TextFromString("abc שלום")
	if d, _ := text.NaturalDirection(Range{4, 4}); d != DirectionRightToLeft {
		t.Errorf("expected direction of range to be rtl, have %v", d)
	}
}
