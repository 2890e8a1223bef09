package richtext

import (
	"fmt"
	"strings"
)

// --- Range -----------------------------------------------------------------

// Range is a contiguous span of runes within a text, starting at Offset.
type Range struct {
	Offset int
	Length int
}

// Between returns the range [from, to).
func Between(from, to int) Range {
	if from > to {
		from, to = to, from
	}
	return Range{Offset: from, Length: to - from}
}

// End returns the position after the last rune of r.
func (r Range) End() int {
	return r.Offset + r.Length
}

func (r Range) String() string {
	return fmt.Sprintf("[%d…%d)", r.Offset, r.End())
}

// --- Span ------------------------------------------------------------------

type span struct {
	l int
	r int
}

func (spn span) void() bool {
	return spn.r <= spn.l
}

func (spn span) len() int {
	if spn.void() {
		return 0
	}
	return spn.r - spn.l
}

func (spn span) asRange() Range {
	return Range{Offset: spn.l, Length: spn.len()}
}

// spanOf resolves an optional range against a text length. Omitting the range
// selects the whole text. Ranges exceeding the text are rejected, never clamped.
func spanOf(rng []Range, length int) (span, error) {
	switch len(rng) {
	case 0:
		return span{0, length}, nil
	case 1:
	default:
		return span{}, fmt.Errorf("%d ranges given, at most 1 allowed: %w", len(rng), ErrIllegalArguments)
	}
	r := rng[0]
	if r.Offset < 0 || r.Length < 0 || r.End() > length {
		return span{}, fmt.Errorf("range %v exceeds text of length %d: %w", r, length, ErrIndexOutOfBounds)
	}
	return span{r.Offset, r.End()}, nil
}

// --- Runs of Attributes ----------------------------------------------------

// run is a section of text with uniform attributes.
type run struct {
	attrs  Attributes
	length int // length of this run in runes
}

// split into 2 runs at position i, resulting in two runs with equal attributes
// and lengths < |rn|.
func (rn run) split(i int) (run, run) {
	return run{attrs: rn.attrs, length: i}, run{attrs: rn.attrs, length: rn.length - i}
}

// runs hold the attributes applied to a text. Runs cover the text without gaps,
// adjacent runs always differ in their attributes.
type runs []run

// Len returns the overall length in runes for these runs.
func (rs runs) Len() int {
	n := 0
	for _, rn := range rs {
		n += rn.length
	}
	return n
}

// String returns an informational string for these runs. Clients must not rely
// on the format of the string.
func (rs runs) String() string {
	var sb strings.Builder
	for i, rn := range rs {
		if i > 0 {
			sb.WriteByte('|')
		}
		fmt.Fprintf(&sb, "%d:%s", rn.length, rn.attrs)
	}
	return sb.String()
}

func (rs runs) clone() runs {
	if len(rs) == 0 {
		return nil
	}
	c := make(runs, len(rs))
	copy(c, rs)
	return c
}

// splitAt makes sure that a run starts at position p.
func (rs runs) splitAt(p int) runs {
	pos := 0
	for i, rn := range rs {
		if p <= pos {
			return rs
		}
		if p < pos+rn.length {
			left, right := rn.split(p - pos)
			out := make(runs, 0, len(rs)+1)
			out = append(out, rs[:i]...)
			out = append(out, left, right)
			return append(out, rs[i+1:]...)
		}
		pos += rn.length
	}
	return rs
}

// style merges attrs into all runs covering spn.
func (rs runs) style(attrs Attributes, spn span) runs {
	if spn.void() {
		return rs
	}
	rs = rs.splitAt(spn.l).splitAt(spn.r)
	pos := 0
	for i := range rs {
		if pos >= spn.l && pos < spn.r {
			rs[i].attrs = rs[i].attrs.merge(attrs)
		}
		pos += rs[i].length
	}
	tracer().Debugf("runs after styling %v: %s", spn.asRange(), rs)
	return rs.coalesce()
}

// coalesce joins adjacent runs with equal attributes and drops empty runs.
func (rs runs) coalesce() runs {
	out := rs[:0]
	for _, rn := range rs {
		if rn.length == 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].attrs.Equals(rn.attrs) {
			out[n-1].length += rn.length
			continue
		}
		out = append(out, rn)
	}
	return out
}

// concat returns a fresh set of runs, appending other after rs.
func (rs runs) concat(other runs) runs {
	out := make(runs, 0, len(rs)+len(other))
	out = append(out, rs...)
	out = append(out, other...)
	return out.coalesce()
}

// section copies the runs covering spn, re-anchored at 0.
func (rs runs) section(spn span) runs {
	var out runs
	pos := 0
	for _, rn := range rs {
		l, r := max(pos, spn.l), min(pos+rn.length, spn.r)
		if l < r {
			out = append(out, run{attrs: rn.attrs, length: r - l})
		}
		pos += rn.length
	}
	return out
}

// at returns the run containing position p, together with the run's span.
func (rs runs) at(p int) (run, span, bool) {
	pos := 0
	for _, rn := range rs {
		if p >= pos && p < pos+rn.length {
			return rn, span{pos, pos + rn.length}, true
		}
		pos += rn.length
	}
	return run{}, span{}, false
}
