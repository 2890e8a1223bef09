package richtext

// Operand is either a plain string or a styled text.
type Operand interface {
	string | *Text
}

// Combine joins two operands into a new styled text: the left operand's
// characters and attributes, followed by the right operand's characters and
// attributes, shifted by the length of the left operand. Plain strings are
// treated as unstyled text.
//
//	s := Combine("Hi ", greet) // string + text
//	s = Combine(s, "!")        // text + string
//	s = Combine(s, other)      // text + text
//
// Neither operand is modified. If an operand has failed, the result carries
// its error.
func Combine[L, R Operand](l L, r R) *Text {
	return Concat(asText(l), asText(r))
}

// Concat joins any number of styled texts into a new styled text. None of
// the texts is modified; nil texts are skipped.
func Concat(texts ...*Text) *Text {
	n := 0
	for _, t := range texts {
		if t != nil {
			n += t.Len()
		}
	}
	result := &Text{text: make([]rune, 0, n)}
	for _, t := range texts {
		if t == nil {
			continue
		}
		if t.err != nil && result.err == nil {
			result.err = t.err
		}
		result.text = append(result.text, t.text...)
		result.runs = result.runs.concat(t.runs)
	}
	tracer().Debugf("concatenated %d texts, runs = %s", len(texts), result.runs)
	return result
}

func asText[O Operand](o O) *Text {
	switch v := any(o).(type) {
	case *Text:
		return v
	case string:
		return TextFromString(v)
	}
	return nil
}
