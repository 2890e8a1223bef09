package richtext

import (
	"io"
	"testing"
	"testing/iotest"
)

func TestReader(t *testing.T) {
	text := TextFromString("Grüße, 世界").Kerning(1)
	b, err := io.ReadAll(iotest.OneByteReader(text.Reader()))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "Grüße, 世界" {
		t.Errorf("expected reader to return 'Grüße, 世界', has '%s'", string(b))
	}
	r := text.Reader()
	text.AppendText(TextFromString("!"))
	b, _ = io.ReadAll(r)
	if string(b) != "Grüße, 世界" {
		t.Errorf("expected reader to ignore later appends, has '%s'", string(b))
	}
	if err := iotest.TestReader(TextFromString("abc").Reader(), []byte("abc")); err != nil {
		t.Error(err)
	}
}
