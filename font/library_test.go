package font

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomonobold"
)

func TestLookupByName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	lib := NewLibrary()
	f, err := lib.Lookup("go bold italic", 14)
	require.NoError(t, err)
	assert.Equal(t, "Go Bold Italic", f.Name)
	assert.Equal(t, "Go", f.Family)
	assert.Equal(t, Bold, f.Weight)
	assert.True(t, f.Italic)
	assert.Equal(t, 14.0, f.Size)
}

func TestLookupFamily(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	lib := NewLibrary()
	f, err := lib.Lookup("Go Mono", 10)
	require.NoError(t, err)
	assert.Equal(t, "Go Mono", f.Name)
	f, err = lib.Lookup("Go", 10)
	require.NoError(t, err)
	assert.Equal(t, "Go Regular", f.Name)
}

func TestLookupUnknown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	lib := NewLibrary()
	_, err := lib.Lookup("DefinitelyNotARealFontName123", 12)
	if !errors.Is(err, ErrFontNotFound) {
		t.Errorf("expected ErrFontNotFound, have %v", err)
	}
	_, err = lib.Lookup("Go", 0)
	assert.ErrorIs(t, err, ErrIllegalArguments)
}

func TestSystemWeights(t *testing.T) {
	lib := NewLibrary()
	cases := []struct {
		w    Weight
		name string
	}{
		{UltraLight, "Go Regular"},
		{Regular, "Go Regular"},
		{Medium, "Go Medium"},
		{Semibold, "Go Medium"},
		{Bold, "Go Bold"},
		{Black, "Go Bold"},
	}
	for _, c := range cases {
		f := lib.System(20, c.w)
		assert.Equal(t, c.name, f.Name, "weight %v", c.w)
		assert.Equal(t, 20.0, f.Size)
	}
}

func TestVariant(t *testing.T) {
	lib := NewLibrary()
	mono, err := lib.Lookup("Go Mono", 9)
	require.NoError(t, err)
	v, err := lib.Variant(mono, Bold, true)
	require.NoError(t, err)
	assert.Equal(t, "Go Mono Bold Italic", v.Name)
	assert.Equal(t, 9.0, v.Size)
	_, err = lib.Variant(Font{Family: "Nope"}, Bold, false)
	assert.ErrorIs(t, err, ErrFontNotFound)
}

func TestAddFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	lib := &Library{
		fonts:    map[string]*entry{},
		families: map[string]string{},
		faces:    nil,
	}
	name, err := lib.Add(gomonobold.TTF)
	require.NoError(t, err)
	t.Logf("registered font %q", name)
	f, err := lib.Lookup(name, 11)
	require.NoError(t, err)
	assert.Equal(t, Bold, f.Weight)
	assert.Contains(t, lib.Names(), name)
	_, err = lib.Add([]byte("no font"))
	assert.Error(t, err)
}

func TestFace(t *testing.T) {
	lib := NewLibrary()
	f := lib.System(12, Regular)
	face, err := lib.Face(f)
	require.NoError(t, err)
	require.NotNil(t, face)
	again, err := lib.Face(f)
	require.NoError(t, err)
	assert.Same(t, face, again)
	_, err = lib.Face(Font{Name: "missing", Size: 12})
	assert.ErrorIs(t, err, ErrFontNotFound)
}

func TestWeightString(t *testing.T) {
	assert.Equal(t, "bold", Bold.String())
	assert.Equal(t, "regular", Regular.String())
	assert.Equal(t, "Weight(42)", Weight(42).String())
}
