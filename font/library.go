package font

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// SystemFamily is the name of the font family used for system fonts.
const SystemFamily = "Go"

// Library holds the fonts available for styled text. Font names are
// regularized so that the family name is the root term of a sequence of
// other font names that describe the weight and style, e.g.
// “Go” as the family, “Go Bold”, “Go Bold Italic” etc.
//
// A Library is safe for concurrent use.
type Library struct {
	mu       sync.RWMutex
	fonts    map[string]*entry // by lower-case regularized name
	families map[string]string // lower-case family -> lower-case name of its regular font
	faces    map[faceKey]xfont.Face
}

type entry struct {
	name   string
	family string
	weight Weight
	italic bool
	data   []byte
	parsed *opentype.Font
}

type faceKey struct {
	name string
	size float64
}

// NewLibrary creates a font library which knows the Go fonts.
func NewLibrary() *Library {
	lib := &Library{
		fonts:    make(map[string]*entry),
		families: make(map[string]string),
		faces:    make(map[faceKey]xfont.Face),
	}
	for _, gf := range goFonts {
		w, italic := styleFromName(gf.name)
		lib.insert(&entry{
			name:   gf.name,
			family: gf.family,
			weight: w,
			italic: italic,
			data:   gf.ttf,
		})
	}
	return lib
}

var (
	defaultMu  sync.Mutex
	defaultLib *Library
)

// Default returns the package-wide font library. It is created on first use.
func Default() *Library {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLib == nil {
		defaultLib = NewLibrary()
	}
	return defaultLib
}

// SetDefault replaces the package-wide font library. Setting nil resets it to
// a fresh library with the Go fonts only.
func SetDefault(lib *Library) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLib = lib
}

// insert must be called with lib.mu held for writing (or during construction).
func (lib *Library) insert(e *entry) {
	key := strings.ToLower(e.name)
	lib.fonts[key] = e
	fam := strings.ToLower(e.family)
	if prev, ok := lib.families[fam]; !ok || isPlainer(e, lib.fonts[prev]) {
		lib.families[fam] = key
	}
}

// isPlainer is true if e is closer to an upright regular face than other.
func isPlainer(e, other *entry) bool {
	if other == nil {
		return true
	}
	if e.italic != other.italic {
		return !e.italic
	}
	return abs(int(e.weight-Regular)) < abs(int(other.weight-Regular))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Lookup resolves a font by name at a given point size. name may either be a
// regularized font name, e.g. “Go Mono Bold”, or a family name, in which case
// the family's regular face is returned. Case is not significant.
//
// If no such font exists, Lookup returns an error wrapping ErrFontNotFound.
func (lib *Library) Lookup(name string, size float64) (Font, error) {
	if size <= 0 {
		return Font{}, fmt.Errorf("font size %g: %w", size, ErrIllegalArguments)
	}
	key := strings.ToLower(strings.TrimSpace(name))
	lib.mu.RLock()
	defer lib.mu.RUnlock()
	e, ok := lib.fonts[key]
	if !ok {
		if regular, isFamily := lib.families[key]; isFamily {
			e, ok = lib.fonts[regular]
		}
	}
	if !ok {
		tracer().Debugf("font library: no font named %q", name)
		return Font{}, fmt.Errorf("font %q: %w", name, ErrFontNotFound)
	}
	return e.font(size), nil
}

// System returns the system font for a given size and weight. Weights not
// available in the system family are mapped to the nearest one present.
// System never fails.
func (lib *Library) System(size float64, w Weight) Font {
	name := SystemFamily + " Regular"
	switch {
	case w >= Bold:
		name = SystemFamily + " Bold"
	case w >= Medium:
		name = SystemFamily + " Medium"
	}
	lib.mu.RLock()
	e := lib.fonts[strings.ToLower(name)]
	lib.mu.RUnlock()
	if e == nil { // cannot happen for libraries created by NewLibrary
		return Font{Name: name, Family: SystemFamily, Size: size, Weight: w}
	}
	return e.font(size)
}

// Variant returns the font of f's family matching a weight and slant, keeping
// f's size. If the family does not have such a face, ErrFontNotFound is returned.
func (lib *Library) Variant(f Font, w Weight, italic bool) (Font, error) {
	lib.mu.RLock()
	defer lib.mu.RUnlock()
	var best *entry
	for _, e := range lib.fonts {
		if !strings.EqualFold(e.family, f.Family) || e.italic != italic {
			continue
		}
		if best == nil || abs(int(e.weight-w)) < abs(int(best.weight-w)) ||
			(abs(int(e.weight-w)) == abs(int(best.weight-w)) && e.name < best.name) {
			best = e
		}
	}
	if best == nil {
		return f, fmt.Errorf("variant of %q: %w", f.Family, ErrFontNotFound)
	}
	return best.font(f.Size), nil
}

// Names returns the regularized names of all fonts in the library, sorted.
func (lib *Library) Names() []string {
	lib.mu.RLock()
	defer lib.mu.RUnlock()
	names := make([]string, 0, len(lib.fonts))
	for _, e := range lib.fonts {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}

// Add registers a TrueType or OpenType font, given its raw bytes. It returns
// the regularized name the font is known by.
func (lib *Library) Add(data []byte) (string, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return "", fmt.Errorf("parse font: %w", err)
	}
	var buf sfnt.Buffer
	name, err := f.Name(&buf, sfnt.NameIDFull)
	if err != nil || name == "" {
		return "", fmt.Errorf("font has no name: %w", ErrIllegalArguments)
	}
	family, err := f.Name(&buf, sfnt.NameIDFamily)
	if err != nil || family == "" {
		family = name
	}
	sub, _ := f.Name(&buf, sfnt.NameIDSubfamily)
	w, italic := styleFromName(sub + " " + name)
	lib.mu.Lock()
	defer lib.mu.Unlock()
	lib.insert(&entry{
		name:   name,
		family: family,
		weight: w,
		italic: italic,
		data:   data,
		parsed: f,
	})
	tracer().Debugf("font library: added %q (family %q, %v)", name, family, w)
	return name, nil
}

// AddFile registers a font from a .ttf or .otf file.
func (lib *Library) AddFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return lib.Add(data)
}

// Face returns a font face for f, ready for glyph rendering. Faces are cached
// per font name and size. Clients must not use a face from multiple goroutines.
func (lib *Library) Face(f Font) (xfont.Face, error) {
	key := faceKey{name: strings.ToLower(f.Name), size: f.Size}
	lib.mu.RLock()
	face, ok := lib.faces[key]
	lib.mu.RUnlock()
	if ok {
		return face, nil
	}
	lib.mu.Lock()
	defer lib.mu.Unlock()
	e, ok := lib.fonts[key.name]
	if !ok {
		return nil, fmt.Errorf("face for %q: %w", f.Name, ErrFontNotFound)
	}
	if e.parsed == nil {
		parsed, err := opentype.Parse(e.data)
		if err != nil {
			return nil, fmt.Errorf("parse font %q: %w", e.name, err)
		}
		e.parsed = parsed
	}
	face, err := opentype.NewFace(e.parsed, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	lib.faces[key] = face
	return face, nil
}

func (e *entry) font(size float64) Font {
	return Font{
		Name:   e.name,
		Family: e.family,
		Size:   size,
		Weight: e.weight,
		Italic: e.italic,
	}
}
