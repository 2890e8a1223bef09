package font

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// see: https://blog.golang.org/go-fonts
type goFontInfo struct {
	name   string
	family string
	ttf    []byte
}

// goFonts are the fonts every library starts with.
var goFonts = []goFontInfo{
	{"Go Regular", "Go", goregular.TTF},
	{"Go Italic", "Go", goitalic.TTF},
	{"Go Medium", "Go", gomedium.TTF},
	{"Go Medium Italic", "Go", gomediumitalic.TTF},
	{"Go Bold", "Go", gobold.TTF},
	{"Go Bold Italic", "Go", gobolditalic.TTF},
	{"Go Mono", "Go Mono", gomono.TTF},
	{"Go Mono Italic", "Go Mono", gomonoitalic.TTF},
	{"Go Mono Bold", "Go Mono", gomonobold.TTF},
	{"Go Mono Bold Italic", "Go Mono", gomonobolditalic.TTF},
	{"Go Smallcaps", "Go Smallcaps", gosmallcaps.TTF},
	{"Go Smallcaps Italic", "Go Smallcaps", gosmallcapsitalic.TTF},
}
