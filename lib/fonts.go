package lib

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	FontGoBold     = "go-bold"
	FontGoMonoBold = "go-mono-bold"
	FontMPlus      = "mplus"
)

type fontSource struct {
	name string
	ttf  []byte

	// mplus only ships a regular weight, so it gets drawn twice
	// with a horizontal offset.
	fauxBold bool
}

var fontSources = []fontSource{
	{name: FontGoBold, ttf: gobold.TTF},
	{name: FontGoMonoBold, ttf: gomonobold.TTF},
	{name: FontMPlus, ttf: fonts.MPlus1pRegular_ttf, fauxBold: true},
}

func FontNames() []string {
	names := make([]string, 0, len(fontSources))
	for _, src := range fontSources {
		names = append(names, src.name)
	}
	return names
}

func IsKnownFont(name string) bool {
	_, ok := lookupFont(name)
	return ok
}

func lookupFont(name string) (fontSource, bool) {
	for _, src := range fontSources {
		if src.name == name {
			return src, true
		}
	}
	return fontSource{}, false
}

// Face is a font face at a fixed pixel size.
type Face struct {
	font.Face
	Size float64

	// Extra horizontal pixels drawn to the right of each glyph run.
	Stroke int
}

// LoadFace parses the named font at size pixels.
func LoadFace(name string, size float64) (*Face, error) {
	src, ok := lookupFont(name)
	if !ok {
		return nil, fmt.Errorf("unknown font %q", name)
	}

	tt, err := opentype.Parse(src.ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font %v: %w", name, err)
	}

	// 72 dpi makes one point one pixel.
	const dpi = 72
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create %v face: %w", name, err)
	}

	f := &Face{Face: face, Size: size}
	if src.fauxBold {
		f.Stroke = 1
	}
	return f, nil
}

// MeasureText returns the advance width in pixels of the widest line in s.
func (f *Face) MeasureText(s string) float64 {
	var widest fixed.Int26_6
	for _, line := range strings.Split(s, "\n") {
		if adv := font.MeasureString(f.Face, line); adv > widest {
			widest = adv
		}
	}
	if widest == 0 {
		return 0
	}
	return float64(widest)/64 + float64(f.Stroke)
}
