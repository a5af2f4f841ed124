package lib

import (
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// LabelPrint draws lines of text centered on an image.
type LabelPrint struct {
	image *ebiten.Image

	Color color.Color
	Font  *Face
}

func NewLabelPrint() *LabelPrint {
	return &LabelPrint{Color: ColorWhite}
}

func (scrp *LabelPrint) Reset(screen *ebiten.Image) {
	scrp.image = screen
}

// PrintCentered draws str centered horizontally. The first line's em box is
// centered vertically; further lines follow below it.
func (scrp *LabelPrint) PrintCentered(str string) {
	face := scrp.Font
	imageB := scrp.image.Bounds()
	metrics := face.Metrics()
	ascent := float64(metrics.Ascent) / 64
	lineHeight := int(math.Ceil(float64(metrics.Height) / 64))

	_, baseline := centeredOrigin(imageB.Dx(), imageB.Dy(), 0, face.Size, ascent)
	for _, line := range strings.Split(str, "\n") {
		x, _ := centeredOrigin(imageB.Dx(), imageB.Dy(), face.MeasureText(line), face.Size, ascent)
		for dx := 0; dx <= face.Stroke; dx++ {
			text.Draw(scrp.image, line, face, imageB.Min.X+x+dx, imageB.Min.Y+baseline, scrp.Color)
		}
		baseline += lineHeight
	}
}

// centeredOrigin returns the dot position for a run of text textW wide whose
// em box (size pixels tall) is centered in a w by h area.
func centeredOrigin(w, h int, textW, size, ascent float64) (x, y int) {
	x = int(math.Round((float64(w) - textW) / 2))
	top := math.Max(float64(h)-size, 0) / 2
	y = int(math.Round(top + ascent))
	return
}
