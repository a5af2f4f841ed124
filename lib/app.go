package lib

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// App runs a Label inside an ebiten window and serves as its Host.
type App struct {
	config  Config
	label   *Label
	drag    *windowDrag
	repaint *repaintTimer
}

func NewApp(config Config, face *Face) *App {
	return &App{
		config:  config,
		label:   NewLabel(config, face),
		drag:    newWindowDrag(ebitenWindow{}),
		repaint: newRepaintTimer(ebiten.ScheduleFrame),
	}
}

func (g *App) Update() error {
	g.label.Update(g)
	g.drag.Update()
	return nil
}

func (g *App) Draw(screen *ebiten.Image) {
	g.label.Draw(screen)
}

func (g *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}

func (g *App) Resize(width, height float64) {
	ebiten.SetWindowSize(windowPixels(width), windowPixels(height))
}

func (g *App) StartDrag() {
	g.drag.Start()
}

func (g *App) PrimaryPressed() bool {
	return ebitenWindow{}.PrimaryPressed()
}

func (g *App) RequestRepaintAfter(d time.Duration) {
	g.repaint.After(d)
}

func windowPixels(v float64) int {
	return int(math.Ceil(v))
}

// Run opens the label window and blocks until it is closed.
func Run(config Config) error {
	face, err := LoadFace(config.Font, config.FontSize)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	ebiten.SetFPSMode(ebiten.FPSModeVsyncOffMinimum)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowSize(windowPixels(config.Width), windowPixels(config.Height))
	ebiten.SetWindowDecorated(!config.Undecorated)
	ebiten.SetWindowFloating(config.AlwaysOnTop)
	if config.Background.A < 255 {
		ebiten.SetScreenTransparent(true)
	}

	log.WithField("text", config.Text).
		WithField("bg", FormatHexColor(config.Background)).
		WithField("fg", FormatHexColor(config.Foreground)).
		WithField("font", config.Font).
		Debug("opening label window")

	if err := ebiten.RunGame(NewApp(config, face)); err != nil {
		return fmt.Errorf("run label window: %w", err)
	}
	return nil
}
