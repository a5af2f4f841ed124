package lib

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nvlled/label-it/lib/framerate"
)

const (
	paddingX = 40
	paddingY = 50
)

// Idle windows are redrawn at this rate even without input.
var heartbeat = framerate.PerSecond(4)

type State int

const (
	// The window still has its initial size.
	StateUnsized State = iota
	// The window was fitted to the text. Terminal.
	StateSized
)

func (state State) String() string {
	switch state {
	case StateUnsized:
		return "unsized"
	case StateSized:
		return "sized"
	}
	return "invalid-state"
}

// Host is the window system the label is rendered into. It owns the event
// loop and calls Label.Update once per tick.
type Host interface {
	Resize(width, height float64)
	StartDrag()
	PrimaryPressed() bool
	RequestRepaintAfter(d time.Duration)
}

type Measurer interface {
	MeasureText(s string) float64
}

type Label struct {
	config   Config
	measurer Measurer
	scrp     *LabelPrint

	state      State
	wasPressed bool
}

func NewLabel(config Config, face *Face) *Label {
	scrp := NewLabelPrint()
	scrp.Font = face
	scrp.Color = config.Foreground

	return &Label{
		config:   config,
		measurer: face,
		scrp:     scrp,
	}
}

func (label *Label) State() State { return label.state }

// FitSize is the window size that fits the label text.
func (label *Label) FitSize() (width, height float64) {
	width = label.measurer.MeasureText(label.config.Text) + paddingX
	height = label.config.FontSize + paddingY
	return
}

func (label *Label) Update(host Host) {
	if label.state == StateUnsized {
		w, h := label.FitSize()
		log.WithField("width", w).WithField("height", h).Debug("fitting window to text")
		host.Resize(w, h)
		label.state = StateSized
	}

	pressed := host.PrimaryPressed()
	if label.config.Undecorated && pressed && !label.wasPressed {
		host.StartDrag()
	}
	label.wasPressed = pressed

	host.RequestRepaintAfter(heartbeat.Interval())
}

func (label *Label) Draw(screen *ebiten.Image) {
	screen.Fill(label.config.Background)
	label.scrp.Reset(screen)
	label.scrp.PrintCentered(label.config.Text)
}
