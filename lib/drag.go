package lib

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nvlled/carrot"
)

// Window is the part of the window system a drag needs. Cursor positions
// are relative to the window.
type Window interface {
	WindowPosition() (x, y int)
	SetWindowPosition(x, y int)
	CursorPosition() (x, y int)
	PrimaryPressed() bool
}

type ebitenWindow struct{}

func (ebitenWindow) WindowPosition() (x, y int) { return ebiten.WindowPosition() }
func (ebitenWindow) SetWindowPosition(x, y int) { ebiten.SetWindowPosition(x, y) }
func (ebitenWindow) CursorPosition() (x, y int) { return ebiten.CursorPosition() }
func (ebitenWindow) PrimaryPressed() bool       { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) }

// windowDrag moves the window along with the cursor while the primary
// button stays down. It stands in for the window manager's own move
// handling, which undecorated windows lose.
type windowDrag struct {
	win       Window
	script    *carrot.Script
	requested bool
}

func newWindowDrag(win Window) *windowDrag {
	drag := &windowDrag{win: win}
	drag.script = carrot.Start(drag.coroutine)
	return drag
}

func (drag *windowDrag) Start()  { drag.requested = true }
func (drag *windowDrag) Update() { drag.script.Update() }

func (drag *windowDrag) coroutine(in *carrot.Invoker) {
	for {
		in.Yield()
		in.UntilFunc(func() bool {
			return drag.requested
		})
		drag.requested = false

		startX, startY := drag.cursorOnScreen()
		winX, winY := drag.win.WindowPosition()
		log.WithField("x", winX).WithField("y", winY).Debug("drag started")

		for drag.win.PrimaryPressed() {
			x, y := drag.cursorOnScreen()
			drag.win.SetWindowPosition(winX+x-startX, winY+y-startY)
			in.Yield()
		}
	}
}

func (drag *windowDrag) cursorOnScreen() (x, y int) {
	wx, wy := drag.win.WindowPosition()
	cx, cy := drag.win.CursorPosition()
	return wx + cx, wy + cy
}
