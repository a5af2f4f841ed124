package lib

import (
	"sync/atomic"
	"time"
)

// repaintTimer asks the event loop for one frame after a delay. Requests
// made while one is pending are dropped.
type repaintTimer struct {
	pending atomic.Bool

	schedule  func()
	afterFunc func(d time.Duration, f func())
}

func newRepaintTimer(schedule func()) *repaintTimer {
	return &repaintTimer{
		schedule: schedule,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

func (timer *repaintTimer) After(d time.Duration) {
	if d <= 0 {
		timer.schedule()
		return
	}
	if !timer.pending.CompareAndSwap(false, true) {
		return
	}
	timer.afterFunc(d, func() {
		timer.pending.Store(false)
		timer.schedule()
	})
}
