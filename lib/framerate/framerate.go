// Package framerate describes how often an idle window asks to be redrawn.
package framerate

import (
	"fmt"
	"time"
)

// T is a number of frames per second.
type T struct {
	Value int
}

func PerSecond(frames int) T { return T{Value: frames} }

// Interval is the time between two frames. A non-positive rate never
// produces a frame, so it has no interval.
func (rate T) Interval() time.Duration {
	if rate.Value <= 0 {
		return 0
	}
	return time.Second / time.Duration(rate.Value)
}

func (rate T) String() string {
	return fmt.Sprintf("%v frames per second", rate.Value)
}
