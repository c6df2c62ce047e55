// Package interact turns pointer events into separation changes while the
// orbit is under manual control.
package interact

import (
	"log"
	"math"

	"github.com/san-kum/gravitylab/internal/params"
)

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Drag is the pointer state machine. OnDistanceChange receives every
// clamped distance computed while dragging.
type Drag struct {
	OnDistanceChange func(distance float64)

	state  State
	earthX float64
}

func NewDrag(onDistanceChange func(float64)) *Drag {
	return &Drag{OnDistanceChange: onDistanceChange}
}

func (d *Drag) State() State { return d.state }

// PointerDown starts a drag anchored at earthX. It is ignored while the
// orbit runs on its own.
func (d *Drag) PointerDown(autoOrbit bool, earthX float64) bool {
	if autoOrbit {
		return false
	}
	d.state = Dragging
	d.earthX = earthX
	log.Printf("interact: drag start at earth x=%.1f", earthX)
	return true
}

// PointerMove maps the cursor to a new distance and reports it upstream.
// It returns false when no drag is active.
func (d *Drag) PointerMove(cursorX float64) (float64, bool) {
	if d.state != Dragging {
		return 0, false
	}
	dist := Distance(cursorX, d.earthX)
	if d.OnDistanceChange != nil {
		d.OnDistanceChange(dist)
	}
	return dist, true
}

// PointerUp ends any drag, wherever the pointer is released.
func (d *Drag) PointerUp() {
	if d.state == Dragging {
		log.Printf("interact: drag end")
	}
	d.state = Idle
}

// Cancel drops the drag without a final update; used on teardown.
func (d *Drag) Cancel() {
	d.state = Idle
}

// Distance is the horizontal cursor separation from earth, clamped to the
// drag range.
func Distance(cursorX, earthX float64) float64 {
	return math.Max(params.MinDistance, math.Min(params.DragMaxDistance, math.Abs(cursorX-earthX)))
}
