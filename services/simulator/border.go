package simulator

import (
	"math"
	"time"
)

const borderMax = 100.0

// BorderState is the decorative highlight around the search box.
type BorderState struct {
	// Position is the sweep position in percent, within [0, 100].
	Position float64
	// Suspended is true while the input has focus; the border is drawn solid.
	Suspended bool
	// Forward is true while the position is increasing.
	Forward bool
	// Tick and Step let a renderer keep animating between snapshots.
	Tick time.Duration
	Step float64
}

// borderSweep bounces a highlight between 0 and 100 percent, one step per
// tick. The position is derived from the ticks elapsed since the sweep last
// (re)started, so no timer is needed for it.
type borderSweep struct {
	tick      time.Duration
	step      float64
	startedAt time.Duration
	suspended bool
}

func newBorderSweep(tick time.Duration, step float64) borderSweep {
	return borderSweep{tick: tick, step: step}
}

func (b *borderSweep) suspend() {
	b.suspended = true
}

// resume restarts the sweep at position 0 moving forward.
func (b *borderSweep) resume(now time.Duration) {
	b.suspended = false
	b.startedAt = now
}

func (b *borderSweep) state(now time.Duration) BorderState {
	if b.suspended {
		return BorderState{Suspended: true, Forward: true, Tick: b.tick, Step: b.step}
	}
	if b.tick <= 0 || b.step <= 0 {
		return BorderState{Forward: true}
	}

	steps := int64((now - b.startedAt) / b.tick)
	if steps < 0 {
		steps = 0
	}
	leg := int64(math.Round(borderMax / b.step))
	if leg < 1 {
		leg = 1
	}
	k := steps % (2 * leg)
	forward := k < leg
	if k > leg {
		k = 2*leg - k
	}

	pos := float64(k) * b.step
	return BorderState{
		Position: math.Min(math.Max(pos, 0), borderMax),
		Forward:  forward,
		Tick:     b.tick,
		Step:     b.step,
	}
}
