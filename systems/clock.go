package systems

import (
	"github.com/automoto/digimorph/components"
	"github.com/yohamta/donburi"
)

// UpdateClock advances the simulation clock by dt seconds. Negative deltas
// are treated as zero.
func UpdateClock(w donburi.World, dt float64) {
	clock := clockOf(w)
	if clock == nil {
		return
	}
	if dt < 0 || dt != dt {
		dt = 0
	}
	clock.Now += dt
	clock.Delta = dt
	clock.Tick++
}

// Now returns the simulation time in seconds.
func Now(w donburi.World) float64 {
	if clock := clockOf(w); clock != nil {
		return clock.Now
	}
	return 0
}

// due reports whether now has reached deadline on a clock stepping dt
// seconds per tick. Deadlines less than half a tick away count as reached,
// so the rounding error of summed deltas never stretches a timer by a tick.
func due(now, deadline, dt float64) bool {
	return now >= deadline-dt/2
}

// clockTime returns the current time and tick length.
func clockTime(w donburi.World) (now, dt float64) {
	if clock := clockOf(w); clock != nil {
		return clock.Now, clock.Delta
	}
	return 0, 0
}

func clockOf(w donburi.World) *components.ClockData {
	if e, ok := components.Clock.First(w); ok {
		return components.Clock.Get(e)
	}
	return nil
}
