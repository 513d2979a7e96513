// Package motion provides timed interpolation helpers for animated display
// values. It carries no domain logic; consumers feed it figures computed
// elsewhere.
package motion

import (
	"math"
	"time"
)

// EaseOutCubic maps linear progress in [0,1] onto a decelerating curve.
func EaseOutCubic(progress float64) float64 {
	progress = clamp(progress)
	inv := 1 - progress
	return 1 - inv*inv*inv
}

// Interpolate returns the eased value between from and to at the given
// linear progress. Progress outside [0,1] is clamped.
func Interpolate(from, to, progress float64) float64 {
	return from + (to-from)*EaseOutCubic(progress)
}

// Counter interpolates a displayed number toward a target over a duration.
type Counter struct {
	// From is the starting display value.
	From float64
	// Target is the value the counter settles on.
	Target float64
	// Duration is the total animation time.
	Duration time.Duration
}

// At returns the counter value after elapsed time. Before the start it
// returns From, after Duration it returns Target exactly.
func (c Counter) At(elapsed time.Duration) float64 {
	if c.Duration <= 0 {
		return c.Target
	}
	progress := float64(elapsed) / float64(c.Duration)
	if progress >= 1 {
		return c.Target
	}
	return Interpolate(c.From, c.Target, progress)
}

// Steps samples the counter at a fixed number of evenly spaced frames,
// first frame at From, last frame exactly at Target.
func (c Counter) Steps(frames int) []float64 {
	if frames < 2 {
		return []float64{c.Target}
	}
	steps := make([]float64, frames)
	for i := range steps {
		progress := float64(i) / float64(frames-1)
		steps[i] = Interpolate(c.From, c.Target, progress)
	}
	steps[frames-1] = c.Target
	return steps
}

// Pulse oscillates between 0 and 1 with the given period.
type Pulse struct {
	Period time.Duration
}

// At returns the pulse phase at elapsed time, following a raised cosine so
// the value starts at 0, peaks at half period and returns to 0.
func (p Pulse) At(elapsed time.Duration) float64 {
	if p.Period <= 0 {
		return 0
	}
	phase := math.Mod(float64(elapsed), float64(p.Period)) / float64(p.Period)
	return (1 - math.Cos(2*math.Pi*phase)) / 2
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
