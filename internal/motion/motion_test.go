package motion

import (
	"math"
	"testing"
	"time"
)

func TestEaseOutCubic(t *testing.T) {
	t.Parallel()

	if got := EaseOutCubic(0); got != 0 {
		t.Fatalf("EaseOutCubic(0) = %v, want 0", got)
	}
	if got := EaseOutCubic(1); got != 1 {
		t.Fatalf("EaseOutCubic(1) = %v, want 1", got)
	}
	if got := EaseOutCubic(-0.5); got != 0 {
		t.Fatalf("EaseOutCubic(-0.5) = %v, want clamp to 0", got)
	}
	if got := EaseOutCubic(2); got != 1 {
		t.Fatalf("EaseOutCubic(2) = %v, want clamp to 1", got)
	}
	// Ease-out front-loads movement: the halfway sample sits past linear.
	if got := EaseOutCubic(0.5); got <= 0.5 {
		t.Fatalf("EaseOutCubic(0.5) = %v, want > 0.5", got)
	}
}

func TestCounterAt(t *testing.T) {
	t.Parallel()

	counter := Counter{From: 0, Target: 100, Duration: time.Second}
	if got := counter.At(0); got != 0 {
		t.Fatalf("At(0) = %v, want 0", got)
	}
	if got := counter.At(2 * time.Second); got != 100 {
		t.Fatalf("At(2s) = %v, want exact target 100", got)
	}
	mid := counter.At(500 * time.Millisecond)
	if mid <= 0 || mid >= 100 {
		t.Fatalf("At(500ms) = %v, want value strictly between endpoints", mid)
	}
}

func TestCounterZeroDurationSnapsToTarget(t *testing.T) {
	t.Parallel()

	counter := Counter{From: 5, Target: 42}
	if got := counter.At(0); got != 42 {
		t.Fatalf("At(0) = %v, want 42", got)
	}
}

func TestCounterSteps(t *testing.T) {
	t.Parallel()

	counter := Counter{From: 0, Target: 1000, Duration: time.Second}
	steps := counter.Steps(10)
	if len(steps) != 10 {
		t.Fatalf("len(steps) = %d, want 10", len(steps))
	}
	if steps[0] != 0 {
		t.Fatalf("steps[0] = %v, want 0", steps[0])
	}
	if steps[len(steps)-1] != 1000 {
		t.Fatalf("last step = %v, want exact target", steps[len(steps)-1])
	}
	for i := 1; i < len(steps); i++ {
		if steps[i] < steps[i-1] {
			t.Fatalf("steps not monotonic at %d: %v then %v", i, steps[i-1], steps[i])
		}
	}
}

func TestCounterStepsDegenerateFrameCount(t *testing.T) {
	t.Parallel()

	steps := Counter{Target: 7}.Steps(1)
	if len(steps) != 1 || steps[0] != 7 {
		t.Fatalf("Steps(1) = %v, want [7]", steps)
	}
}

func TestPulseAt(t *testing.T) {
	t.Parallel()

	pulse := Pulse{Period: time.Second}
	if got := pulse.At(0); math.Abs(got) > 1e-9 {
		t.Fatalf("At(0) = %v, want 0", got)
	}
	if got := pulse.At(500 * time.Millisecond); math.Abs(got-1) > 1e-9 {
		t.Fatalf("At(half period) = %v, want 1", got)
	}
	if got := pulse.At(time.Second); math.Abs(got) > 1e-9 {
		t.Fatalf("At(full period) = %v, want 0", got)
	}
}

func TestPulseZeroPeriod(t *testing.T) {
	t.Parallel()

	if got := (Pulse{}).At(time.Second); got != 0 {
		t.Fatalf("At = %v, want 0 for zero period", got)
	}
}
