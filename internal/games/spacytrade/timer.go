package spacytrade

// Timer is a repeating interval timer driven by elapsed seconds.
// Overshoot carries into the next interval instead of being dropped.
type Timer struct {
	Interval float64
	acc      float64
}

// NewTimer creates a timer firing every interval seconds.
func NewTimer(interval float64) Timer {
	return Timer{Interval: interval}
}

// Advance adds dt and returns how many times the timer fired.
// A non-positive interval never fires.
func (t *Timer) Advance(dt float64) int {
	if t.Interval <= 0 || dt <= 0 {
		return 0
	}
	t.acc += dt
	fired := 0
	for t.acc >= t.Interval {
		t.acc -= t.Interval
		fired++
	}
	return fired
}

// Remaining returns the seconds until the next fire.
func (t *Timer) Remaining() float64 {
	return t.Interval - t.acc
}
