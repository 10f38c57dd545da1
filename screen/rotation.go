package screen

import "time"

// Rotation tracks which headline is showing and when the next one is due.
// It never schedules itself; the host compares the clock with NextDue.
type Rotation struct {
	current int
	nextDue time.Duration
}

// NewRotation starts at -1 so the first refresh lands on headline 0.
func NewRotation() Rotation {
	return Rotation{current: -1}
}

// Current is the headline index last refreshed.
func (r *Rotation) Current() int {
	return r.current
}

// NextDue is the clock reading at which the headline should rotate.
func (r *Rotation) NextDue() time.Duration {
	return r.nextDue
}

// Due reports whether now has reached the next rotation time.
func (r *Rotation) Due(now time.Duration) bool {
	return now >= r.nextDue
}

// Refresh resets an out-of-range index to 0 and schedules the next rotation.
// It returns the index to draw.
func (r *Rotation) Refresh(count int, now, interval time.Duration) int {
	if r.current < 0 || r.current >= count {
		r.current = 0
	}
	r.nextDue = now + interval
	return r.current
}

// Advance moves to the next headline; the following Refresh wraps it.
func (r *Rotation) Advance() {
	r.current++
}

// Reset returns to the initial state.
func (r *Rotation) Reset() {
	r.current = -1
	r.nextDue = 0
}
