package vaporgrid

import "time"

// Clock measures elapsed time since it was started. Readings never go backwards, even if the underlying time source does.
type Clock struct {
	now   func() time.Time
	start time.Time
	last  float64
	delta float64
}

// NewClock returns a Clock started at the current time.
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource returns a Clock that reads time from the given function; this is mostly useful in tests.
func NewClockWithSource(now func() time.Time) *Clock {
	clock := &Clock{now: now}
	clock.Reset()
	return clock
}

// Reset restarts the Clock from zero.
func (clock *Clock) Reset() {
	clock.start = clock.now()
	clock.last = 0
	clock.delta = 0
}

// Elapsed returns the seconds elapsed since the Clock was started. The value is never less than the previous reading.
func (clock *Clock) Elapsed() float64 {
	elapsed := clock.now().Sub(clock.start).Seconds()
	if elapsed < clock.last {
		elapsed = clock.last
	}
	clock.delta = elapsed - clock.last
	clock.last = elapsed
	return elapsed
}

// Delta returns the seconds between the two most recent Elapsed readings.
func (clock *Clock) Delta() float64 {
	return clock.delta
}
