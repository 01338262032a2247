// Package timer implements the named countdown timers the hit engine
// schedules against simulated time: StrumLeniency, HopoLeniency,
// StarPowerWhammy, ChordStagger, and FrontEndExpire.
package timer

// Name identifies one of the engine's countdown timers.
type Name int

const (
	StrumLeniency Name = iota
	HopoLeniency
	StarPowerWhammy
	ChordStagger
	FrontEndExpire
	count // sentinel, keep last
)

// Timer is a single countdown armed by Start(now, offset). It reports
// IsExpired once now reaches EndTime, and stays active (even past
// EndTime) until Disable() clears it.
type Timer struct {
	active  bool
	endTime float64
}

// Start arms the timer to expire at now+offsetSeconds.
func (t *Timer) Start(now, offsetSeconds float64) {
	t.active = true
	t.endTime = now + offsetSeconds
}

// Disable clears the timer without regard to its end time.
func (t *Timer) Disable() {
	t.active = false
}

// IsActive reports whether the timer is currently armed.
func (t *Timer) IsActive() bool {
	return t.active
}

// IsExpired reports whether the timer is armed and now has passed its
// end time. A disabled timer is never expired.
func (t *Timer) IsExpired(now float64) bool {
	return t.active && now >= t.endTime
}

// EndTime returns the absolute time the timer expires at.
func (t *Timer) EndTime() float64 {
	return t.endTime
}

// Set is the fixed collection of named timers an engine instance owns.
type Set struct {
	timers [count]Timer
}

// Get returns the named timer by reference, so callers can Start/Disable
// it directly.
func (s *Set) Get(name Name) *Timer {
	return &s.timers[name]
}
