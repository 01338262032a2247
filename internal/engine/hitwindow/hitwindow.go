// Package hitwindow computes the timing tolerance around each note, as
// pure functions of the chart's average note density.
package hitwindow

// Default literal values, matching spec.md §8's scenario fixtures.
const (
	DefaultWidth = 0.280 // seconds; front=-0.14, back=+0.14
)

// CalculateHitWindow maps the chart's average note-to-note distance to a
// window width in seconds: charts denser than 0.12s average spacing get
// clamped to the tightest window, 0.12s; everything from there up to
// DefaultWidth's own scale gets DefaultWidth, since a chart's own note
// density never needs a window wider than the literal default.
func CalculateHitWindow(avgNoteDistance float64) float64 {
	if avgNoteDistance <= 0 {
		return DefaultWidth
	}
	if avgNoteDistance < 0.12 {
		return 0.120
	}
	return DefaultWidth
}

// GetFrontEnd returns how far before a note's time a hit is still valid,
// as a negative (or zero) number of seconds.
func GetFrontEnd(width float64) float64 {
	return -width / 2
}

// GetBackEnd returns the positive tolerance after a note's time.
func GetBackEnd(width float64) float64 {
	return width / 2
}

// IsNoteInWindow reports whether currentTime falls within the note's hit
// window, and separately whether the note has been missed (currentTime
// past the back end). A note can be neither in-window nor missed when
// currentTime is still before the front end.
func IsNoteInWindow(noteTime, currentTime, width float64) (inWindow, missed bool) {
	front := noteTime + GetFrontEnd(width)
	back := noteTime + GetBackEnd(width)
	if currentTime > back {
		return false, true
	}
	if currentTime >= front {
		return true, false
	}
	return false, false
}
