// Package bot synthesizes ideal player input for the current note, per
// spec.md §4.5 Step D. It only simulates input for the note at
// NoteIndex; it does not path-find or look ahead (spec.md §1's "bot"
// scope note).
package bot

import (
	"github.com/rbergman/fretengine/internal/chart"
	"github.com/rbergman/fretengine/internal/engine/state"
)

// Simulate synthesizes ButtonMask for the note at s.NoteIndex once
// currentTime has reached the note's time, setting HasTapped/IsFretPress
// as Step D specifies. It is a no-op once currentTime hasn't reached the
// target note, or once there is no current note.
func Simulate(s *state.EngineState) {
	if s.NoteIndex >= len(s.Chart.Notes) {
		return
	}
	note := s.Chart.Notes[s.NoteIndex]
	if s.CurrentTime < note.Time {
		return
	}

	mask := note.NoteMask
	// Incorporate extended-sustain bits from ActiveSustains into the
	// mask, the way a real player would keep a prior sustain held while
	// fretting the next chord.
	mask |= s.ActiveSustains.ActiveFretBits()
	if mask&chart.AllFrets != 0 {
		mask &^= chart.FretOpen
	}

	s.LastButtonMask = s.ButtonMask
	s.HasTapped = mask != s.LastButtonMask
	s.ButtonMask = mask
	s.IsFretPress = true
}
