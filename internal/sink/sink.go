// Package sink defines EventSink (spec.md §6.4) and a few composable
// implementations used across the module: a fan-out, an in-memory call
// recorder for tests, and a structured-logging sink.
package sink

import "github.com/rbergman/fretengine/internal/chart"

// EventSink is where the hit engine reports every observable outcome.
// The engine never computes star-power/multiplier scoring itself
// (spec.md §1 Out of scope); it only reports deltas through this
// interface, and concrete sinks (internal/metricsink, a UI, a replay
// log) decide what to do with them.
type EventSink interface {
	OnNoteHit(note *chart.Note, noteIndex int)
	OnNoteMissed(note *chart.Note, noteIndex int)
	OnOverstrum()
	OnGhostInput()
	OnSustainStart(note *chart.Note, noteIndex int)
	OnSustainEnd(note *chart.Note, noteIndex int, completed bool)
	OnComboChange(newCombo int)
	OnStarPowerStateChange(active bool)
}

// Multi fans out every call to each sink in order.
type Multi []EventSink

func (m Multi) OnNoteHit(note *chart.Note, noteIndex int) {
	for _, s := range m {
		s.OnNoteHit(note, noteIndex)
	}
}

func (m Multi) OnNoteMissed(note *chart.Note, noteIndex int) {
	for _, s := range m {
		s.OnNoteMissed(note, noteIndex)
	}
}

func (m Multi) OnOverstrum() {
	for _, s := range m {
		s.OnOverstrum()
	}
}

func (m Multi) OnGhostInput() {
	for _, s := range m {
		s.OnGhostInput()
	}
}

func (m Multi) OnSustainStart(note *chart.Note, noteIndex int) {
	for _, s := range m {
		s.OnSustainStart(note, noteIndex)
	}
}

func (m Multi) OnSustainEnd(note *chart.Note, noteIndex int, completed bool) {
	for _, s := range m {
		s.OnSustainEnd(note, noteIndex, completed)
	}
}

func (m Multi) OnComboChange(newCombo int) {
	for _, s := range m {
		s.OnComboChange(newCombo)
	}
}

func (m Multi) OnStarPowerStateChange(active bool) {
	for _, s := range m {
		s.OnStarPowerStateChange(active)
	}
}
