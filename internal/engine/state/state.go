// Package state holds EngineState: everything a HitResolver tick reads
// and mutates, including the per-note wasHit/wasMissed flags kept in a
// parallel array rather than on chart.Note itself (spec.md §9 design
// note).
package state

import (
	"fmt"

	"github.com/rbergman/fretengine/internal/chart"
	"github.com/rbergman/fretengine/internal/engine/sustain"
	"github.com/rbergman/fretengine/internal/engine/timer"
)

// noteFlags is the mutable half of a chart note's life the engine owns.
type noteFlags struct {
	wasHit    bool
	wasMissed bool
}

// EngineState is owned exclusively by one engine instance during a tick;
// see spec.md §5 for the single-threaded, cooperative scheduling model
// this assumes.
type EngineState struct {
	Chart *chart.Chart

	NoteIndex int

	CurrentTime float64
	CurrentTick uint32

	ButtonMask     uint8
	LastButtonMask uint8

	HasStrummed            bool
	HasFretted             bool
	HasTapped              bool
	IsFretPress            bool
	WasNoteGhosted         bool
	IsStarPowerInputActive bool

	FrontEndExpireTime float64

	ActiveSustains sustain.Set

	ReRunHitLogic bool

	Timers timer.Set

	Combo int

	flags []noteFlags
}

// New constructs engine state for c, with ButtonMask starting at
// FretOpen per invariant 6 (no frets held means OPEN).
func New(c *chart.Chart) *EngineState {
	return &EngineState{
		Chart:          c,
		ButtonMask:     chart.FretOpen,
		LastButtonMask: chart.FretOpen,
		flags:          make([]noteFlags, len(c.Notes)),
	}
}

// Note returns the chart note at i. Panics (a PreconditionError) if i is
// out of range: per spec.md §7, a NoteIndex beyond Notes.Count is a
// programmer error, not a recoverable condition.
func (s *EngineState) Note(i int) *chart.Note {
	if i < 0 || i >= len(s.Chart.Notes) {
		panic(PreconditionError{fmt.Sprintf("note index %d out of range [0,%d)", i, len(s.Chart.Notes))})
	}
	return &s.Chart.Notes[i]
}

// IsFullyDealtWith reports whether note i has been hit or missed
// (spec.md §3: "a note is fully dealt with when either is true").
func (s *EngineState) IsFullyDealtWith(i int) bool {
	if i < 0 || i >= len(s.flags) {
		return false
	}
	return s.flags[i].wasHit || s.flags[i].wasMissed
}

// WasHit reports the hit flag alone, for tests and sinks.
func (s *EngineState) WasHit(i int) bool {
	return i >= 0 && i < len(s.flags) && s.flags[i].wasHit
}

// WasMissed reports the missed flag alone.
func (s *EngineState) WasMissed(i int) bool {
	return i >= 0 && i < len(s.flags) && s.flags[i].wasMissed
}

// MarkHit sets note i's wasHit flag. Panics if i is out of range or
// already dealt with — advancing past an already-resolved note is an
// invariant violation (spec.md §3 invariant 2).
func (s *EngineState) MarkHit(i int) {
	s.requireUndealt(i)
	s.flags[i].wasHit = true
}

// MarkMissed sets note i's wasMissed flag, with the same preconditions
// as MarkHit.
func (s *EngineState) MarkMissed(i int) {
	s.requireUndealt(i)
	s.flags[i].wasMissed = true
}

func (s *EngineState) requireUndealt(i int) {
	if i < 0 || i >= len(s.flags) {
		panic(PreconditionError{fmt.Sprintf("note index %d out of range [0,%d)", i, len(s.flags))})
	}
	if s.flags[i].wasHit || s.flags[i].wasMissed {
		panic(PreconditionError{fmt.Sprintf("note index %d already dealt with", i)})
	}
}

// AdvanceNoteIndex moves NoteIndex forward to at least i+1, enforcing
// invariant 1 (non-decreasing) — it never moves NoteIndex backward.
func (s *EngineState) AdvanceNoteIndex(i int) {
	if i+1 > s.NoteIndex {
		s.NoteIndex = i + 1
	}
}

// PreconditionError marks a spec.md §7 programmer-error halt: misuse
// that violates a documented invariant, not a recoverable condition.
type PreconditionError struct {
	Msg string
}

func (e PreconditionError) Error() string {
	return "fretengine: precondition violated: " + e.Msg
}
