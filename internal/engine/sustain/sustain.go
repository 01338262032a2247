// Package sustain tracks the collection of currently-held sustains: one
// per hit note still being sustained, ordered by hit time.
package sustain

import "github.com/rbergman/fretengine/internal/chart"

// Record is a single active sustain. NoteIndex references the owning
// note by position in the chart, never an owning pointer (mirrors
// chart.Note.PreviousNoteIndex's index-not-pointer convention).
type Record struct {
	NoteIndex      int
	FretBits       uint8 // frets this sustain is currently holding
	TickEnd        uint32
	IsLeniencyHeld bool // within a short leniency window after the source hit, before "held" proper
}

// Set is the ordered collection of active sustains, insertion-ordered by
// hit time per spec.md §3.
type Set struct {
	records []Record
}

// Add appends a new sustain at the end (most recently hit).
func (s *Set) Add(r Record) {
	s.records = append(s.records, r)
}

// All returns the live sustain records in hit-time order. Callers must
// not retain the slice across a mutating call.
func (s *Set) All() []Record {
	return s.records
}

// Len reports how many sustains are active.
func (s *Set) Len() int {
	return len(s.records)
}

// ActiveFretBits returns the union of fret bits (excluding FretOpen) held
// by every active, non-leniency sustain — the mask fret.CanNoteBeHit
// should subtract before re-testing a chord match.
func (s *Set) ActiveFretBits() uint8 {
	var mask uint8
	for _, r := range s.records {
		if !r.IsLeniencyHeld {
			mask |= r.FretBits & chart.AllFrets
		}
	}
	return mask
}

// RemoveAt removes the sustain at index i, preserving relative order.
func (s *Set) RemoveAt(i int) {
	s.records = append(s.records[:i], s.records[i+1:]...)
}

// RemoveByNoteIndex removes the sustain owned by noteIndex, if any. A
// note has at most one active sustain at a time, so this is the
// resolver's primitive for ending a specific sustain by the note that
// started it, built on RemoveAt.
func (s *Set) RemoveByNoteIndex(noteIndex int) {
	for i, r := range s.records {
		if r.NoteIndex == noteIndex {
			s.RemoveAt(i)
			return
		}
	}
}

// EndCondition reports whether a sustain should end given the current
// tick and whether its fret bits are still held ("CanSustainHold" in
// spec.md §4.5 Step G). autoPlay bypasses the held check (per §3
// invariant 3's exception).
func EndCondition(r Record, currentTick uint32, buttonsHeld uint8, autoPlay bool) bool {
	if r.TickEnd != 0 && currentTick >= r.TickEnd {
		return true
	}
	if autoPlay {
		return false
	}
	return buttonsHeld&chart.AllFrets&r.FretBits != r.FretBits
}
