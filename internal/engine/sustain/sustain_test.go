package sustain

import (
	"testing"

	"github.com/rbergman/fretengine/internal/chart"
)

func TestActiveFretBitsExcludesLeniencyHeld(t *testing.T) {
	var s Set
	s.Add(Record{NoteIndex: 0, FretBits: chart.FretGreen})
	s.Add(Record{NoteIndex: 1, FretBits: chart.FretRed, IsLeniencyHeld: true})

	if got := s.ActiveFretBits(); got != chart.FretGreen {
		t.Errorf("ActiveFretBits() = %#x, want %#x", got, chart.FretGreen)
	}
}

func TestRemoveAtPreservesOrder(t *testing.T) {
	var s Set
	s.Add(Record{NoteIndex: 0})
	s.Add(Record{NoteIndex: 1})
	s.Add(Record{NoteIndex: 2})

	s.RemoveAt(1)

	got := s.All()
	if len(got) != 2 || got[0].NoteIndex != 0 || got[1].NoteIndex != 2 {
		t.Fatalf("RemoveAt(1) left %+v, want [{0} {2}]", got)
	}
}

func TestRemoveByNoteIndexRemovesOwningSustainOnly(t *testing.T) {
	var s Set
	s.Add(Record{NoteIndex: 0})
	s.Add(Record{NoteIndex: 1})
	s.Add(Record{NoteIndex: 2})

	s.RemoveByNoteIndex(1)

	got := s.All()
	if len(got) != 2 || got[0].NoteIndex != 0 || got[1].NoteIndex != 2 {
		t.Fatalf("RemoveByNoteIndex(1) left %+v, want [{0} {2}]", got)
	}

	s.RemoveByNoteIndex(99) // no-op when no sustain owns that note
	if len(s.All()) != 2 {
		t.Fatalf("RemoveByNoteIndex on an absent note index should be a no-op, got %+v", s.All())
	}
}

func TestEndConditionTickEnd(t *testing.T) {
	r := Record{FretBits: chart.FretGreen, TickEnd: 100}
	if !EndCondition(r, 100, chart.FretGreen, false) {
		t.Error("reaching TickEnd should end the sustain regardless of held buttons")
	}
	if EndCondition(r, 99, chart.FretGreen, false) {
		t.Error("before TickEnd with the fret still held should not end")
	}
}

func TestEndConditionReleasedFret(t *testing.T) {
	r := Record{FretBits: chart.FretGreen, TickEnd: 100}
	if !EndCondition(r, 50, 0, false) {
		t.Error("releasing the held fret should end the sustain")
	}
}

func TestEndConditionAutoPlayIgnoresHeldButtons(t *testing.T) {
	r := Record{FretBits: chart.FretGreen, TickEnd: 100}
	if EndCondition(r, 50, 0, true) {
		t.Error("AutoPlay should not end a sustain based on held buttons")
	}
}
