package sink

import "github.com/rbergman/fretengine/internal/chart"

// CallKind identifies which EventSink method a Recorder.Call came from.
type CallKind int

const (
	CallNoteHit CallKind = iota
	CallNoteMissed
	CallOverstrum
	CallGhostInput
	CallSustainStart
	CallSustainEnd
	CallComboChange
	CallStarPowerStateChange
)

// Call is one recorded EventSink invocation, comparable enough to
// support the byte-identical-sequence property from spec.md §8 (two
// engines fed the same trace produce the same sequence of calls).
type Call struct {
	Kind      CallKind
	NoteIndex int
	Completed bool
	Combo     int
	Active    bool
}

// Recorder is an EventSink that appends every call it receives, for
// assertions in engine tests.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) OnNoteHit(_ *chart.Note, noteIndex int) {
	r.Calls = append(r.Calls, Call{Kind: CallNoteHit, NoteIndex: noteIndex})
}

func (r *Recorder) OnNoteMissed(_ *chart.Note, noteIndex int) {
	r.Calls = append(r.Calls, Call{Kind: CallNoteMissed, NoteIndex: noteIndex})
}

func (r *Recorder) OnOverstrum() {
	r.Calls = append(r.Calls, Call{Kind: CallOverstrum})
}

func (r *Recorder) OnGhostInput() {
	r.Calls = append(r.Calls, Call{Kind: CallGhostInput})
}

func (r *Recorder) OnSustainStart(_ *chart.Note, noteIndex int) {
	r.Calls = append(r.Calls, Call{Kind: CallSustainStart, NoteIndex: noteIndex})
}

func (r *Recorder) OnSustainEnd(_ *chart.Note, noteIndex int, completed bool) {
	r.Calls = append(r.Calls, Call{Kind: CallSustainEnd, NoteIndex: noteIndex, Completed: completed})
}

func (r *Recorder) OnComboChange(newCombo int) {
	r.Calls = append(r.Calls, Call{Kind: CallComboChange, Combo: newCombo})
}

func (r *Recorder) OnStarPowerStateChange(active bool) {
	r.Calls = append(r.Calls, Call{Kind: CallStarPowerStateChange, Active: active})
}

// CountHits reports how many OnNoteHit calls were recorded.
func (r *Recorder) CountHits() int {
	n := 0
	for _, c := range r.Calls {
		if c.Kind == CallNoteHit {
			n++
		}
	}
	return n
}
