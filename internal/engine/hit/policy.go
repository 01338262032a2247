package hit

import (
	"github.com/rbergman/fretengine/internal/bot"
	"github.com/rbergman/fretengine/internal/chart"
	"github.com/rbergman/fretengine/internal/engine/fret"
	"github.com/rbergman/fretengine/internal/engine/input"
	"github.com/rbergman/fretengine/internal/engine/state"
)

// Policy is the seam spec.md §9 calls out for composition-over-
// inheritance: a HitEngine aggregate holds one Policy value instead of
// subclassing BaseEngine→GuitarEngine→YargFiveFretEngine. ProKeys and
// Drums (spec.md §1's siblings, out of this module's scope) would
// implement the same three methods differently.
type Policy interface {
	CanNoteBeHit(s *state.EngineState, note *chart.Note) bool
	ReduceInput(s *state.EngineState, in input.GameInput, autoPlay, autoStrum bool)
	SimulateBot(s *state.EngineState)
}

// FiveFretPolicy is the only Policy implemented by this module,
// matching spec.md §4.3/§4.4/§4.5 Step D exactly.
type FiveFretPolicy struct{}

func (FiveFretPolicy) CanNoteBeHit(s *state.EngineState, note *chart.Note) bool {
	return fret.CanNoteBeHit(s.ButtonMask, note.NoteMask, s.ActiveSustains.ActiveFretBits())
}

func (FiveFretPolicy) ReduceInput(s *state.EngineState, in input.GameInput, autoPlay, autoStrum bool) {
	input.Apply(s, in, autoPlay, autoStrum)
}

func (FiveFretPolicy) SimulateBot(s *state.EngineState) {
	bot.Simulate(s)
}
