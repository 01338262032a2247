// Package input folds GameInput events into the engine's per-frame
// action flags (spec.md §4.4).
package input

import (
	"github.com/rbergman/fretengine/internal/chart"
	"github.com/rbergman/fretengine/internal/engine/state"
	"github.com/rbergman/fretengine/internal/engine/timer"
)

// Action identifies the kind of input event.
type Action int

const (
	ActionFret Action = iota
	ActionStrumDown
	ActionStrumUp
	ActionStarPower
	ActionWhammy
)

// GameInput is one quantized player input, already time-stamped by the
// caller (spec.md §6.3's chart inputs are static; player inputs arrive
// through this type).
type GameInput struct {
	Time   float64
	Action Action
	Fret   int // fret bit index (0..4), only meaningful for ActionFret
	Button bool
}

// Key implements cursor.Keyed[float64], so a trace of GameInput events
// can be drained with an engine/cursor.Cursor the same way spec.md §5's
// "queue drained before each tick in timestamp order" describes.
func (g GameInput) Key() float64 { return g.Time }

// fretBit maps a 0..4 fret index to its bit in chart's fret mask.
var fretBit = [5]uint8{chart.FretGreen, chart.FretRed, chart.FretYellow, chart.FretBlue, chart.FretOrange}

// whammyHoldDuration is the star-power-active window one whammy input
// opens. spec.md §4.4 gives no duration (star-power scoring is out of
// scope, §1), so this is just long enough that the timer is still armed
// on the next tick instead of expiring before updateStarPower reads it.
const whammyHoldDuration = 0.25

// Apply folds one input into s, per spec.md §4.4's table. isAutoPlay
// gates the player-only flags the way §4.4's Fret/Strum rows specify.
func Apply(s *state.EngineState, in GameInput, isAutoPlay, isAutoStrum bool) {
	switch in.Action {
	case ActionStarPower:
		s.IsStarPowerInputActive = in.Button

	case ActionWhammy:
		if in.Button {
			s.Timers.Get(timer.StarPowerWhammy).Start(in.Time, whammyHoldDuration)
		}

	case ActionFret:
		if in.Fret < 0 || in.Fret >= len(fretBit) {
			return
		}
		if !isAutoPlay {
			s.LastButtonMask = s.ButtonMask
		}
		bit := fretBit[in.Fret]
		if in.Button {
			s.ButtonMask |= bit
		} else {
			s.ButtonMask &^= bit
		}
		// Re-derive the synthetic OPEN bit: set iff no fret bits are held
		// (invariant 6).
		if s.ButtonMask&chart.AllFrets == 0 {
			s.ButtonMask |= chart.FretOpen
		} else {
			s.ButtonMask &^= chart.FretOpen
		}
		if !isAutoPlay {
			s.HasFretted = true
			s.IsFretPress = in.Button
		}

	case ActionStrumDown, ActionStrumUp:
		if in.Button && !isAutoPlay && !isAutoStrum {
			s.HasStrummed = true
		}
	}
}
