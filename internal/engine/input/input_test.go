package input

import (
	"testing"

	"github.com/rbergman/fretengine/internal/chart"
	"github.com/rbergman/fretengine/internal/engine/state"
)

func TestApplyFretTogglesOpenBit(t *testing.T) {
	s := state.New(&chart.Chart{Notes: []chart.Note{{Time: 1}}})

	Apply(s, GameInput{Time: 0, Action: ActionFret, Fret: 0, Button: true}, false, false)
	if s.ButtonMask&chart.FretOpen != 0 {
		t.Error("pressing a fret should clear OPEN")
	}
	if s.ButtonMask&chart.FretGreen == 0 {
		t.Error("pressing fret 0 should set Green")
	}

	Apply(s, GameInput{Time: 0, Action: ActionFret, Fret: 0, Button: false}, false, false)
	if s.ButtonMask&chart.FretOpen == 0 {
		t.Error("releasing the only held fret should set OPEN")
	}
}

func TestApplyStrumIgnoredUnderAutoPlayAndAutoStrum(t *testing.T) {
	s := state.New(&chart.Chart{Notes: []chart.Note{{Time: 1}}})

	Apply(s, GameInput{Action: ActionStrumDown, Button: true}, true, false)
	if s.HasStrummed {
		t.Error("strum under AutoPlay should not set HasStrummed")
	}

	Apply(s, GameInput{Action: ActionStrumDown, Button: true}, false, true)
	if s.HasStrummed {
		t.Error("strum under AutoStrum should not set HasStrummed")
	}

	Apply(s, GameInput{Action: ActionStrumDown, Button: true}, false, false)
	if !s.HasStrummed {
		t.Error("a normal strum should set HasStrummed")
	}
}

func TestApplyFretOutOfRangeIgnored(t *testing.T) {
	s := state.New(&chart.Chart{Notes: []chart.Note{{Time: 1}}})
	before := s.ButtonMask
	Apply(s, GameInput{Action: ActionFret, Fret: 9, Button: true}, false, false)
	if s.ButtonMask != before {
		t.Error("an out-of-range fret index should be ignored")
	}
}
