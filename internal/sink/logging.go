package sink

import (
	"github.com/rbergman/fretengine/internal/chart"
	"github.com/rbergman/fretengine/internal/obs"
)

// Logging reports every EventSink call at debug level through
// internal/obs's process-wide zerolog logger.
type Logging struct{}

func (Logging) OnNoteHit(_ *chart.Note, noteIndex int) {
	obs.L().Debug().Int("note_index", noteIndex).Msg("note hit")
}

func (Logging) OnNoteMissed(_ *chart.Note, noteIndex int) {
	obs.L().Debug().Int("note_index", noteIndex).Msg("note missed")
}

func (Logging) OnOverstrum() {
	obs.L().Debug().Msg("overstrum")
}

func (Logging) OnGhostInput() {
	obs.L().Debug().Msg("ghost input")
}

func (Logging) OnSustainStart(_ *chart.Note, noteIndex int) {
	obs.L().Debug().Int("note_index", noteIndex).Msg("sustain start")
}

func (Logging) OnSustainEnd(_ *chart.Note, noteIndex int, completed bool) {
	obs.L().Debug().Int("note_index", noteIndex).Bool("completed", completed).Msg("sustain end")
}

func (Logging) OnComboChange(newCombo int) {
	obs.L().Debug().Int("combo", newCombo).Msg("combo changed")
}

func (Logging) OnStarPowerStateChange(active bool) {
	obs.L().Debug().Bool("active", active).Msg("star power state changed")
}
