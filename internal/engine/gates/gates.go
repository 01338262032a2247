// Package gates implements the two boolean profile overrides,
// AutoStrum and AutoPlay, that conditionally suppress pieces of
// InputReducer/HitResolver (spec.md §4.7).
package gates

import (
	"github.com/google/uuid"

	"github.com/rbergman/fretengine/internal/flags"
)

// Gates queries a flags.Oracle for one fixed profile, established at
// engine construction. The oracle is consulted at least once per tick
// and may change value between ticks; the engine observes the
// transition on the next tick with no residual state, because the
// AutoPlay branch of HitResolver unconditionally cleans up timers/flags
// (spec.md §4.7).
type Gates struct {
	Oracle    flags.Oracle
	ProfileID uuid.UUID
}

// IsAutoPlayActive reports the current AutoPlay override.
func (g Gates) IsAutoPlayActive() bool {
	return g.Oracle.IsFlagSet(g.ProfileID, flags.AutoPlay)
}

// IsAutoStrumActive reports the current AutoStrum override.
func (g Gates) IsAutoStrumActive() bool {
	return g.Oracle.IsFlagSet(g.ProfileID, flags.AutoStrum)
}
