package gates

import (
	"testing"

	"github.com/google/uuid"

	"github.com/rbergman/fretengine/internal/flags"
)

func TestGatesReflectStoreForItsOwnProfileOnly(t *testing.T) {
	store := flags.NewStore()
	profile := uuid.New()
	other := uuid.New()
	store.Set(profile, flags.AutoPlay, true)
	store.Set(other, flags.AutoStrum, true)

	g := Gates{Oracle: store, ProfileID: profile}

	if !g.IsAutoPlayActive() {
		t.Error("expected AutoPlay active for the configured profile")
	}
	if g.IsAutoStrumActive() {
		t.Error("AutoStrum was only set for a different profile")
	}
}

func TestGatesDefaultFalseForUnconfiguredProfile(t *testing.T) {
	g := Gates{Oracle: flags.NewStore(), ProfileID: uuid.New()}
	if g.IsAutoPlayActive() || g.IsAutoStrumActive() {
		t.Error("an unconfigured profile should default both flags to false")
	}
}
