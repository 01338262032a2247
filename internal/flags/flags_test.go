package flags

import (
	"testing"

	"github.com/google/uuid"
)

func TestParseFlagCaseInsensitive(t *testing.T) {
	cases := map[string]Flag{
		"AutoStrum": AutoStrum,
		"autostrum": AutoStrum,
		"AUTOPLAY":  AutoPlay,
	}
	for name, want := range cases {
		got, ok := ParseFlag(name)
		if !ok || got != want {
			t.Errorf("ParseFlag(%q) = %v, %v; want %v, true", name, got, ok, want)
		}
	}
	if _, ok := ParseFlag("bogus"); ok {
		t.Error("ParseFlag should reject unknown names")
	}
}

func TestStoreDefaultsToFalse(t *testing.T) {
	s := NewStore()
	if s.IsFlagSet(uuid.New(), AutoPlay) {
		t.Error("an unconfigured profile should default to false")
	}
}

func TestStoreSetRejectsNone(t *testing.T) {
	s := NewStore()
	if s.Set(uuid.New(), None, true) {
		t.Error("Set(None, ...) should be rejected")
	}
}

func TestStoreSetAndStatus(t *testing.T) {
	s := NewStore()
	id := uuid.New()
	s.Set(id, AutoPlay, true)

	if !s.IsFlagSet(id, AutoPlay) {
		t.Fatal("IsFlagSet should reflect the just-set value")
	}

	status := s.Status()
	if !status[id]["AutoPlay"] {
		t.Errorf("Status()[%v][AutoPlay] = false, want true", id)
	}
}

func TestLoadSeedSkipsInvalidRows(t *testing.T) {
	s := NewStore()
	data := []byte(`
- profile: not-a-uuid
  flags: {AutoPlay: true}
- profile: ` + uuid.New().String() + `
  flags: {NotAFlag: true, AutoStrum: true}
`)
	if err := LoadSeed(s, data); err != nil {
		t.Fatalf("LoadSeed returned an error: %v", err)
	}
}
