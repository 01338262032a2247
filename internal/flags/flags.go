// Package flags implements the per-profile boolean-flag capability the
// engine consults to decide AutoStrum/AutoPlay (spec.md §6.1), and a
// concurrency-safe in-memory store suitable both for tests and as the
// backing store for the HTTP control plane in internal/flagserver.
package flags

import (
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Flag enumerates the profile-scoped override bits. None (the zero
// value) always reads as unset and is rejected by every mutating API.
type Flag int

const (
	None Flag = iota
	AutoStrum
	AutoPlay
)

// ParseFlag parses a flag name case-insensitively, per spec.md §6.2.
func ParseFlag(name string) (Flag, bool) {
	switch lower(name) {
	case "autostrum":
		return AutoStrum, true
	case "autoplay":
		return AutoPlay, true
	default:
		return None, false
	}
}

func (f Flag) String() string {
	switch f {
	case AutoStrum:
		return "AutoStrum"
	case AutoPlay:
		return "AutoPlay"
	default:
		return "None"
	}
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Oracle is the read-only capability the engine is constructed with.
// Default when a profile is not configured: false (spec.md §6.1).
type Oracle interface {
	IsFlagSet(profileID uuid.UUID, flag Flag) bool
}

// Store is a concurrency-safe in-memory Oracle plus the mutation API the
// HTTP control plane drives. All access is read-only from the engine's
// point of view; Store is the only object legitimately mutated from
// other goroutines (spec.md §5).
type Store struct {
	mu    sync.RWMutex
	flags map[uuid.UUID]map[Flag]bool
}

// NewStore constructs an empty in-memory flag store.
func NewStore() *Store {
	return &Store{flags: make(map[uuid.UUID]map[Flag]bool)}
}

// IsFlagSet implements Oracle.
func (s *Store) IsFlagSet(profileID uuid.UUID, flag Flag) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[profileID][flag]
}

// Set sets flag for profileID to enabled. Set of None is a no-op that
// returns false, mirroring the control plane's rejection of the None
// flag (spec.md §6.2).
func (s *Store) Set(profileID uuid.UUID, flag Flag, enabled bool) bool {
	if flag == None {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flags[profileID] == nil {
		s.flags[profileID] = make(map[Flag]bool)
	}
	s.flags[profileID][flag] = enabled
	return true
}

// Status returns a snapshot of every registered profile's flags, the
// shape GET /flags/status serializes (None is never included).
func (s *Store) Status() map[uuid.UUID]map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[uuid.UUID]map[string]bool, len(s.flags))
	for id, fs := range s.flags {
		m := make(map[string]bool, len(fs))
		for f, v := range fs {
			if f == None {
				continue
			}
			m[f.String()] = v
		}
		out[id] = m
	}
	return out
}

// seedEntry is one row of a YAML seed file, e.g.:
//
//	- profile: 5b1b...   # canonical UUID
//	  flags: {AutoPlay: true}
type seedEntry struct {
	Profile string          `yaml:"profile"`
	Flags   map[string]bool `yaml:"flags"`
}

// LoadSeed populates s from a YAML seed file, for deployments that want
// known flags at startup instead of every profile defaulting to false.
// Malformed rows are skipped, not fatal (spec.md §7's treatment of
// external control-plane input).
func LoadSeed(s *Store, data []byte) error {
	var entries []seedEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return err
	}
	for _, e := range entries {
		id, err := uuid.Parse(e.Profile)
		if err != nil {
			continue
		}
		for name, enabled := range e.Flags {
			if f, ok := ParseFlag(name); ok {
				s.Set(id, f, enabled)
			}
		}
	}
	return nil
}
