// Package chart holds the immutable, chart-provided note data the hit
// engine consumes. Notes are read-only from the engine's point of view;
// the two mutable per-note flags the engine owns (wasHit, wasMissed) are
// kept out of this package entirely and live in a parallel array inside
// engine/state, so a *Chart can be shared freely across engine instances.
package chart

import "github.com/rbergman/fretengine/internal/engine/cursor"

// Fret bit positions, five frets plus the synthetic OPEN bit.
const (
	FretGreen = 1 << iota
	FretRed
	FretYellow
	FretBlue
	FretOrange
	FretOpen
)

// AllFrets is the mask of the five real frets, excluding FretOpen.
const AllFrets = FretGreen | FretRed | FretYellow | FretBlue | FretOrange

// Note is a single immutable chart event.
type Note struct {
	Time float64 `yaml:"time"` // seconds from chart start
	Tick uint32  `yaml:"tick"` // beat-grid position

	NoteMask     uint8 `yaml:"noteMask"`     // required fret bits (+ FretOpen for open notes)
	DisjointMask uint8 `yaml:"disjointMask"` // subset of NoteMask used for sustain-holding when IsDisjoint

	IsHopo            bool `yaml:"isHopo"`
	IsTap             bool `yaml:"isTap"`
	IsChord           bool `yaml:"isChord"`
	IsDisjoint        bool `yaml:"isDisjoint"`
	IsExtendedSustain bool `yaml:"isExtendedSustain"`

	TickEnd uint32 `yaml:"tickEnd"` // end of the note's sustain region, in ticks

	// PreviousNoteIndex is a back-link by index into Chart.Notes, not an
	// owning pointer (see design notes on avoiding cycles). -1 means none.
	PreviousNoteIndex int
}

// SyncPoint anchors a tick to an absolute time, the way a BPM/time
// signature track would; Chart.TickToTime does a lower-bound lookup over
// a sorted list of these.
type SyncPoint struct {
	Tick uint32
	Time float64
	BPM  float64
}

// Key implements cursor.Keyed[uint32] so a SyncPoint slice can be walked
// tick-first by an engine/cursor.Cursor (used by TickToTime below).
func (s SyncPoint) Key() uint32 { return s.Tick }

// SyncPointByTime wraps SyncPoint to implement cursor.Keyed[float64],
// for the reverse time-to-tick lookup hit.Resolver needs (see
// SyncPointsByTime).
type SyncPointByTime SyncPoint

func (s SyncPointByTime) Key() float64 { return s.Time }

// SyncPointsByTime returns the chart's sync track re-keyed by time
// instead of tick, for a time-to-tick lower-bound cursor lookup. Sync
// points are authored in non-decreasing tick and time order, so this
// keeps the same relative order.
func (c *Chart) SyncPointsByTime() []SyncPointByTime {
	out := make([]SyncPointByTime, len(c.Sync))
	for i, s := range c.Sync {
		out[i] = SyncPointByTime(s)
	}
	return out
}

// Chart is a complete ordered note list plus the tick/time sync data
// needed to relate tick positions (chord-stagger windows, sustain ends)
// back to seconds.
type Chart struct {
	Title      string      `yaml:"title"`
	Artist     string      `yaml:"artist"`
	Resolution uint32      `yaml:"resolution"` // ticks per quarter note
	Sync       []SyncPoint `yaml:"sync"`
	Notes      []Note      `yaml:"notes"`

	// Duration is computed, not authored.
	Duration float64 `yaml:"-"`
}

// TickToTime converts a tick position to seconds using the last sync
// point at or before tick, extrapolating linearly by BPM from there. The
// lookup is the lower-bound primitive engine/cursor.Cursor.ResetTo
// provides (spec.md §4.1).
func (c *Chart) TickToTime(tick uint32) float64 {
	if len(c.Sync) == 0 || c.Resolution == 0 {
		return 0
	}
	cur := cursor.New[uint32, SyncPoint](c.Sync)
	cur.ResetTo(tick)
	sp, ok := cur.Current()
	if !ok {
		sp = c.Sync[0]
	}
	if tick == sp.Tick || sp.BPM <= 0 {
		return sp.Time
	}
	secondsPerTick := 60.0 / sp.BPM / float64(c.Resolution)
	return sp.Time + float64(tick-sp.Tick)*secondsPerTick
}

// AverageNoteDistance returns the mean time gap between consecutive
// notes, the input HitWindow.CalculateHitWindow expects.
func (c *Chart) AverageNoteDistance() float64 {
	if len(c.Notes) < 2 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(c.Notes); i++ {
		total += c.Notes[i].Time - c.Notes[i-1].Time
	}
	return total / float64(len(c.Notes)-1)
}

// CalculateDuration sets c.Duration based on the last note's sustain end.
func (c *Chart) CalculateDuration() {
	if len(c.Notes) == 0 {
		c.Duration = 0
		return
	}
	last := c.Notes[len(c.Notes)-1]
	end := last.Time
	if last.TickEnd > last.Tick {
		if t := c.TickToTime(last.TickEnd); t > end {
			end = t
		}
	}
	c.Duration = end + 2.0
}
