// Package hit implements the frame-level hit-detection algorithm itself
// (spec.md §4.5-§4.8): the core of the engine.
package hit

import (
	"github.com/rbergman/fretengine/internal/chart"
	"github.com/rbergman/fretengine/internal/engine/cursor"
	"github.com/rbergman/fretengine/internal/engine/gates"
	"github.com/rbergman/fretengine/internal/engine/hitwindow"
	"github.com/rbergman/fretengine/internal/engine/state"
	"github.com/rbergman/fretengine/internal/engine/sustain"
	"github.com/rbergman/fretengine/internal/engine/timer"
	"github.com/rbergman/fretengine/internal/obs"
	"github.com/rbergman/fretengine/internal/sink"
)

// maxReRunIterations caps the ReRunHitLogic fixed-point loop per
// spec.md §4.8/§9, to defeat pathological cycles.
const maxReRunIterations = 16

// Resolver is the HitEngine aggregate: the chart, engine state, tunable
// parameters, the AutoStrum/AutoPlay gate, a Policy (instrument variant
// seam), and the EventSink everything is reported through.
type Resolver struct {
	State  *state.EngineState
	Params Params
	Gates  gates.Gates
	Policy Policy
	Sink   sink.EventSink

	// IsBot, when true, runs Step D's ideal-input simulation instead of
	// relying on external GameInput events.
	IsBot bool

	windowWidth        float64
	starPowerWasActive bool
}

// New constructs a Resolver for c, deriving the hit-window width from
// the chart's average note distance (spec.md §4.2).
func New(c *chart.Chart, params Params, g gates.Gates, policy Policy, eventSink sink.EventSink, isBot bool) *Resolver {
	return &Resolver{
		State:       state.New(c),
		Params:      params,
		Gates:       g,
		Policy:      policy,
		Sink:        eventSink,
		IsBot:       isBot,
		windowWidth: hitwindow.CalculateHitWindow(c.AverageNoteDistance()),
	}
}

// Tick drives the engine to currentTime, looping the A-H pass until
// ReRunHitLogic stays false or the sanity cap is hit.
func (r *Resolver) Tick(currentTime float64) {
	if currentTime < r.State.CurrentTime {
		panic(state.PreconditionError{Msg: "tick time moved backward"})
	}
	r.State.CurrentTime = currentTime
	r.State.CurrentTick = r.timeToTick(currentTime)

	for i := 0; i < maxReRunIterations; i++ {
		r.State.ReRunHitLogic = false
		r.pass()
		if !r.State.ReRunHitLogic {
			return
		}
	}
	obs.L().Warn().Msg("hit resolver exceeded re-run iteration cap")
}

func (r *Resolver) timeToTick(t float64) uint32 {
	// Inverse of chart.Chart.TickToTime, good enough for the sustain
	// tickEnd/CurrentTick comparisons Step G needs: a time-keyed
	// lower-bound lookup over the same sync track, via the shared
	// engine/cursor.Cursor (spec.md §4.1).
	c := r.State.Chart
	if len(c.Sync) == 0 || c.Resolution == 0 {
		return 0
	}
	cur := cursor.New[float64, chart.SyncPointByTime](c.SyncPointsByTime())
	cur.ResetTo(t)
	sp, ok := cur.Current()
	if !ok {
		sp = chart.SyncPointByTime(c.Sync[0])
	}
	if sp.BPM <= 0 {
		return sp.Tick
	}
	ticksPerSecond := sp.BPM / 60.0 * float64(c.Resolution)
	elapsed := t - sp.Time
	if elapsed < 0 {
		return sp.Tick
	}
	return sp.Tick + uint32(elapsed*ticksPerSecond)
}

// pass runs one full A-H iteration.
func (r *Resolver) pass() {
	autoPlay := r.Gates.IsAutoPlayActive()
	autoStrum := r.Gates.IsAutoStrumActive()

	r.updateTimers(autoPlay, autoStrum)
	r.updateStarPower(autoPlay)

	if autoPlay {
		s := r.State
		s.HasStrummed = false
		s.HasFretted = false
		s.HasTapped = false
		s.IsFretPress = false
		s.WasNoteGhosted = false
	} else {
		r.stepStrumEdge(autoStrum)
		if r.IsBot {
			r.Policy.SimulateBot(r.State)
		}
	}

	r.stepGhostCheck(autoPlay)
	r.stepHitScan(autoPlay, autoStrum)
	r.stepSustainUpdate(autoPlay)

	if !autoPlay {
		s := r.State
		s.HasStrummed = false
		s.HasFretted = false
		s.IsFretPress = false
	}
}

// Step A (timers): spec.md §4.6.
func (r *Resolver) updateTimers(autoPlay, autoStrum bool) {
	s := r.State
	now := s.CurrentTime

	if t := s.Timers.Get(timer.HopoLeniency); t.IsActive() && t.IsExpired(now) && !autoPlay {
		t.Disable()
		s.ReRunHitLogic = true
	}

	if t := s.Timers.Get(timer.StrumLeniency); t.IsActive() && t.IsExpired(now) {
		if !autoPlay && !autoStrum {
			r.fireOverstrum()
		}
		t.Disable()
		s.ReRunHitLogic = true
	}

	for _, name := range [...]timer.Name{timer.ChordStagger, timer.FrontEndExpire, timer.StarPowerWhammy} {
		if t := s.Timers.Get(name); t.IsActive() && t.IsExpired(now) {
			t.Disable()
		}
	}
}

func (r *Resolver) updateStarPower(autoPlay bool) {
	s := r.State
	active := s.IsStarPowerInputActive || s.Timers.Get(timer.StarPowerWhammy).IsActive()
	if active != r.starPowerWasActive {
		r.starPowerWasActive = active
		r.Sink.OnStarPowerStateChange(active)
	}
}

func (r *Resolver) fireOverstrum() {
	s := r.State
	r.Sink.OnOverstrum()
	if s.Combo != 0 {
		s.Combo = 0
		r.Sink.OnComboChange(0)
	}
}

// Step C: strum-edge handling, only reached when AutoPlay is off.
func (r *Resolver) stepStrumEdge(autoStrum bool) {
	s := r.State
	if !s.HasStrummed {
		return
	}

	hopo := s.Timers.Get(timer.HopoLeniency)
	strum := s.Timers.Get(timer.StrumLeniency)

	switch {
	case hopo.IsActive():
		// Strum eaten by HOPO.
		hopo.Disable()
		strum.Disable()
		s.ReRunHitLogic = true

	case strum.IsActive():
		r.fireOverstrum()
		strum.Disable()
		s.ReRunHitLogic = true

	default:
		leniency := r.Params.StrumLeniency
		if s.NoteIndex < len(s.Chart.Notes) {
			note := s.Note(s.NoteIndex)
			back := note.Time + hitwindow.GetBackEnd(r.windowWidth)
			if s.CurrentTime > back {
				leniency = r.Params.StrumLeniencySmall
			}
		} else {
			leniency = r.Params.StrumLeniencySmall
		}
		strum.Start(s.CurrentTime, leniency)
		s.ReRunHitLogic = true
	}

	_ = autoStrum // HasStrummed is only set when AutoStrum is off (see engine/input); kept for symmetry with spec.md's heading.
}

// Step E: ghost-input check.
func (r *Resolver) stepGhostCheck(autoPlay bool) {
	s := r.State
	if autoPlay || !s.HasFretted || !r.Params.AntiGhosting {
		return
	}
	if s.NoteIndex >= len(s.Chart.Notes) {
		return
	}
	note := s.Note(s.NoteIndex)
	back := note.Time + hitwindow.GetBackEnd(r.windowWidth)
	if s.CurrentTime > back {
		return
	}

	s.HasTapped = true
	front := hitwindow.GetFrontEnd(r.windowWidth)
	if front < 0 {
		front = -front
	}
	s.FrontEndExpireTime = s.CurrentTime + front

	msbHeld := msb(s.ButtonMask & chart.AllFrets)
	msbLast := msb(s.LastButtonMask & chart.AllFrets)
	requiredHeld := s.ButtonMask&note.NoteMask&chart.AllFrets == note.NoteMask&chart.AllFrets

	if s.IsFretPress && msbHeld > msbLast && !requiredHeld {
		s.WasNoteGhosted = true
		r.Sink.OnGhostInput()
	}
}

// msb returns the highest set bit of m, or 0 if m is zero.
func msb(m uint8) uint8 {
	var top uint8
	for m != 0 {
		top = m & (^m + 1)
		m &^= top
	}
	return top
}

// Step F: hit scan.
func (r *Resolver) stepHitScan(autoPlay, autoStrum bool) {
	s := r.State
	notes := s.Chart.Notes

	for i := s.NoteIndex; i < len(notes); i++ {
		if s.IsFullyDealtWith(i) {
			continue
		}
		note := &notes[i]
		inWindow, missed := hitwindow.IsNoteInWindow(note.Time, s.CurrentTime, r.windowWidth)

		if i == s.NoteIndex {
			if missed {
				r.missNote(i)
				return
			}
			if !inWindow {
				return
			}
		} else if !inWindow {
			continue
		}

		if autoPlay {
			r.hitNote(i, true)
			return
		}

		if !r.Policy.CanNoteBeHit(s, note) {
			if i == s.NoteIndex {
				return
			}
			continue
		}

		hopoHit := note.IsHopo && (s.Combo > 0 || s.NoteIndex == 0)
		tapHit := note.IsTap
		frontEndValid := r.Params.InfiniteFrontEnd || s.FrontEndExpireTime == 0 ||
			s.CurrentTime <= s.FrontEndExpireTime || s.NoteIndex == 0

		if s.HasTapped && (hopoHit || tapHit) && frontEndValid && !s.WasNoteGhosted {
			r.hitNote(i, false)
			return
		}

		if i == s.NoteIndex {
			strumming := !autoStrum && (s.HasStrummed || s.Timers.Get(timer.StrumLeniency).IsActive())
			if strumming || autoStrum {
				r.hitNote(i, false)
				return
			}
			return
		}
	}
}

// hitNote implements spec.md §4.5's HitNote procedure.
func (r *Resolver) hitNote(i int, autoPlay bool) {
	s := r.State
	note := s.Note(i)

	if autoPlay {
		s.Timers.Get(timer.HopoLeniency).Disable()
		s.Timers.Get(timer.StrumLeniency).Disable()
		s.FrontEndExpireTime = 0
		s.HasTapped = false
	} else {
		if note.IsHopo || note.IsTap {
			s.HasTapped = false
			s.Timers.Get(timer.HopoLeniency).Start(s.CurrentTime, r.Params.HopoLeniency)
		} else {
			s.FrontEndExpireTime = 0
		}
		s.Timers.Get(timer.StrumLeniency).Disable()
	}

	r.endOverlappingSustains(note.NoteMask & chart.AllFrets)

	// A chord is a run of notes sharing the same tick; hit them all at
	// once and advance NoteIndex past the whole chord.
	endIdx := i
	for endIdx+1 < len(s.Chart.Notes) && s.Chart.Notes[endIdx+1].Tick == note.Tick {
		endIdx++
	}
	for j := i; j <= endIdx; j++ {
		s.MarkHit(j)
	}

	s.Combo++
	r.Sink.OnNoteHit(note, i)
	r.Sink.OnComboChange(s.Combo)

	if note.TickEnd > note.Tick {
		bits := note.NoteMask & chart.AllFrets
		if note.IsDisjoint {
			bits = note.DisjointMask & chart.AllFrets
		}
		s.ActiveSustains.Add(sustain.Record{NoteIndex: i, FretBits: bits, TickEnd: note.TickEnd})
		r.Sink.OnSustainStart(note, i)
	}

	s.AdvanceNoteIndex(endIdx)
	s.ReRunHitLogic = true
}

// endOverlappingSustains ends every active sustain whose fret bits
// intersect fretBits, ignoring OPEN (spec.md §4.5 HitNote).
func (r *Resolver) endOverlappingSustains(fretBits uint8) {
	s := r.State
	// Snapshot before mutating: RemoveByNoteIndex below rewrites
	// ActiveSustains' backing slice in place, which would otherwise
	// corrupt an in-progress range over s.ActiveSustains.All() itself.
	records := append([]sustain.Record(nil), s.ActiveSustains.All()...)
	for _, rec := range records {
		if rec.FretBits&fretBits != 0 {
			completed := rec.TickEnd != 0 && s.CurrentTick >= rec.TickEnd
			r.Sink.OnSustainEnd(s.Note(rec.NoteIndex), rec.NoteIndex, completed)
			s.ActiveSustains.RemoveByNoteIndex(rec.NoteIndex)
		}
	}
}

// missNote implements spec.md §4.5's MissNote procedure. The cleanup is
// identical whether or not AutoPlay is active, per spec.md's text.
func (r *Resolver) missNote(i int) {
	s := r.State
	note := s.Note(i)

	s.HasTapped = false
	s.Timers.Get(timer.HopoLeniency).Disable()
	s.Timers.Get(timer.StrumLeniency).Disable()
	s.WasNoteGhosted = false
	s.FrontEndExpireTime = 0

	s.MarkMissed(i)
	if s.Combo != 0 {
		s.Combo = 0
		r.Sink.OnComboChange(0)
	}
	r.Sink.OnNoteMissed(note, i)
	s.AdvanceNoteIndex(i)
	s.ReRunHitLogic = true
}

// Step G: sustain update.
func (r *Resolver) stepSustainUpdate(autoPlay bool) {
	s := r.State
	records := append([]sustain.Record(nil), s.ActiveSustains.All()...)
	for _, rec := range records {
		if sustain.EndCondition(rec, s.CurrentTick, s.ButtonMask, autoPlay) {
			completed := rec.TickEnd != 0 && s.CurrentTick >= rec.TickEnd
			r.Sink.OnSustainEnd(s.Note(rec.NoteIndex), rec.NoteIndex, completed)
			s.ActiveSustains.RemoveByNoteIndex(rec.NoteIndex)
		}
	}
}
