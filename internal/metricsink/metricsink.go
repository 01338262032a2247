// Package metricsink implements sink.EventSink on top of Prometheus
// client_golang, the observability half of SPEC_FULL.md's domain stack.
package metricsink

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rbergman/fretengine/internal/chart"
)

// Sink reports every engine event as a Prometheus metric. It is safe
// for the concurrent collection calls Prometheus' registry makes; all
// counters/gauges are already goroutine-safe by construction.
type Sink struct {
	notesHit      prometheus.Counter
	notesMissed   prometheus.Counter
	overstrums    prometheus.Counter
	ghostInputs   prometheus.Counter
	sustainsStart prometheus.Counter
	sustainsEnd   *prometheus.CounterVec
	combo         prometheus.Gauge
	starPower     prometheus.Gauge
}

// New constructs a Sink and registers its collectors with reg. Pass
// prometheus.DefaultRegisterer for the process-wide registry.
func New(reg prometheus.Registerer) *Sink {
	s := &Sink{
		notesHit: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fretengine",
			Name:      "notes_hit_total",
			Help:      "Total notes hit across all ticks.",
		}),
		notesMissed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fretengine",
			Name:      "notes_missed_total",
			Help:      "Total notes missed across all ticks.",
		}),
		overstrums: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fretengine",
			Name:      "overstrums_total",
			Help:      "Total overstrum events.",
		}),
		ghostInputs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fretengine",
			Name:      "ghost_inputs_total",
			Help:      "Total ghost (anti-hammer) inputs rejected.",
		}),
		sustainsStart: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fretengine",
			Name:      "sustains_started_total",
			Help:      "Total sustains started.",
		}),
		sustainsEnd: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fretengine",
			Name:      "sustains_ended_total",
			Help:      "Total sustains ended, partitioned by completion.",
		}, []string{"completed"}),
		combo: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fretengine",
			Name:      "combo",
			Help:      "Current combo count of the most recently ticked engine.",
		}),
		starPower: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fretengine",
			Name:      "star_power_active",
			Help:      "1 if star power is currently active, 0 otherwise.",
		}),
	}

	reg.MustRegister(
		s.notesHit, s.notesMissed, s.overstrums, s.ghostInputs,
		s.sustainsStart, s.sustainsEnd, s.combo, s.starPower,
	)
	return s
}

func (s *Sink) OnNoteHit(_ *chart.Note, _ int)    { s.notesHit.Inc() }
func (s *Sink) OnNoteMissed(_ *chart.Note, _ int) { s.notesMissed.Inc() }
func (s *Sink) OnOverstrum()                      { s.overstrums.Inc() }
func (s *Sink) OnGhostInput()                     { s.ghostInputs.Inc() }

func (s *Sink) OnSustainStart(_ *chart.Note, _ int) { s.sustainsStart.Inc() }

func (s *Sink) OnSustainEnd(_ *chart.Note, _ int, completed bool) {
	label := "false"
	if completed {
		label = "true"
	}
	s.sustainsEnd.WithLabelValues(label).Inc()
}

func (s *Sink) OnComboChange(newCombo int) { s.combo.Set(float64(newCombo)) }

func (s *Sink) OnStarPowerStateChange(active bool) {
	if active {
		s.starPower.Set(1)
		return
	}
	s.starPower.Set(0)
}
