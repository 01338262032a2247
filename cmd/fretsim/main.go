// Command fretsim is a headless driver for the hit-detection engine: it
// loads a chart and an input trace, drives the engine tick by tick, and
// prints the final score line.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/rbergman/fretengine/internal/chart"
	"github.com/rbergman/fretengine/internal/engine/cursor"
	"github.com/rbergman/fretengine/internal/engine/gates"
	"github.com/rbergman/fretengine/internal/engine/hit"
	"github.com/rbergman/fretengine/internal/engine/input"
	"github.com/rbergman/fretengine/internal/flags"
	"github.com/rbergman/fretengine/internal/obs"
	"github.com/rbergman/fretengine/internal/sink"
)

// traceEvent is one row of an input-trace YAML file.
type traceEvent struct {
	Time   float64 `yaml:"time"`
	Action string  `yaml:"action"`
	Fret   int     `yaml:"fret"`
	Button bool    `yaml:"button"`
}

func loadTrace(path string) ([]input.GameInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var events []traceEvent
	if err := yaml.Unmarshal(data, &events); err != nil {
		return nil, err
	}

	out := make([]input.GameInput, 0, len(events))
	for _, e := range events {
		var action input.Action
		switch e.Action {
		case "fret":
			action = input.ActionFret
		case "strum_down":
			action = input.ActionStrumDown
		case "strum_up":
			action = input.ActionStrumUp
		case "star_power":
			action = input.ActionStarPower
		case "whammy":
			action = input.ActionWhammy
		default:
			return nil, fmt.Errorf("unknown trace action %q", e.Action)
		}
		out = append(out, input.GameInput{
			Time:   e.Time,
			Action: action,
			Fret:   e.Fret,
			Button: e.Button,
		})
	}
	return out, nil
}

func main() {
	chartPath := flag.String("chart", "", "path to a chart YAML file")
	tracePath := flag.String("trace", "", "path to an input-trace YAML file (ignored in -bot mode)")
	seedPath := flag.String("flags-seed", "", "optional flag-store seed YAML file")
	isBot := flag.Bool("bot", false, "drive the chart with ideal-input bot simulation instead of a trace")
	jsonLog := flag.Bool("json-log", false, "emit logs as JSON instead of console format")
	flag.Parse()

	obs.Configure(obs.DefaultLevel, *jsonLog)

	if *chartPath == "" {
		obs.L().Fatal().Msg("-chart is required")
	}

	c, err := chart.LoadChart(*chartPath)
	if err != nil {
		obs.L().Fatal().Err(err).Str("path", *chartPath).Msg("failed to load chart")
	}

	var trace []input.GameInput
	if !*isBot {
		if *tracePath == "" {
			obs.L().Fatal().Msg("-trace is required unless -bot is set")
		}
		trace, err = loadTrace(*tracePath)
		if err != nil {
			obs.L().Fatal().Err(err).Str("path", *tracePath).Msg("failed to load input trace")
		}
	}

	store := flags.NewStore()
	if *seedPath != "" {
		data, err := os.ReadFile(*seedPath)
		if err != nil {
			obs.L().Fatal().Err(err).Str("path", *seedPath).Msg("failed to read flags seed")
		}
		if err := flags.LoadSeed(store, data); err != nil {
			obs.L().Fatal().Err(err).Msg("failed to parse flags seed")
		}
	}

	profileID := uuid.New()
	g := gates.Gates{Oracle: store, ProfileID: profileID}

	recorder := &sink.Recorder{}
	eventSink := sink.Multi{sink.Logging{}, recorder}

	resolver := hit.New(c, hit.DefaultParams(), g, hit.FiveFretPolicy{}, eventSink, *isBot)

	const tickRate = time.Second / 60
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	// Drain the input trace in timestamp order ahead of each tick, per
	// spec.md §5; engine/cursor.Cursor is the shared primitive the spec
	// calls out for this (spec.md §4.1, SPEC_FULL.md's cursor wiring).
	traceCursor := cursor.New[float64, input.GameInput](trace)

	now := 0.0
	for now < c.Duration {
		now += tickRate.Seconds()

		for {
			ev, advanced := traceCursor.AdvanceOneIfReady(now)
			if !advanced {
				break
			}
			resolver.Policy.ReduceInput(resolver.State, ev, g.IsAutoPlayActive(), g.IsAutoStrumActive())
		}

		resolver.Tick(now)
		<-ticker.C
	}

	hitCount := recorder.CountHits()
	total := len(c.Notes)
	accuracy := 0.0
	if total > 0 {
		accuracy = float64(hitCount) / float64(total) * 100
	}

	fmt.Printf("%s — %s\n", c.Title, c.Artist)
	fmt.Printf("Notes hit: %d/%d (%.1f%%)\n", hitCount, total, accuracy)
	fmt.Printf("Final combo: %d\n", resolver.State.Combo)
}
