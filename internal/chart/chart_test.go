package chart

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTickToTimeLinearExtrapolation(t *testing.T) {
	c := &Chart{
		Resolution: 192,
		Sync:       []SyncPoint{{Tick: 0, Time: 0, BPM: 120}},
	}
	// At 120 BPM, one quarter note (Resolution ticks) is 0.5s.
	got := c.TickToTime(192)
	if got != 0.5 {
		t.Errorf("TickToTime(192) = %v, want 0.5", got)
	}
}

func TestTickToTimeUsesLatestSyncPointAtOrBeforeTick(t *testing.T) {
	c := &Chart{
		Resolution: 192,
		Sync: []SyncPoint{
			{Tick: 0, Time: 0, BPM: 120},
			{Tick: 384, Time: 1.0, BPM: 240},
		},
	}
	// Tick 576 is 192 ticks past the second sync point, at 240 BPM
	// (0.25s per quarter note), so +0.25s from that sync point's time.
	got := c.TickToTime(576)
	if got != 1.25 {
		t.Errorf("TickToTime(576) = %v, want 1.25", got)
	}
}

func TestAverageNoteDistance(t *testing.T) {
	c := &Chart{Notes: []Note{{Time: 0}, {Time: 1}, {Time: 3}}}
	if got := c.AverageNoteDistance(); got != 1.5 {
		t.Errorf("AverageNoteDistance() = %v, want 1.5", got)
	}
	single := &Chart{Notes: []Note{{Time: 1}}}
	if got := single.AverageNoteDistance(); got != 0 {
		t.Errorf("AverageNoteDistance() on one note = %v, want 0", got)
	}
}

func TestCalculateDurationUsesSustainEnd(t *testing.T) {
	c := &Chart{
		Resolution: 192,
		Sync:       []SyncPoint{{Tick: 0, Time: 0, BPM: 120}},
		Notes:      []Note{{Time: 1.0, Tick: 192, TickEnd: 384}},
	}
	c.CalculateDuration()
	// TickEnd 384 at 120 BPM is 1.0s; +2.0s tail buffer.
	if got, want := c.Duration, 3.0; got != want {
		t.Errorf("Duration = %v, want %v", got, want)
	}
}

func TestLoadChartNormalizesNotesAndBackLinks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.yaml")
	data := []byte(`
title: Test Song
artist: Test Artist
resolution: 192
sync:
  - tick: 0
    time: 0
    bpm: 120
notes:
  - time: 1.0
    tick: 192
    noteMask: 1
  - time: 0.5
    tick: 96
    noteMask: 2
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadChart(path)
	if err != nil {
		t.Fatalf("LoadChart: %v", err)
	}
	if len(c.Notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(c.Notes))
	}
	if c.Notes[0].Time != 0.5 || c.Notes[1].Time != 1.0 {
		t.Fatalf("notes should be sorted by time, got %+v", c.Notes)
	}
	if c.Notes[0].PreviousNoteIndex != -1 {
		t.Errorf("first note's PreviousNoteIndex = %d, want -1", c.Notes[0].PreviousNoteIndex)
	}
	if c.Notes[1].PreviousNoteIndex != 0 {
		t.Errorf("second note's PreviousNoteIndex = %d, want 0", c.Notes[1].PreviousNoteIndex)
	}
}

func TestLoadChartsFromDirectorySkipsUnparseable(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "a.yaml")
	bad := filepath.Join(dir, "b.yaml")
	other := filepath.Join(dir, "c.txt")

	if err := os.WriteFile(good, []byte("title: A\nnotes: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("title: [not valid yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(other, []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	charts, err := LoadChartsFromDirectory(dir)
	if err != nil {
		t.Fatalf("LoadChartsFromDirectory: %v", err)
	}
	if len(charts) != 1 || charts[0].Title != "A" {
		t.Fatalf("expected only the valid chart to load, got %+v", charts)
	}
}
