package fret

import (
	"testing"

	"github.com/rbergman/fretengine/internal/chart"
)

func TestCanBeHitRaw_OpenNote(t *testing.T) {
	if !CanBeHitRaw(chart.FretOpen, chart.FretOpen) {
		t.Error("holding only OPEN should hit an open note")
	}
	if CanBeHitRaw(chart.FretGreen, chart.FretOpen) {
		t.Error("holding a fret should not hit an open note")
	}
}

func TestCanBeHitRaw_PlainNote(t *testing.T) {
	if !CanBeHitRaw(chart.FretGreen, chart.FretGreen) {
		t.Error("exact match should hit")
	}
	if CanBeHitRaw(chart.FretRed, chart.FretGreen) {
		t.Error("wrong fret should not hit")
	}
}

func TestCanBeHitRaw_AnchorBelowRequired(t *testing.T) {
	// Holding Green+Red for a Red note: Green is below Red, a legal anchor.
	held := chart.FretGreen | chart.FretRed
	if !CanBeHitRaw(held, chart.FretRed) {
		t.Error("anchoring below the required fret should hit")
	}
}

func TestCanBeHitRaw_AnchorAboveRequiredRejected(t *testing.T) {
	// Holding Red+Yellow for a Red note: Yellow is above Red, illegal.
	held := chart.FretRed | chart.FretYellow
	if CanBeHitRaw(held, chart.FretRed) {
		t.Error("anchoring above the required fret should not hit")
	}
}

func TestCanBeHitRaw_OpenPlusFretAnchor(t *testing.T) {
	noteMask := uint8(chart.FretOpen | chart.FretRed)
	// Exact required frets, no extra anchor.
	if !CanBeHitRaw(chart.FretRed, noteMask) {
		t.Error("required frets alone should hit an OPEN+fret note")
	}
	// Anchor above the lowest required fret is legal for this branch.
	above := chart.FretRed | chart.FretYellow
	if !CanBeHitRaw(above, noteMask) {
		t.Error("anchoring above the required fret should hit an OPEN+fret note")
	}
	// Anchor below is illegal.
	below := chart.FretRed | chart.FretGreen
	if CanBeHitRaw(below, noteMask) {
		t.Error("anchoring below the required fret should not hit an OPEN+fret note")
	}
}

func TestCanNoteBeHit_SustainReduction(t *testing.T) {
	// Holding Yellow from an active sustain plus Red for the new note: the
	// raw mask (Red|Yellow) doesn't match a Red-only note, since Yellow
	// is above Red, but removing the sustain's Yellow bit does.
	held := chart.FretRed | chart.FretYellow
	if CanBeHitRaw(held, chart.FretRed) {
		t.Fatal("test setup: raw mask should not already match")
	}
	if !CanNoteBeHit(held, chart.FretRed, chart.FretYellow) {
		t.Error("removing the sustained fret bit should allow the hit")
	}
}

func TestCanNoteBeHit_NoSustainNoMatch(t *testing.T) {
	held := chart.FretGreen | chart.FretYellow
	if CanNoteBeHit(held, chart.FretRed, 0) {
		t.Error("unrelated frets held with no sustain should not hit")
	}
}
