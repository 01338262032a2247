// Package fret implements the anchor-aware chord-matching predicate:
// given the buttons currently held, can a specific note's required fret
// pattern be considered satisfied, ignoring timing entirely.
package fret

import "github.com/rbergman/fretengine/internal/chart"

// lowestSetBit returns the value of the lowest set bit in m, or 0 if m
// is zero.
func lowestSetBit(m uint8) uint8 {
	return m & (^m + 1)
}

// CanBeHitRaw implements spec.md §4.3's three cases against a raw held
// mask, with no knowledge of sustains.
func CanBeHitRaw(buttonsHeld, noteMask uint8) bool {
	switch {
	case noteMask == chart.FretOpen:
		// Case 1: open-only note.
		return buttonsHeld == chart.FretOpen

	case noteMask&chart.FretOpen != 0 && noteMask&chart.AllFrets != 0:
		// Case 2: note requires OPEN plus frets.
		required := noteMask & chart.AllFrets
		heldFrets := buttonsHeld & chart.AllFrets
		if heldFrets&required != required {
			return false
		}
		anchor := heldFrets &^ required
		if anchor == 0 {
			return true
		}
		lowestRequired := lowestSetBit(required)
		return anchor > lowestRequired

	default:
		// Case 3: pure fret note (includes the zero-fret-bits case,
		// which only matches an equally empty held mask).
		required := noteMask & chart.AllFrets
		heldFrets := buttonsHeld & chart.AllFrets
		if heldFrets&required != required {
			return false
		}
		if heldFrets == required {
			return true
		}
		anchor := heldFrets ^ required
		lowestRequired := lowestSetBit(required)
		return anchor < lowestRequired
	}
}

// CanNoteBeHit returns true if the predicate holds either with the raw
// held mask, or with the mask of every currently extended-and-actively-
// held sustain's fret bits removed (sustainFretBits), so held-for-
// sustain frets do not block hitting the next note.
func CanNoteBeHit(buttonsHeld, noteMask, sustainFretBits uint8) bool {
	if CanBeHitRaw(buttonsHeld, noteMask) {
		return true
	}
	if sustainFretBits == 0 {
		return false
	}
	reduced := buttonsHeld &^ sustainFretBits
	// Removing held frets can flip the synthetic OPEN bit on; a sustain
	// mask never claims to be OPEN, so resynthesize it here.
	if reduced&chart.AllFrets == 0 {
		reduced |= chart.FretOpen
	}
	return CanBeHitRaw(reduced, noteMask)
}
