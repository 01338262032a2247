package hit

// Params is spec.md §3's EngineParameters: immutable per game session.
type Params struct {
	// StrumLeniency is the full leniency window (seconds) started when a
	// strum arrives before its note is in range.
	StrumLeniency float64
	// StrumLeniencySmall is used instead of StrumLeniency when the strum
	// arrives after the current note's back end has already passed, or
	// when no notes remain (spec.md §4.5 Step C).
	StrumLeniencySmall float64
	// HopoLeniency is the window a HOPO/tap hit opens to eat a
	// subsequent strum. spec.md's body leaves the exact value as an
	// engine-tuning constant; DefaultParams uses 0.08s.
	HopoLeniency float64
	// AntiGhosting enables the upward-hammer ghost-input check of
	// spec.md §4.5 Step E.
	AntiGhosting bool
	// InfiniteFrontEnd disables the anti-ghost front-end-expiry gate
	// entirely (spec.md §4.5 Step F.5).
	InfiniteFrontEnd bool
}

// DefaultParams returns the literal leniency values spec.md §8 uses in
// its S1-S6 scenarios: StrumLeniency 0.07s, StrumLeniencySmall 0.025s.
// The hit window (front=-0.14s/back=+0.14s, width 0.28s) is not a Params
// field; Resolver derives it from hitwindow.CalculateHitWindow.
func DefaultParams() Params {
	return Params{
		StrumLeniency:      0.07,
		StrumLeniencySmall: 0.025,
		HopoLeniency:       0.08,
		AntiGhosting:       true,
		InfiniteFrontEnd:   false,
	}
}
