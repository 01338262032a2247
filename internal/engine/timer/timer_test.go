package timer

import "testing"

func TestTimerStartIsActiveAndExpires(t *testing.T) {
	var tm Timer
	if tm.IsActive() {
		t.Fatal("a fresh timer should not be active")
	}

	tm.Start(1.0, 0.07)
	if !tm.IsActive() {
		t.Fatal("Start should arm the timer")
	}
	if tm.EndTime() != 1.07 {
		t.Errorf("EndTime() = %v, want 1.07", tm.EndTime())
	}
	if tm.IsExpired(1.06) {
		t.Error("should not be expired before EndTime")
	}
	if !tm.IsExpired(1.07) {
		t.Error("should be expired exactly at EndTime")
	}
}

func TestTimerDisable(t *testing.T) {
	var tm Timer
	tm.Start(0, 1)
	tm.Disable()
	if tm.IsActive() {
		t.Fatal("Disable should clear active")
	}
	if tm.IsExpired(1000) {
		t.Error("a disabled timer is never expired")
	}
}

func TestSetGetReturnsDistinctTimersByName(t *testing.T) {
	var s Set
	s.Get(StrumLeniency).Start(0, 0.07)
	s.Get(HopoLeniency).Start(0, 0.08)

	if !s.Get(StrumLeniency).IsActive() || !s.Get(HopoLeniency).IsActive() {
		t.Fatal("both named timers should be independently active")
	}

	s.Get(StrumLeniency).Disable()
	if s.Get(StrumLeniency).IsActive() {
		t.Error("disabling StrumLeniency should not affect HopoLeniency")
	}
	if !s.Get(HopoLeniency).IsActive() {
		t.Error("HopoLeniency should remain active")
	}
}
