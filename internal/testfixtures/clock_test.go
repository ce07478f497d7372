package testfixtures

import (
	"testing"
	"time"
)

func TestClockDefaultsToReferenceTime(t *testing.T) {
	clock := NewClock(time.Time{})
	if !clock.Now().Equal(ReferenceTime()) {
		t.Fatalf("expected ReferenceTime, got %v", clock.Now())
	}
}

func TestClockAdvanceAndSet(t *testing.T) {
	start := ReferenceTime()
	clock := NewClock(start)

	updated := clock.Advance(36 * time.Hour)
	if !updated.Equal(start.Add(36 * time.Hour)) {
		t.Fatalf("advance returned %v", updated)
	}

	departure := time.Date(2026, time.September, 15, 8, 0, 0, 0, time.UTC)
	clock.Set(departure)
	if got := clock.Now(); !got.Equal(departure) {
		t.Fatalf("expected %v, got %v", departure, got)
	}
}

func TestClockNowFunc(t *testing.T) {
	clock := NewClock(ReferenceTime())
	nowFn := clock.NowFunc()

	if got := nowFn(); !got.Equal(clock.Now()) {
		t.Fatalf("expected %v from NowFunc, got %v", clock.Now(), got)
	}

	clock.Advance(time.Minute)
	if got := nowFn(); !got.Equal(clock.Now()) {
		t.Fatalf("expected updated time %v, got %v", clock.Now(), got)
	}
}
