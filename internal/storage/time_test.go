package storage

import (
	"testing"
	"time"
)

func TestFormatTimeRoundTrip(t *testing.T) {
	now := time.Now().UTC()

	got, err := parseTime(formatTime(now))
	if err != nil {
		t.Fatalf("parseTime() error = %v", err)
	}
	if !got.Equal(now) {
		t.Fatalf("round trip = %v, want %v", got, now)
	}
}

func TestFormatTimeLexicographicOrder(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	later := base.Add(time.Millisecond)

	if formatTime(base) >= formatTime(later) {
		t.Fatalf("text ordering broken: %q >= %q", formatTime(base), formatTime(later))
	}
}

func TestParseTime_WholeSeconds(t *testing.T) {
	got, err := parseTime("2026-03-01T10:00:00Z")
	if err != nil {
		t.Fatalf("parseTime() error = %v", err)
	}
	want := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseTime_Invalid(t *testing.T) {
	if _, err := parseTime("yesterday"); err == nil {
		t.Fatal("expected error for invalid timestamp")
	}
}
