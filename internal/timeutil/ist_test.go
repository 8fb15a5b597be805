package timeutil

import (
	"testing"
	"time"
)

func TestParseInIST(t *testing.T) {
	got, err := ParseInIST(DateLayout, "2026-04-01")
	if err != nil {
		t.Fatalf("ParseInIST failed: %v", err)
	}

	_, offset := got.Zone()
	if want := 5*3600 + 30*60; offset != want {
		t.Errorf("zone offset = %d, want %d (UTC+5:30)", offset, want)
	}
	if got.Year() != 2026 || got.Month() != time.April || got.Day() != 1 {
		t.Errorf("parsed date = %v, want 2026-04-01", got)
	}

	if _, err := ParseInIST(DateLayout, "01-04-2026"); err == nil {
		t.Error("expected error for value not matching the date layout")
	}
}

func TestFormatIST(t *testing.T) {
	// 2026-03-31 20:00 UTC is already 2026-04-01 in IST.
	utc := time.Date(2026, time.March, 31, 20, 0, 0, 0, time.UTC)
	if got := FormatIST(utc, DateLayout); got != "2026-04-01" {
		t.Errorf("FormatIST = %q, want %q", got, "2026-04-01")
	}
}
