package timeutil

import (
	"testing"
	"time"
)

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "09:30", "9:30", "14:05", "23:59"}
	for _, hm := range valid {
		if !IsValidClock(hm) {
			t.Errorf("IsValidClock(%q) = false, want true", hm)
		}
	}

	invalid := []string{"", "24:00", "12:60", "12", "12:5", "ab:cd", "12:345", "-1:00"}
	for _, hm := range invalid {
		if IsValidClock(hm) {
			t.Errorf("IsValidClock(%q) = true, want false", hm)
		}
	}
}

func TestMinuteOffset(t *testing.T) {
	cases := []struct {
		hm   string
		want int
	}{
		{"00:00", 0},
		{"01:30", 90},
		{"10:00", 600},
		{"23:59", 1439},
	}

	for _, tc := range cases {
		got, err := MinuteOffset(tc.hm)
		if err != nil {
			t.Fatalf("MinuteOffset(%q) error: %v", tc.hm, err)
		}
		if got != tc.want {
			t.Errorf("MinuteOffset(%q) = %d, want %d", tc.hm, got, tc.want)
		}
	}

	if _, err := MinuteOffset("nonsense"); err == nil {
		t.Error("MinuteOffset(nonsense) expected error")
	}
}

func TestMergeDateTime(t *testing.T) {
	date := time.Date(2026, time.March, 14, 17, 45, 33, 999, time.UTC)

	got, err := MergeDateTime(date, "09:30")
	if err != nil {
		t.Fatalf("MergeDateTime error: %v", err)
	}

	want := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("MergeDateTime = %v, want %v", got, want)
	}

	if got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("MergeDateTime did not zero seconds: %v", got)
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2026, time.March, 14, 17, 45, 33, 999, time.UTC)
	want := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	if got := StartOfDay(in); !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-03-14")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	want := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	if _, err := ParseDate("14/03/2026"); err == nil {
		t.Error("ParseDate(14/03/2026) expected error")
	}
}
