package timefmt

import (
	"math"
	"strings"
	"testing"
)

func TestParseHHMMSS(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"01:02:03", 3723},
		{"0:0:0", 0},
		{"00:00:59", 59},
		{"100:00:00", 360000},
		{" 01:02:03 ", 3723},
	}
	for _, tc := range cases {
		got, err := ParseHHMMSS(tc.input)
		if err != nil {
			t.Fatalf("ParseHHMMSS(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseHHMMSS(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseHHMMSSErrors(t *testing.T) {
	cases := []struct {
		input   string
		wantMsg string
	}{
		{"1:2", "HH:MM:SS format"},
		{"1:2:3:4", "HH:MM:SS format"},
		{"", "HH:MM:SS format"},
		{"ab:cd:ef", "must contain integers"},
		{"01:2x:00", "must contain integers"},
		{"1:60:00", "between 0 and 59"},
		{"1:00:60", "between 0 and 59"},
		{"1:-1:00", "between 0 and 59"},
		{"-1:00:00", "must be non-negative"},
	}
	for _, tc := range cases {
		_, err := ParseHHMMSS(tc.input)
		if err == nil {
			t.Fatalf("ParseHHMMSS(%q) succeeded, want error", tc.input)
		}
		if !strings.Contains(err.Error(), tc.wantMsg) {
			t.Fatalf("ParseHHMMSS(%q) error %q does not mention %q", tc.input, err, tc.wantMsg)
		}
	}
}

func TestFormatHHMMSS(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{3723, "01:02:03"},
		{0, "00:00:00"},
		{-5, "00:00:00"},
		{59.6, "00:01:00"},
		{360000, "100:00:00"},
		{math.NaN(), "00:00:00"},
	}
	for _, tc := range cases {
		if got := FormatHHMMSS(tc.seconds); got != tc.want {
			t.Fatalf("FormatHHMMSS(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{125, "02:05"},
		{0, "00:00"},
		{-3, "00:00"},
		{3600, "60:00"},
		{59.5, "01:00"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.seconds); got != tc.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
