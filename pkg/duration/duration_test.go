package duration

import (
	"fmt"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"8:15", 8.25, true},
		{"08:15", 8.25, true},
		{"0:45", 0.75, true},
		{"8:5", 8 + 5.0/60.0, true},
		{"23:59", 23 + 59.0/60.0, true},
		{"24:00", 0, false},
		{"8:60", 0, false},
		{"7.5", 7.5, true},
		{"7,5", 7.5, true},
		{"0.5", 0.5, true},
		{"0", 0, true},
		{"23.99", 23.99, true},
		{"24", 0, false},
		{"24.0", 0, false},
		{"99", 0, false},
		{"-1", 0, false},
		{"-0:30", 0, false},
		{"abc", 0, false},
		{"8h", 0, false},
		{"1:2:3", 0, false},
		{"", 0, false},
		{"8.5.5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{7.5, "07:30"},
		{0.5, "00:30"},
		{10.0, "10:00"},
		{1.75, "01:45"},
		{0, "00:00"},
		{30.5, "30:30"},
		{7.2857142857, "07:17"}, // truncated to the minute, not rounded
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Format(tt.hours); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.hours, got, tt.want)
			}
		})
	}
}

func TestFormatRoundTripsParse(t *testing.T) {
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 1, 15, 30, 45, 59} {
			s := fmt.Sprintf("%02d:%02d", h, m)
			hours, ok := Parse(s)
			if !ok {
				t.Fatalf("Parse(%q) unexpectedly failed", s)
			}
			if got := Format(hours); got != s {
				t.Errorf("Format(Parse(%q)) = %q", s, got)
			}
		}
	}
}
