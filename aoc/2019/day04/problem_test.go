package aoc2019day04

import "testing"

func TestNextWithDouble(t *testing.T) {
	tests := []struct {
		name      string
		num       int
		wantNext  int
		wantValid bool
	}{
		{name: "repeated digits", num: 111111, wantNext: 111111, wantValid: true},
		{name: "decreasing pair", num: 223450, wantNext: 223455, wantValid: true},
		{name: "no double", num: 123789, wantNext: 123789, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, valid := nextWithDouble(tt.num)
			if next != tt.wantNext || valid != tt.wantValid {
				t.Errorf("nextWithDouble(%d) = (%d, %v); want (%d, %v)",
					tt.num, next, valid, tt.wantNext, tt.wantValid)
			}
		})
	}
}

func TestNextWithExactDouble(t *testing.T) {
	tests := []struct {
		name      string
		num       int
		wantValid bool
	}{
		{name: "three exact pairs", num: 112233, wantValid: true},
		{name: "triple does not count", num: 123444, wantValid: false},
		{name: "pair after quad", num: 111122, wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, valid := nextWithExactDouble(tt.num); valid != tt.wantValid {
				t.Errorf("nextWithExactDouble(%d) valid = %v; want %v", tt.num, valid, tt.wantValid)
			}
		})
	}
}

func TestCountPasswords(t *testing.T) {
	input := "111110-111112"

	if got := part1(&input); got != 2 {
		t.Errorf("part1(%q) = %d; want 2", input, got)
	}
	if got := part2(&input); got != 0 {
		t.Errorf("part2(%q) = %d; want 0", input, got)
	}
}
