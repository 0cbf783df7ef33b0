package aoc2019day06

import "testing"

func TestTotalOrbits(t *testing.T) {
	input := "COM)B\nB)C\nC)D\nD)E\nE)F\nB)G\nG)H\nD)I\nE)J\nJ)K\nK)L"

	if got := part1(&input); got != 42 {
		t.Errorf("part1() = %d; want 42", got)
	}
}

func TestOrbitalTransfers(t *testing.T) {
	input := "COM)B\nB)C\nC)D\nD)E\nE)F\nB)G\nG)H\nD)I\nE)J\nJ)K\nK)L\nK)YOU\nI)SAN"

	if got := part2(&input); got != 4 {
		t.Errorf("part2() = %d; want 4", got)
	}
}

func TestParseOrbits(t *testing.T) {
	input := "COM)B\nB)C\n"
	orbits := parseOrbits(&input)

	if orbits["B"] != "COM" || orbits["C"] != "B" {
		t.Errorf("parseOrbits() = %v; want B orbiting COM and C orbiting B", orbits)
	}
}
