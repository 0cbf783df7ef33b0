package aoc2019day06

import (
	"fmt"
	"strings"
)

func Run(input string, part int) {
	if part == 0 || part == 1 {
		fmt.Printf("AoC2019, Day6, Part1 solution is: %d\n", part1(&input))
	}
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day6, Part2 solution is: %d\n", part2(&input))
	}
}

func part1(input *string) int {
	orbits := parseOrbits(input)

	total := 0
	for planet := range orbits {
		for p, ok := orbits[planet]; ok; p, ok = orbits[p] {
			total++
		}
	}

	return total
}

func part2(input *string) int {
	orbits := parseOrbits(input)

	// distance from YOU to every planet it indirectly orbits
	distances := make(map[string]int)
	steps := 0
	for p, ok := orbits["YOU"]; ok; p, ok = orbits[p] {
		distances[p] = steps
		steps++
	}

	// walk up from SAN until the paths meet
	steps = 0
	for p, ok := orbits["SAN"]; ok; p, ok = orbits[p] {
		if d, found := distances[p]; found {
			return d + steps
		}
		steps++
	}

	panic("YOU and SAN never share an orbit")
}

// parseOrbits maps each planet to the planet it directly orbits. Each line of
// input is "ABC)XYZ".
func parseOrbits(input *string) map[string]string {
	orbits := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(*input), "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), ")", 2)
		if len(parts) != 2 {
			panic(fmt.Sprintf("Bad orbit: %s", line))
		}
		orbits[parts[1]] = parts[0]
	}

	return orbits
}
