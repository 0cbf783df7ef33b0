package aoc2019day12

import (
	"fmt"
	"strconv"
	"strings"
)

func Run(input string, part int) {
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day12, Part2 solution is: %d\n", part2(&input))
	}
}

// part2 finds how long the whole system takes to repeat. The three axes are
// fully independent, so each axis cycle is found on its own and the answer is
// the least common multiple of the three.
func part2(input *string) int {
	moons := parseMoons(input)
	numMoons := len(moons)

	var iterations [3]int
	for axis := 0; axis < 3; axis++ {
		initial := make([]int, numMoons)
		for i, m := range moons {
			initial[i] = m[axis]
		}

		positions := make([]int, numMoons)
		copy(positions, initial)
		velocities := make([]int, numMoons)

		for {
			for i := 0; i < numMoons-1; i++ {
				for j := i + 1; j < numMoons; j++ {
					change := signum(positions[j] - positions[i])
					velocities[i] += change
					velocities[j] -= change
				}
				positions[i] += velocities[i]
			}
			positions[numMoons-1] += velocities[numMoons-1]

			iterations[axis]++
			if equalToInitial(positions, initial) && allZero(velocities) {
				break
			}
		}
	}

	return lcm(lcm(iterations[0], iterations[1]), iterations[2])
}

func equalToInitial(positions, initial []int) bool {
	for i := range positions {
		if positions[i] != initial[i] {
			return false
		}
	}
	return true
}

func allZero(velocities []int) bool {
	for _, v := range velocities {
		if v != 0 {
			return false
		}
	}
	return true
}

func signum(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func gcd(a, b int) int {
	if b == 0 {
		return a
	}
	return gcd(b, a%b)
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

// parseMoons reads one moon per line in the form "<x=X, y=Y, z=Z>".
func parseMoons(input *string) [][3]int {
	var moons [][3]int
	for _, line := range strings.Split(strings.TrimSpace(*input), "\n") {
		line = strings.TrimSpace(line)
		coords := strings.Split(line[1:len(line)-1], ", ")
		if len(coords) != 3 {
			panic(fmt.Sprintf("Bad moon: %s", line))
		}

		var moon [3]int
		for i, coord := range coords {
			n, err := strconv.Atoi(coord[2:])
			if err != nil {
				panic(err)
			}
			moon[i] = n
		}
		moons = append(moons, moon)
	}

	return moons
}
