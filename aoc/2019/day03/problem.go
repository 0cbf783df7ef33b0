package aoc2019day03

import (
	"fmt"
	"strconv"
	"strings"
)

type point struct {
	x, y int
}

func Run(input string, part int) {
	if part == 0 || part == 1 {
		fmt.Printf("AoC2019, Day3, Part1 solution is: %d\n", part1(&input))
	}
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day3, Part2 solution is: %d\n", part2(&input))
	}
}

func part1(input *string) int {
	wires := parseWires(input)

	min := -1
	for p := range wires[0] {
		if _, ok := wires[1][p]; !ok {
			continue
		}

		dist := abs(p.x) + abs(p.y)
		if min < 0 || dist < min {
			min = dist
		}
	}

	return min
}

func part2(input *string) int {
	wires := parseWires(input)

	min := -1
	for p, steps := range wires[0] {
		steps2, ok := wires[1][p]
		if !ok {
			continue
		}

		if min < 0 || steps+steps2 < min {
			min = steps + steps2
		}
	}

	return min
}

// parseWires traces both wires from the central port and records, for every
// point a wire touches, the number of steps taken to first reach it.
func parseWires(input *string) [2]map[point]int {
	lines := strings.Split(strings.TrimSpace(*input), "\n")
	if len(lines) != 2 {
		panic(fmt.Sprintf("Expected 2 wires, got %d", len(lines)))
	}

	var wires [2]map[point]int
	for id, line := range lines {
		wires[id] = traceWire(strings.TrimSpace(line))
	}

	return wires
}

func traceWire(line string) map[point]int {
	visited := make(map[point]int)

	x, y, steps := 0, 0, 0
	for _, segment := range strings.Split(line, ",") {
		dir := segment[0]
		length, err := strconv.Atoi(segment[1:])
		if err != nil {
			panic(err)
		}

		var dx, dy int
		switch dir {
		case 'U':
			dy = 1
		case 'R':
			dx = 1
		case 'D':
			dy = -1
		case 'L':
			dx = -1
		default:
			panic(fmt.Sprintf("Unknown direction: %c", dir))
		}

		for i := 0; i < length; i++ {
			x += dx
			y += dy
			steps++
			if _, ok := visited[point{x, y}]; !ok {
				visited[point{x, y}] = steps
			}
		}
	}

	return visited
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
