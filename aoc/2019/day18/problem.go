package aoc2019day18

import (
	"fmt"
	"math"
	"strings"
)

var directions = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

func Run(input string, part int) {
	if part == 0 || part == 1 {
		fmt.Printf("AoC2019, Day18, Part1 solution is: %d\n", part1(&input))
	}
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day18, Part2 solution is: %d\n", part2(&input))
	}
}

func part1(input *string) int {
	return solve(parseGrid(input))
}

// part2 replaces the single entrance with four walled-off entrances, one per
// quadrant. A robot may have to wait at a door until another robot collects
// the key, so the robots are searched jointly rather than section by section.
func part2(input *string) int {
	grid := parseGrid(input)

	var entrances [][2]int
	for y, row := range grid {
		for x, c := range row {
			if c == '@' {
				entrances = append(entrances, [2]int{x, y})
			}
		}
	}

	if len(entrances) == 1 {
		x, y := entrances[0][0], entrances[0][1]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 || dy == 0 {
					grid[y+dy][x+dx] = '#'
				} else {
					grid[y+dy][x+dx] = '@'
				}
			}
		}
	}

	return solve(grid)
}

type edge struct {
	distance int
	required uint32
}

// solve finds the fewest steps in which the robots, moving one at a time,
// collect every key. Entrances get the labels '1' through '4' so each robot
// has its own node in the key graph.
func solve(grid [][]byte) int {
	allKeys := uint32(0)
	keyAt := map[byte][2]int{}
	var entrances [][2]int
	for y, row := range grid {
		for x, c := range row {
			switch {
			case c == '@':
				entrances = append(entrances, [2]int{x, y})
			case isKey(c):
				allKeys |= keyBit(c)
				keyAt[c] = [2]int{x, y}
			}
		}
	}

	graph := map[byte]map[byte]edge{}
	var robots [4]byte
	for i, entrance := range entrances {
		label := byte('1') + byte(i)
		robots[i] = label
		graph[label] = findKeys(grid, entrance, '@')
	}
	for key, pos := range keyAt {
		graph[key] = findKeys(grid, pos, key)
	}

	return shortestPath(graph, robots, allKeys)
}

// findKeys walks outward from one key (or entrance) and records, for every
// other reachable key, the distance and the doors passed on the way. The
// tunnels have a single route between any two keys, so the first visit is
// taken as the distance.
func findKeys(grid [][]byte, start [2]int, from byte) map[byte]edge {
	type state struct {
		x, y, distance int
		required       uint32
	}

	keys := map[byte]edge{}
	visited := make([][]bool, len(grid))
	for y := range visited {
		visited[y] = make([]bool, len(grid[y]))
	}
	visited[start[1]][start[0]] = true

	queue := []state{{start[0], start[1], 0, 0}}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		c := grid[s.y][s.x]
		switch {
		case c != from && isKey(c):
			// a key locked behind its own door is unreachable
			if s.required&keyBit(c) == 0 {
				keys[c] = edge{distance: s.distance, required: s.required}
			}
		case isDoor(c):
			s.required |= keyBit(c - 'A' + 'a')
		}

		for _, d := range directions {
			x, y := s.x+d[0], s.y+d[1]
			if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) &&
				grid[y][x] != '#' && !visited[y][x] {
				visited[y][x] = true
				queue = append(queue, state{x, y, s.distance + 1, s.required})
			}
		}
	}

	return keys
}

// shortestPath finds the fewest steps that collect every key in allKeys,
// memoized on the robot positions and the set of collected keys. Unused robot
// slots stay zero and are skipped.
func shortestPath(graph map[byte]map[byte]edge, robots [4]byte, allKeys uint32) int {
	type memoKey struct {
		robots    [4]byte
		collected uint32
	}
	memo := map[memoKey]int{}

	var dfs func(robots [4]byte, collected uint32) int
	dfs = func(robots [4]byte, collected uint32) int {
		if collected == allKeys {
			return 0
		}

		mk := memoKey{robots, collected}
		if distance, ok := memo[mk]; ok {
			return distance
		}

		shortest := math.MaxInt
		for i, current := range robots {
			if current == 0 {
				continue
			}
			for key, e := range graph[current] {
				if collected&keyBit(key) != 0 || e.required&^collected != 0 {
					continue
				}

				next := robots
				next[i] = key
				// a branch may be a dead end that cannot finish the maze
				if distance := dfs(next, collected|keyBit(key)); distance != math.MaxInt && distance+e.distance < shortest {
					shortest = distance + e.distance
				}
			}
		}

		memo[mk] = shortest
		return shortest
	}

	return dfs(robots, 0)
}

func isKey(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isDoor(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func keyBit(c byte) uint32 {
	if !isKey(c) {
		return 0
	}
	return 1 << (c - 'a')
}

func parseGrid(input *string) [][]byte {
	lines := strings.Split(strings.TrimRight(*input, "\n"), "\n")
	grid := make([][]byte, len(lines))
	for i, line := range lines {
		grid[i] = []byte(line)
	}
	return grid
}
