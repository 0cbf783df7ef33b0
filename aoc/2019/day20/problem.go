package aoc2019day20

import (
	"fmt"
	"math"
	"strings"
)

var directions = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

func Run(input string, part int) {
	if part == 0 || part == 1 {
		fmt.Printf("AoC2019, Day20, Part1 solution is: %d\n", part1(&input))
	}
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day20, Part2 solution is: %d\n", part2(&input))
	}
}

func part1(input *string) int {
	grid := parseGrid(input)
	connections := findConnections(grid, findLabels(grid))
	return shortestWalk(connections)
}

func part2(input *string) int {
	grid := parseGrid(input)
	connections := findConnections(grid, findLabels(grid))
	return recursiveWalk(connections)
}

type point struct {
	x, y int
}

type entrance struct {
	pos   point
	inner bool
}

// findLabels locates every two-letter label and the open tile it marks.
// Labels read top-to-bottom or left-to-right, and the scan order means a
// label is always seen at its first letter. A label two tiles from the edge
// of the grid sits on the outer wall of the donut, anything else is on the
// hole in the middle.
func findLabels(grid [][]byte) map[string][]entrance {
	labels := map[string][]entrance{}
	width, height := len(grid[0]), len(grid)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !isLetter(grid[y][x]) {
				continue
			}

			if y+1 < height && isLetter(grid[y+1][x]) {
				label := string([]byte{grid[y][x], grid[y+1][x]})
				if y > 0 && grid[y-1][x] == '.' {
					labels[label] = append(labels[label], entrance{point{x, y - 1}, y < height-3})
				} else {
					labels[label] = append(labels[label], entrance{point{x, y + 2}, y > 2})
				}
			} else if x+1 < width && isLetter(grid[y][x+1]) {
				label := string([]byte{grid[y][x], grid[y][x+1]})
				if x > 0 && grid[y][x-1] == '.' {
					labels[label] = append(labels[label], entrance{point{x - 1, y}, x < width-3})
				} else {
					labels[label] = append(labels[label], entrance{point{x + 2, y}, x > 2})
				}
			}
		}
	}

	return labels
}

type connKey struct {
	label     string
	fromInner bool
}

type connEdge struct {
	distance int
	inner    bool
}

// findConnections walks outward from each portal entrance and records the
// distance to every other label it can reach. Edge distances include the
// extra step of walking into the destination portal, except for ZZ which is
// an exit rather than a portal.
func findConnections(grid [][]byte, labels map[string][]entrance) map[string]map[connKey]connEdge {
	width, height := len(grid[0]), len(grid)

	entranceAt := map[point]connKey{}
	for label, entrances := range labels {
		for _, e := range entrances {
			entranceAt[e.pos] = connKey{label, e.inner}
		}
	}

	connections := map[string]map[connKey]connEdge{}
	for label, entrances := range labels {
		edges := map[connKey]connEdge{}
		visited := make([][]bool, height)
		for y := range visited {
			visited[y] = make([]bool, width)
		}

		for _, from := range entrances {
			type state struct {
				pos      point
				distance int
			}

			if visited[from.pos.y][from.pos.x] {
				continue
			}
			visited[from.pos.y][from.pos.x] = true

			queue := []state{{from.pos, 0}}
			for len(queue) > 0 {
				s := queue[0]
				queue = queue[1:]

				if at, ok := entranceAt[s.pos]; ok && at.label != label {
					distance := s.distance + 1
					if at.label == "ZZ" {
						distance = s.distance
					}

					key := connKey{at.label, from.inner}
					if _, ok := edges[key]; ok {
						panic(fmt.Sprintf("Label %s can reach both portals for %s", label, at.label))
					}
					edges[key] = connEdge{distance: distance, inner: at.fromInner}
				}

				for _, d := range directions {
					x, y := s.pos.x+d[0], s.pos.y+d[1]
					if x >= 0 && x < width && y >= 0 && y < height &&
						grid[y][x] == '.' && !visited[y][x] {
						visited[y][x] = true
						queue = append(queue, state{point{x, y}, s.distance + 1})
					}
				}
			}
		}

		connections[label] = edges
	}

	return connections
}

// shortestWalk runs Dijkstra's algorithm over the portal graph, treating both
// ends of every portal as the same node.
func shortestWalk(connections map[string]map[connKey]connEdge) int {
	distances := map[string]int{}
	unvisited := map[string]bool{}
	for label := range connections {
		distances[label] = math.MaxInt
		unvisited[label] = true
	}
	distances["AA"] = 0

	for {
		current, best := "", math.MaxInt
		for label := range unvisited {
			if distances[label] < best {
				current, best = label, distances[label]
			}
		}
		if current == "" {
			return math.MaxInt
		}
		if current == "ZZ" {
			return best
		}

		for key, e := range connections[current] {
			if unvisited[key.label] && best+e.distance < distances[key.label] {
				distances[key.label] = best + e.distance
			}
		}
		delete(unvisited, current)
	}
}

// recursiveWalk searches the maze where inner portals descend a level and
// outer portals climb back up. Dijkstra's doesn't apply here: the quickest
// route to the portal before ZZ may strand us below level 0, and climbing
// back out means revisiting portals, so this is a breadth-first search over
// (portal, level) states with a depth cutoff.
func recursiveWalk(connections map[string]map[connKey]connEdge) int {
	type state struct {
		label     string
		fromInner bool
		distance  int
		level     int
	}

	shortest := math.MaxInt
	queue := []state{{"AA", false, 0, 0}}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		if s.level == 50 || s.distance > shortest {
			// we've probably gone too far; bail
			continue
		}

		for key, e := range connections[s.label] {
			if key.fromInner != s.fromInner || key.label == "AA" {
				continue
			}

			if key.label == "ZZ" {
				if s.level == 0 && s.distance+e.distance < shortest {
					shortest = s.distance + e.distance
				}
				continue
			}

			level := s.level
			if e.inner {
				level++
			} else if level > 0 {
				level--
			} else {
				// outer portals are walls at the outermost level
				continue
			}

			queue = append(queue, state{key.label, !e.inner, s.distance + e.distance, level})
		}
	}

	return shortest
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func parseGrid(input *string) [][]byte {
	lines := strings.Split(strings.TrimRight(*input, "\n"), "\n")

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	grid := make([][]byte, len(lines))
	for i, line := range lines {
		row := make([]byte, width)
		copy(row, line)
		for j := len(line); j < width; j++ {
			row[j] = ' '
		}
		grid[i] = row
	}

	return grid
}
