package aoc2019day24

import (
	"fmt"
	"strings"
)

const (
	size   = 5
	middle = size / 2
)

type board [size][size]bool

func Run(input string, part int) {
	if part == 0 || part == 1 {
		fmt.Printf("AoC2019, Day24, Part1 solution is: %d\n", part1(&input))
	}
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day24, Part2 solution is: %d\n", part2(&input))
	}
}

func part1(input *string) int {
	b := parseBoard(input)

	seen := map[board]bool{}
	for !seen[b] {
		seen[b] = true
		b = step(b)
	}

	return b.biodiversity()
}

func part2(input *string) int {
	return totalBugs(parseBoard(input), 200)
}

// step advances a flat board one minute: a bug with exactly one neighboring
// bug survives, and an empty tile with one or two neighboring bugs is
// infested.
func step(b board) board {
	var next board
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			bugs := 0
			for _, d := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
				nx, ny := x+d[0], y+d[1]
				if nx >= 0 && nx < size && ny >= 0 && ny < size && b[ny][nx] {
					bugs++
				}
			}

			if b[y][x] {
				next[y][x] = bugs == 1
			} else {
				next[y][x] = bugs == 1 || bugs == 2
			}
		}
	}

	return next
}

// totalBugs runs the recursive-grid rules for the given number of minutes and
// counts every bug across all levels. The infestation spreads at most one
// level inward and one outward per minute, so 2*minutes+3 levels leave an
// empty board on each end for the final minute's neighbor counts.
func totalBugs(start board, minutes int) int {
	levels := make([]board, 2*minutes+3)
	next := make([]board, len(levels))
	levels[minutes+1] = start

	for minute := 0; minute < minutes; minute++ {
		for level := 1; level < len(levels)-1; level++ {
			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					if x == middle && y == middle {
						// the middle tile holds the next level down
						next[level][y][x] = false
						continue
					}

					bugs := recursiveNeighbors(levels, level, x, y)
					if levels[level][y][x] {
						next[level][y][x] = bugs == 1
					} else {
						next[level][y][x] = bugs == 1 || bugs == 2
					}
				}
			}
		}
		levels, next = next, levels
	}

	total := 0
	for _, b := range levels {
		total += b.bugs()
	}

	return total
}

// recursiveNeighbors counts the bugs around a tile, where the board's outer
// edges border the four tiles around the middle of the enclosing level and
// the middle tile borders an entire edge of the contained level.
func recursiveNeighbors(levels []board, level, x, y int) int {
	outer := levels[level-1]
	inner := levels[level+1]

	bugs := 0
	for _, d := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		nx, ny := x+d[0], y+d[1]
		switch {
		case ny < 0:
			if outer[middle-1][middle] {
				bugs++
			}
		case ny >= size:
			if outer[middle+1][middle] {
				bugs++
			}
		case nx < 0:
			if outer[middle][middle-1] {
				bugs++
			}
		case nx >= size:
			if outer[middle][middle+1] {
				bugs++
			}
		case nx == middle && ny == middle:
			for i := 0; i < size; i++ {
				switch {
				case x < middle:
					if inner[i][0] {
						bugs++
					}
				case x > middle:
					if inner[i][size-1] {
						bugs++
					}
				case y < middle:
					if inner[0][i] {
						bugs++
					}
				default:
					if inner[size-1][i] {
						bugs++
					}
				}
			}
		default:
			if levels[level][ny][nx] {
				bugs++
			}
		}
	}

	return bugs
}

func (b board) biodiversity() int {
	rating, points := 0, 1
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if b[y][x] {
				rating += points
			}
			points <<= 1
		}
	}

	return rating
}

func (b board) bugs() int {
	count := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if b[y][x] {
				count++
			}
		}
	}

	return count
}

func parseBoard(input *string) board {
	var b board
	for y, line := range strings.Split(strings.TrimSpace(*input), "\n") {
		for x, c := range strings.TrimSpace(line) {
			if c == '#' {
				b[y][x] = true
			}
		}
	}

	return b
}
