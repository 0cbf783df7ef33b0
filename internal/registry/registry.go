// Package registry maps day numbers to their solution runners. Every solved
// day registers here; the calendar manifest in configs/days.yaml mirrors this
// table and the two are checked against each other in tests.
package registry

import (
	aoc2019day02 "github.com/bmatcuk/adventofcode2019/aoc/2019/day02"
	aoc2019day03 "github.com/bmatcuk/adventofcode2019/aoc/2019/day03"
	aoc2019day04 "github.com/bmatcuk/adventofcode2019/aoc/2019/day04"
	aoc2019day05 "github.com/bmatcuk/adventofcode2019/aoc/2019/day05"
	aoc2019day06 "github.com/bmatcuk/adventofcode2019/aoc/2019/day06"
	aoc2019day07 "github.com/bmatcuk/adventofcode2019/aoc/2019/day07"
	aoc2019day08 "github.com/bmatcuk/adventofcode2019/aoc/2019/day08"
	aoc2019day10 "github.com/bmatcuk/adventofcode2019/aoc/2019/day10"
	aoc2019day11 "github.com/bmatcuk/adventofcode2019/aoc/2019/day11"
	aoc2019day12 "github.com/bmatcuk/adventofcode2019/aoc/2019/day12"
	aoc2019day14 "github.com/bmatcuk/adventofcode2019/aoc/2019/day14"
	aoc2019day15 "github.com/bmatcuk/adventofcode2019/aoc/2019/day15"
	aoc2019day16 "github.com/bmatcuk/adventofcode2019/aoc/2019/day16"
	aoc2019day17 "github.com/bmatcuk/adventofcode2019/aoc/2019/day17"
	aoc2019day18 "github.com/bmatcuk/adventofcode2019/aoc/2019/day18"
	aoc2019day19 "github.com/bmatcuk/adventofcode2019/aoc/2019/day19"
	aoc2019day20 "github.com/bmatcuk/adventofcode2019/aoc/2019/day20"
	aoc2019day21 "github.com/bmatcuk/adventofcode2019/aoc/2019/day21"
	aoc2019day22 "github.com/bmatcuk/adventofcode2019/aoc/2019/day22"
	aoc2019day23 "github.com/bmatcuk/adventofcode2019/aoc/2019/day23"
	aoc2019day24 "github.com/bmatcuk/adventofcode2019/aoc/2019/day24"
)

type Entry struct {
	Day   int
	Parts []int
	Run   func(input string, part int)
}

var entries = []Entry{
	{Day: 2, Parts: []int{2}, Run: aoc2019day02.Run},
	{Day: 3, Parts: []int{1, 2}, Run: aoc2019day03.Run},
	{Day: 4, Parts: []int{1, 2}, Run: aoc2019day04.Run},
	{Day: 5, Parts: []int{1, 2}, Run: aoc2019day05.Run},
	{Day: 6, Parts: []int{1, 2}, Run: aoc2019day06.Run},
	{Day: 7, Parts: []int{1, 2}, Run: aoc2019day07.Run},
	{Day: 8, Parts: []int{1}, Run: aoc2019day08.Run},
	{Day: 10, Parts: []int{1, 2}, Run: aoc2019day10.Run},
	{Day: 11, Parts: []int{1}, Run: aoc2019day11.Run},
	{Day: 12, Parts: []int{2}, Run: aoc2019day12.Run},
	{Day: 14, Parts: []int{1, 2}, Run: aoc2019day14.Run},
	{Day: 15, Parts: []int{1, 2}, Run: aoc2019day15.Run},
	{Day: 16, Parts: []int{1, 2}, Run: aoc2019day16.Run},
	{Day: 17, Parts: []int{1, 2}, Run: aoc2019day17.Run},
	{Day: 18, Parts: []int{1, 2}, Run: aoc2019day18.Run},
	{Day: 19, Parts: []int{2}, Run: aoc2019day19.Run},
	{Day: 20, Parts: []int{1, 2}, Run: aoc2019day20.Run},
	{Day: 21, Parts: []int{1}, Run: aoc2019day21.Run},
	{Day: 22, Parts: []int{2}, Run: aoc2019day22.Run},
	{Day: 23, Parts: []int{2}, Run: aoc2019day23.Run},
	{Day: 24, Parts: []int{1, 2}, Run: aoc2019day24.Run},
}

// Days returns every registered day in calendar order.
func Days() []Entry {
	return entries
}

func Lookup(day int) (Entry, bool) {
	for _, e := range entries {
		if e.Day == day {
			return e, true
		}
	}
	return Entry{}, false
}

// HasPart reports whether the entry implements the given part number.
func (e Entry) HasPart(part int) bool {
	for _, p := range e.Parts {
		if p == part {
			return true
		}
	}
	return false
}
