package aoc2019day10

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type point struct {
	x, y int
}

func Run(input string, part int) {
	if part == 0 || part == 1 {
		fmt.Printf("AoC2019, Day10, Part1 solution is: %d\n", part1(&input))
	}
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day10, Part2 solution is: %d\n", part2(&input))
	}
}

func part1(input *string) int {
	asteroids := parseMap(input)
	_, count := bestStation(asteroids)
	return count
}

func part2(input *string) int {
	asteroids := parseMap(input)
	base, _ := bestStation(asteroids)

	order := vaporizeOrder(asteroids, base)
	if len(order) < 200 {
		panic(fmt.Sprintf("Only %d asteroids to vaporize", len(order)))
	}

	target := order[199]
	return target.x*100 + target.y
}

// bestStation finds the asteroid that can see the most other asteroids. Two
// asteroids on the same normalized direction from the station block each
// other, so the visible count is the number of distinct directions.
func bestStation(asteroids []point) (point, int) {
	var best point
	maxCount := 0

	for _, station := range asteroids {
		directions := make(map[point]bool)
		for _, a := range asteroids {
			if a == station {
				continue
			}
			directions[normalize(a.x-station.x, a.y-station.y)] = true
		}

		if len(directions) > maxCount {
			maxCount = len(directions)
			best = station
		}
	}

	return best, maxCount
}

// vaporizeOrder returns every other asteroid in the order the rotating laser
// destroys them: clockwise from straight up, with blocked asteroids surviving
// until a later rotation.
func vaporizeOrder(asteroids []point, base point) []point {
	groups := make(map[point][]point)
	for _, a := range asteroids {
		if a == base {
			continue
		}
		dir := normalize(a.x-base.x, a.y-base.y)
		groups[dir] = append(groups[dir], a)
	}

	directions := make([]point, 0, len(groups))
	for dir, targets := range groups {
		sort.Slice(targets, func(i, j int) bool {
			di := abs(targets[i].x-base.x) + abs(targets[i].y-base.y)
			dj := abs(targets[j].x-base.x) + abs(targets[j].y-base.y)
			return di < dj
		})
		directions = append(directions, dir)
	}
	sort.Slice(directions, func(i, j int) bool {
		return radians(directions[i]) < radians(directions[j])
	})

	var order []point
	for round := 0; ; round++ {
		destroyed := false
		for _, dir := range directions {
			if round < len(groups[dir]) {
				order = append(order, groups[dir][round])
				destroyed = true
			}
		}
		if !destroyed {
			return order
		}
	}
}

// radians maps a direction so that straight up is 0 and angles increase
// clockwise, with no negative values.
func radians(dir point) float64 {
	angle := math.Atan2(float64(dir.x), float64(-dir.y))
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

func normalize(dx, dy int) point {
	g := gcd(abs(dx), abs(dy))
	if g == 0 {
		return point{dx, dy}
	}
	return point{dx / g, dy / g}
}

func gcd(a, b int) int {
	if b == 0 {
		return a
	}
	return gcd(b, a%b)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func parseMap(input *string) []point {
	var asteroids []point
	for y, line := range strings.Split(strings.TrimSpace(*input), "\n") {
		for x, b := range strings.TrimSpace(line) {
			if b == '#' {
				asteroids = append(asteroids, point{x, y})
			}
		}
	}

	return asteroids
}
