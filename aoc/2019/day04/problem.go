package aoc2019day04

import (
	"fmt"
	"strconv"
	"strings"
)

func Run(input string, part int) {
	if part == 0 || part == 1 {
		fmt.Printf("AoC2019, Day4, Part1 solution is: %d\n", part1(&input))
	}
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day4, Part2 solution is: %d\n", part2(&input))
	}
}

func part1(input *string) int {
	min, max := parseRange(input)
	return countPasswords(min, max, nextWithDouble)
}

func part2(input *string) int {
	min, max := parseRange(input)
	return countPasswords(min, max, nextWithExactDouble)
}

// countPasswords walks candidates above min by snapping each number up to the
// nearest value with non-decreasing digits, skipping whole invalid ranges at
// once instead of testing every number.
func countPasswords(min, max int, next func(int) (int, bool)) int {
	count := 0
	for current := min; ; {
		candidate, valid := next(current + 1)
		current = candidate

		if current > max {
			return count
		}
		if valid {
			count++
		}
	}
}

// nextWithDouble returns the smallest number >= num whose digits never
// decrease, and whether that number contains at least one repeated digit.
func nextWithDouble(num int) (int, bool) {
	result, prev := 0, 0
	hasDouble := false

	for _, d := range digits(num) {
		if prev < d {
			prev = d
		} else {
			hasDouble = true
		}
		result = result*10 + prev
	}

	return result, hasDouble
}

// nextWithExactDouble is the stricter part 2 rule: the repeated digit must
// form a group of exactly two.
func nextWithExactDouble(num int) (int, bool) {
	result, prev, runLength := 0, 0, 0
	hasDouble := false

	for _, d := range digits(num) {
		if prev < d {
			if runLength == 2 {
				hasDouble = true
			}
			prev, runLength = d, 1
		} else {
			runLength++
		}
		result = result*10 + prev
	}

	if runLength == 2 {
		hasDouble = true
	}

	return result, hasDouble
}

func digits(num int) [6]int {
	var ds [6]int
	position := 100_000
	for i := 0; i < 6; i++ {
		ds[i] = num / position
		num %= position
		position /= 10
	}

	return ds
}

func parseRange(input *string) (int, int) {
	parts := strings.SplitN(strings.TrimSpace(*input), "-", 2)
	if len(parts) != 2 {
		panic("Expected password range in the form min-max")
	}

	min, err := strconv.Atoi(parts[0])
	if err != nil {
		panic(err)
	}
	max, err := strconv.Atoi(parts[1])
	if err != nil {
		panic(err)
	}

	return min, max
}
