package aoc2019day08

import "fmt"

const (
	width  = 25
	height = 6
)

func Run(input string, part int) {
	if part == 0 || part == 1 {
		fmt.Printf("AoC2019, Day8, Part1 solution is: %d\n", part1(&input))
	}
}

// part1 scans the image layer by layer and, for the layer with the fewest
// zero digits, multiplies its count of ones by its count of twos.
func part1(input *string) int {
	fewestZeros := -1
	result := 0

	var counts [3]int
	remaining := width * height
	for _, b := range []byte(*input) {
		if b < '0' || b > '9' {
			continue
		}

		digit := b - '0'
		if digit < 3 {
			counts[digit]++
		}

		remaining--
		if remaining == 0 {
			if fewestZeros < 0 || counts[0] < fewestZeros {
				fewestZeros = counts[0]
				result = counts[1] * counts[2]
			}
			counts = [3]int{}
			remaining = width * height
		}
	}

	return result
}
