package aoc2019day16

import "fmt"

const (
	phases      = 100
	repeatInput = 10_000
)

var basePattern = [4]int{0, 1, 0, -1}

func Run(input string, part int) {
	if part == 0 || part == 1 {
		fmt.Printf("AoC2019, Day16, Part1 solution is: %s\n", part1(&input))
	}
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day16, Part2 solution is: %s\n", part2(&input))
	}
}

func part1(input *string) string {
	digits := parseDigits(input)
	for i := 0; i < phases; i++ {
		digits = fftPhase(digits)
	}

	return digitString(digits[:8])
}

// part2 skips everything before the message offset. The base pattern zeroes
// out every element before position i, and the offset sits in the back half
// of the repeated signal where the pattern degenerates to "sum of the rest".
// Working backward, each element becomes the one's digit of itself plus the
// element after it.
func part2(input *string) string {
	digits := parseDigits(input)

	offset := 0
	for _, d := range digits[:7] {
		offset = offset*10 + d
	}

	length := len(digits)*repeatInput - offset
	if offset < len(digits)*repeatInput/2 {
		panic("Message offset is not in the back half of the signal")
	}

	signal := make([]int, length)
	for i := range signal {
		signal[i] = digits[(offset+i)%len(digits)]
	}

	for p := 0; p < phases; p++ {
		for i := length - 1; i > 0; i-- {
			signal[i-1] = (signal[i-1] + signal[i]) % 10
		}
	}

	return digitString(signal[:8])
}

func fftPhase(digits []int) []int {
	next := make([]int, len(digits))
	for i := range next {
		total := 0
		for j, d := range digits {
			// the base pattern repeats each element i+1 times, shifted
			// left by one
			total += d * basePattern[((j+1)/(i+1))%4]
		}
		if total < 0 {
			total = -total
		}
		next[i] = total % 10
	}

	return next
}

func digitString(digits []int) string {
	out := make([]byte, len(digits))
	for i, d := range digits {
		out[i] = byte(d) + '0'
	}
	return string(out)
}

func parseDigits(input *string) []int {
	var digits []int
	for _, b := range []byte(*input) {
		if b >= '0' && b <= '9' {
			digits = append(digits, int(b-'0'))
		}
	}

	return digits
}
