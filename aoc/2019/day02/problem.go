package aoc2019day02

import (
	"fmt"
	"strconv"
	"strings"
)

func Run(input string, part int) {
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day2, Part2 solution is: %d\n", part2(&input))
	}
}

func part2(input *string) int {
	program := parseProgram(input)

	for noun := 0; noun <= 99; noun++ {
		for verb := 0; verb <= 99; verb++ {
			if run(program, noun, verb) == 19690720 {
				return 100*noun + verb
			}
		}
	}

	panic("No noun/verb combination produces 19690720")
}

// run executes a copy of the program with the noun and verb patched into
// addresses 1 and 2, and returns the value left at address 0.
func run(program []int, noun, verb int) int {
	memory := make([]int, len(program))
	copy(memory, program)
	memory[1] = noun
	memory[2] = verb

	for i := 0; i < len(memory); i += 4 {
		op := memory[i]
		if op == 99 {
			break
		}

		idx1 := memory[i+1]
		idx2 := memory[i+2]
		ridx := memory[i+3]
		switch op {
		case 1:
			memory[ridx] = memory[idx1] + memory[idx2]
		case 2:
			memory[ridx] = memory[idx1] * memory[idx2]
		default:
			panic(fmt.Sprintf("Bad op: %d", op))
		}
	}

	return memory[0]
}

func parseProgram(input *string) []int {
	fields := strings.Split(strings.TrimSpace(*input), ",")

	program := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			panic(err)
		}
		program[i] = n
	}

	return program
}
