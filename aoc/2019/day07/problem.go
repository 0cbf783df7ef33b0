package aoc2019day07

import (
	"fmt"
	"strconv"
	"strings"
)

const amplifiers = 5

const (
	positionMode  = 0
	immediateMode = 1
)

func Run(input string, part int) {
	if part == 0 || part == 1 {
		fmt.Printf("AoC2019, Day7, Part1 solution is: %d\n", part1(&input))
	}
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day7, Part2 solution is: %d\n", part2(&input))
	}
}

func part1(input *string) int {
	program := parseProgram(input)

	best := 0
	for _, phases := range permutations([]int{0, 1, 2, 3, 4}) {
		signal := 0
		for i := 0; i < amplifiers; i++ {
			amp := newIntcode(program)
			outputs, _ := amp.run([]int{phases[i], signal})
			signal = outputs[0]
		}

		if signal > best {
			best = signal
		}
	}

	return best
}

func part2(input *string) int {
	program := parseProgram(input)

	best := 0
	for _, phases := range permutations([]int{5, 6, 7, 8, 9}) {
		amps := make([]*intcode, amplifiers)
		for i := range amps {
			amps[i] = newIntcode(program)
			// prime with the phase setting; the amp suspends at its
			// second input instruction
			amps[i].run([]int{phases[i]})
		}

		finalOutput := make([]int, amplifiers)
		halted := make([]bool, amplifiers)
		numHalted := 0
		signal := 0

		for numHalted < amplifiers {
			for i := range amps {
				if halted[i] {
					signal = finalOutput[i]
					continue
				}

				outputs, done := amps[i].run([]int{signal})
				finalOutput[i] = outputs[0]
				if done {
					halted[i] = true
					numHalted++
				}
				signal = outputs[0]
			}
		}

		if finalOutput[amplifiers-1] > best {
			best = finalOutput[amplifiers-1]
		}
	}

	return best
}

func permutations(values []int) [][]int {
	var result [][]int

	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			perm := make([]int, len(values))
			copy(perm, values)
			result = append(result, perm)
			return
		}

		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				values[i], values[k-1] = values[k-1], values[i]
			} else {
				values[0], values[k-1] = values[k-1], values[0]
			}
		}
	}
	generate(len(values))

	return result
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

// intcode is a resumable machine: run suspends when it needs more input and
// picks up from the same instruction on the next call.
type intcode struct {
	memory []int
	ip     int
}

func newIntcode(program []int) *intcode {
	memory := make([]int, len(program))
	copy(memory, program)
	return &intcode{memory: memory}
}

func (c *intcode) operand(sp, mode int) int {
	v := c.memory[sp]
	switch mode {
	case positionMode:
		return c.memory[v]
	case immediateMode:
		return v
	default:
		panic(fmt.Sprintf("%d is not a valid parameter mode.", mode))
	}
}

func (c *intcode) run(inputs []int) ([]int, bool) {
	var outputs []int

	inputp := 0
	for {
		code := c.memory[c.ip]
		mode1 := (code / 100) % 10
		mode2 := (code / 1000) % 10

		switch code % 100 {
		case 1: // add
			op1, op2 := c.operand(c.ip+1, mode1), c.operand(c.ip+2, mode2)
			c.memory[c.memory[c.ip+3]] = op1 + op2
			c.ip += 4
		case 2: // multiply
			op1, op2 := c.operand(c.ip+1, mode1), c.operand(c.ip+2, mode2)
			c.memory[c.memory[c.ip+3]] = op1 * op2
			c.ip += 4
		case 3: // input
			if inputp >= len(inputs) {
				// not enough input; suspend
				return outputs, false
			}
			c.memory[c.memory[c.ip+1]] = inputs[inputp]
			inputp++
			c.ip += 2
		case 4: // output
			outputs = append(outputs, c.operand(c.ip+1, mode1))
			c.ip += 2
		case 5: // jump-if-true
			if c.operand(c.ip+1, mode1) != 0 {
				c.ip = c.operand(c.ip+2, mode2)
			} else {
				c.ip += 3
			}
		case 6: // jump-if-false
			if c.operand(c.ip+1, mode1) == 0 {
				c.ip = c.operand(c.ip+2, mode2)
			} else {
				c.ip += 3
			}
		case 7: // less than
			op1, op2 := c.operand(c.ip+1, mode1), c.operand(c.ip+2, mode2)
			if op1 < op2 {
				c.memory[c.memory[c.ip+3]] = 1
			} else {
				c.memory[c.memory[c.ip+3]] = 0
			}
			c.ip += 4
		case 8: // equals
			op1, op2 := c.operand(c.ip+1, mode1), c.operand(c.ip+2, mode2)
			if op1 == op2 {
				c.memory[c.memory[c.ip+3]] = 1
			} else {
				c.memory[c.memory[c.ip+3]] = 0
			}
			c.ip += 4
		case 99:
			return outputs, true
		default:
			panic(fmt.Sprintf("%d is not a valid opcode.", code))
		}
	}
}
