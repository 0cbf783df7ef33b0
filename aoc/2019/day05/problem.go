package aoc2019day05

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	positionMode  = 0
	immediateMode = 1
)

func Run(input string, part int) {
	if part == 0 || part == 1 {
		fmt.Printf("AoC2019, Day5, Part1 solution is: %d\n", part1(&input))
	}
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day5, Part2 solution is: %d\n", part2(&input))
	}
}

func part1(input *string) int {
	program := newIntcode(input)
	outputs := program.run([]int{1})
	return outputs[len(outputs)-1]
}

func part2(input *string) int {
	program := newIntcode(input)
	outputs := program.run([]int{5})
	return outputs[len(outputs)-1]
}

type intcode struct {
	memory []int
}

func newIntcode(input *string) *intcode {
	fields := strings.Split(strings.TrimSpace(*input), ",")

	memory := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			panic(err)
		}
		memory[i] = n
	}

	return &intcode{memory}
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

// run executes the program until it halts, feeding values from inputs to
// every input instruction and collecting everything the program outputs.
func (c *intcode) run(inputs []int) []int {
	var outputs []int

	inputp := 0
	for ip := 0; ; {
		code := c.memory[ip]
		mode1 := (code / 100) % 10
		mode2 := (code / 1000) % 10

		switch code % 100 {
		case 1: // add
			op1, op2 := c.operand(ip+1, mode1), c.operand(ip+2, mode2)
			c.memory[c.memory[ip+3]] = op1 + op2
			ip += 4
		case 2: // multiply
			op1, op2 := c.operand(ip+1, mode1), c.operand(ip+2, mode2)
			c.memory[c.memory[ip+3]] = op1 * op2
			ip += 4
		case 3: // input
			c.memory[c.memory[ip+1]] = inputs[inputp]
			inputp++
			ip += 2
		case 4: // output
			outputs = append(outputs, c.operand(ip+1, mode1))
			ip += 2
		case 5: // jump-if-true
			if c.operand(ip+1, mode1) != 0 {
				ip = c.operand(ip+2, mode2)
			} else {
				ip += 3
			}
		case 6: // jump-if-false
			if c.operand(ip+1, mode1) == 0 {
				ip = c.operand(ip+2, mode2)
			} else {
				ip += 3
			}
		case 7: // less than
			op1, op2 := c.operand(ip+1, mode1), c.operand(ip+2, mode2)
			if op1 < op2 {
				c.memory[c.memory[ip+3]] = 1
			} else {
				c.memory[c.memory[ip+3]] = 0
			}
			ip += 4
		case 8: // equals
			op1, op2 := c.operand(ip+1, mode1), c.operand(ip+2, mode2)
			if op1 == op2 {
				c.memory[c.memory[ip+3]] = 1
			} else {
				c.memory[c.memory[ip+3]] = 0
			}
			ip += 4
		case 99:
			return outputs
		default:
			panic(fmt.Sprintf("%d is not a valid opcode.", code))
		}
	}
}
