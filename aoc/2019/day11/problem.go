package aoc2019day11

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	positionMode  = 0
	immediateMode = 1
	relativeMode  = 2
)

type direction int

const (
	up direction = iota
	right
	down
	left
)

func (d direction) turn(how int) direction {
	if how == 0 {
		switch d {
		case up:
			return left
		case left:
			return down
		case down:
			return right
		default:
			return up
		}
	}

	switch d {
	case up:
		return right
	case right:
		return down
	case down:
		return left
	default:
		return up
	}
}

func (d direction) move(x, y int) (int, int) {
	switch d {
	case up:
		return x, y - 1
	case right:
		return x + 1, y
	case down:
		return x, y + 1
	default:
		return x - 1, y
	}
}

type panel struct {
	x, y int
}

func Run(input string, part int) {
	if part == 0 || part == 1 {
		fmt.Printf("AoC2019, Day11, Part1 solution is: %d\n", part1(&input))
	}
}

// part1 runs the paint robot over an all-black hull and counts the panels it
// touches: feed the current panel's color in, get a paint color and a turn
// back, repeat until the program halts.
func part1(input *string) int {
	program := newIntcode(input)
	panels := make(map[panel]int)
	facing := up
	x, y := 0, 0

	for {
		color := panels[panel{x, y}]
		panels[panel{x, y}] = color

		outputs, halted := program.run([]int{color})
		if len(outputs) == 2 {
			panels[panel{x, y}] = outputs[0]
			facing = facing.turn(outputs[1])
			x, y = facing.move(x, y)
		}
		if halted {
			break
		}
	}

	return len(panels)
}

type intcode struct {
	code         []int
	ip           int
	relativeBase int
}

func newIntcode(input *string) *intcode {
	fields := strings.Split(strings.TrimSpace(*input), ",")

	code := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			panic(err)
		}
		code[i] = n
	}

	return &intcode{code: code}
}

func (c *intcode) read(i int) int {
	if i >= len(c.code) {
		c.grow(i)
	}
	return c.code[i]
}

func (c *intcode) write(i, v int) {
	if i >= len(c.code) {
		c.grow(i)
	}
	c.code[i] = v
}

func (c *intcode) grow(i int) {
	grown := make([]int, i+1)
	copy(grown, c.code)
	c.code = grown
}

func (c *intcode) operand(sp, mode int) int {
	v := c.code[sp]
	switch mode {
	case positionMode:
		return c.read(v)
	case immediateMode:
		return v
	case relativeMode:
		return c.read(v + c.relativeBase)
	default:
		panic(fmt.Sprintf("%d is not a valid parameter mode.", mode))
	}
}

func (c *intcode) outputOperand(sp, mode int) int {
	v := c.code[sp]
	switch mode {
	case positionMode:
		return v
	case relativeMode:
		return v + c.relativeBase
	default:
		panic(fmt.Sprintf("%d is not a valid parameter mode for output.", mode))
	}
}

// run executes until the program halts or needs more input than it was given.
func (c *intcode) run(inputs []int) ([]int, bool) {
	var outputs []int

	inputp := 0
	for {
		code := c.read(c.ip)
		mode1 := (code / 100) % 10
		mode2 := (code / 1000) % 10
		mode3 := (code / 10000) % 10

		switch code % 100 {
		case 1: // add
			op1, op2 := c.operand(c.ip+1, mode1), c.operand(c.ip+2, mode2)
			c.write(c.outputOperand(c.ip+3, mode3), op1+op2)
			c.ip += 4
		case 2: // multiply
			op1, op2 := c.operand(c.ip+1, mode1), c.operand(c.ip+2, mode2)
			c.write(c.outputOperand(c.ip+3, mode3), op1*op2)
			c.ip += 4
		case 3: // input
			if inputp >= len(inputs) {
				// not enough input; suspend
				return outputs, false
			}
			c.write(c.outputOperand(c.ip+1, mode1), inputs[inputp])
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
				c.write(c.outputOperand(c.ip+3, mode3), 1)
			} else {
				c.write(c.outputOperand(c.ip+3, mode3), 0)
			}
			c.ip += 4
		case 8: // equals
			op1, op2 := c.operand(c.ip+1, mode1), c.operand(c.ip+2, mode2)
			if op1 == op2 {
				c.write(c.outputOperand(c.ip+3, mode3), 1)
			} else {
				c.write(c.outputOperand(c.ip+3, mode3), 0)
			}
			c.ip += 4
		case 9: // adjust relative base
			c.relativeBase += c.operand(c.ip+1, mode1)
			c.ip += 2
		case 99:
			return outputs, true
		default:
			panic(fmt.Sprintf("%d is not a valid opcode.", code))
		}
	}
}
