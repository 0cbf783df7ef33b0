package aoc2019day19

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

const shipSize = 100

func Run(input string, part int) {
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day19, Part2 solution is: %d\n", part2(&input))
	}
}

// part2 finds the closest 100x100 square that fits inside the tractor beam.
// The rightmost beam cell on each row sits at (2y, y), and because of the
// beam's shape the whole square fits as soon as its bottom-left corner
// (2y-99, y+99) is inside the beam. That predicate is monotone in y, so
// binary search finds the first row where the square fits.
func part2(input *string) int {
	program := newIntcode(input)

	min, max := 100, 10000
	for min < max {
		y := (min + max) / 2
		if checkPosition(program, y) {
			max = y
		} else {
			min = y + 1
		}
	}

	y := max
	x := 2*y - (shipSize - 1)
	return x*10000 + y
}

func checkPosition(program *intcode, y int) bool {
	drone := program.clone()
	outputs, _ := drone.run([]int{2*y - (shipSize - 1), y + (shipSize - 1)})
	return outputs[0] == 1
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

func (c *intcode) clone() *intcode {
	code := make([]int, len(c.code))
	copy(code, c.code)
	return &intcode{code: code, ip: c.ip, relativeBase: c.relativeBase}
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
