package aoc2019day21

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

func Run(input string, part int) {
	if part == 0 || part == 1 {
		fmt.Printf("AoC2019, Day21, Part1 solution is: %d\n", part1(&input))
	}
}

// part1 programs the springdroid to jump whenever a hole is coming up within
// the next three tiles and the landing spot four tiles out is solid:
//
//	J = !(A && B && C) && D
//
// The droid reports the hull damage as the one non-ASCII value in the output.
func part1(input *string) int {
	program := newIntcode(input)

	script := springScript(
		"OR A J",
		"AND B J",
		"AND C J",
		"NOT J J",
		"AND D J",
		"WALK",
	)
	outputs, _ := program.run(script)
	return outputs[len(outputs)-1]
}

func springScript(lines ...string) []int {
	var script []int
	for _, line := range lines {
		for _, b := range []byte(line) {
			script = append(script, int(b))
		}
		script = append(script, '\n')
	}
	return script
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
