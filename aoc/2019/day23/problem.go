package aoc2019day23

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	positionMode  = 0
	immediateMode = 1
	relativeMode  = 2
)

const numComputers = 50

func Run(input string, part int) {
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day23, Part2 solution is: %d\n", part2(&input))
	}
}

// part2 boots fifty copies of the NIC program and shuttles packets between
// their queues. Packets to address 255 go to the NAT, which holds only the
// last one. A computer asked for input with an empty queue gets -1; once
// every computer has been starved for two rounds the network is idle and the
// NAT releases its packet to computer 0. The answer is the first Y the NAT
// delivers twice in a row.
func part2(input *string) int {
	program := newIntcode(input)

	computers := make([]*intcode, numComputers)
	queues := make([][]int, numComputers)
	for i := range computers {
		computers[i] = program.clone()
		queues[i] = []int{i}
	}

	natx, naty := 0, math.MinInt
	prevNaty := 0
	var idle [numComputers]int
	for {
		for i, computer := range computers {
			if len(queues[i]) == 0 {
				if idle[i] >= 2 {
					continue
				}
				queues[i] = append(queues[i], -1)
			}

			outputs, _ := computer.run(queues[i])
			for j := 0; j+2 < len(outputs); j += 3 {
				switch addr := outputs[j]; {
				case addr >= 0 && addr < numComputers:
					queues[addr] = append(queues[addr], outputs[j+1], outputs[j+2])
				case addr == 255:
					natx, naty = outputs[j+1], outputs[j+2]
				}
			}

			if queues[i][0] == -1 {
				idle[i]++
			} else {
				idle[i] = 0
			}
			queues[i] = queues[i][:0]
		}

		allIdle := true
		for _, rounds := range idle {
			if rounds < 2 {
				allIdle = false
				break
			}
		}
		if allIdle {
			if naty == prevNaty {
				return naty
			}
			queues[0] = append(queues[0], natx, naty)
			prevNaty = naty
		}
	}
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
