package aoc2019day15

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

const (
	north = 1
	south = 2
	west  = 3
	east  = 4
)

const (
	statusWall   = 0
	statusMoved  = 1
	statusOxygen = 2
)

type point struct {
	x, y int
}

func (p point) move(direction int) point {
	switch direction {
	case north:
		return point{p.x, p.y - 1}
	case south:
		return point{p.x, p.y + 1}
	case west:
		return point{p.x - 1, p.y}
	default:
		return point{p.x + 1, p.y}
	}
}

func backtrack(direction int) int {
	switch direction {
	case north:
		return south
	case south:
		return north
	case west:
		return east
	default:
		return west
	}
}

func Run(input string, part int) {
	if part == 0 || part == 1 {
		fmt.Printf("AoC2019, Day15, Part1 solution is: %d\n", part1(&input))
	}
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day15, Part2 solution is: %d\n", part2(&input))
	}
}

func part1(input *string) int {
	program := newIntcode(input)
	open, oxygen := explore(program)
	return shortestPath(open, point{0, 0}, oxygen)
}

// part2 floods the explored section with oxygen: the answer is the BFS depth
// of the farthest open cell from the oxygen system.
func part2(input *string) int {
	program := newIntcode(input)
	open, oxygen := explore(program)

	minutes := 0
	for _, d := range distances(open, oxygen) {
		if d > minutes {
			minutes = d
		}
	}

	return minutes
}

// explore walks the droid through every reachable cell depth-first, stepping
// back after each branch so the machine's position always matches ours.
func explore(program *intcode) (map[point]bool, point) {
	open := map[point]bool{{0, 0}: true}
	visited := map[point]bool{{0, 0}: true}
	var oxygen point

	var visit func(pos point)
	visit = func(pos point) {
		for direction := north; direction <= east; direction++ {
			next := pos.move(direction)
			if visited[next] {
				continue
			}
			visited[next] = true

			outputs, halted := program.run([]int{direction})
			if halted || len(outputs) == 0 {
				panic("Droid program stopped responding")
			}

			switch outputs[len(outputs)-1] {
			case statusWall:
				continue
			case statusOxygen:
				oxygen = next
			}

			open[next] = true
			visit(next)
			program.run([]int{backtrack(direction)})
		}
	}
	visit(point{0, 0})

	return open, oxygen
}

func shortestPath(open map[point]bool, from, to point) int {
	d, ok := distances(open, from)[to]
	if !ok {
		panic("No path to the oxygen system")
	}
	return d
}

func distances(open map[point]bool, from point) map[point]int {
	dist := map[point]int{from: 0}
	queue := []point{from}

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		for direction := north; direction <= east; direction++ {
			next := pos.move(direction)
			if !open[next] {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[pos] + 1
			queue = append(queue, next)
		}
	}

	return dist
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
