package aoc2019day17

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
		fmt.Printf("AoC2019, Day17, Part1 solution is: %d\n", part1(&input))
	}
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day17, Part2 solution is: %d\n", part2(&input))
	}
}

func part1(input *string) int {
	program := newIntcode(input)
	outputs, _ := program.run(nil)
	scaffold := parseScaffold(outputs)
	return alignmentSum(scaffold)
}

// part2 wakes the robot up, plans the full route over the scaffold, squeezes
// it into a main routine and three movement functions, and reports the dust
// count the program emits last.
func part2(input *string) int {
	observer := newIntcode(input)
	program := newIntcode(input)

	outputs, _ := observer.run(nil)
	scaffold := parseScaffold(outputs)
	route := buildRoute(scaffold)
	main, funcs := compress(route)

	lines := []string{
		strings.Join(main, ","),
		strings.Join(funcs[0], ","),
		strings.Join(funcs[1], ","),
		strings.Join(funcs[2], ","),
		"n",
	}
	var inputs []int
	for _, line := range lines {
		for _, b := range []byte(line) {
			inputs = append(inputs, int(b))
		}
		inputs = append(inputs, '\n')
	}

	program.code[0] = 2
	outputs, _ = program.run(inputs)
	return outputs[len(outputs)-1]
}

func alignmentSum(scaffold [][]byte) int {
	total := 0
	for y := 1; y < len(scaffold)-1; y++ {
		row := scaffold[y]
		for x := 1; x < len(row)-1; x++ {
			if row[x] == '#' &&
				row[x-1] == '#' &&
				row[x+1] == '#' &&
				x < len(scaffold[y-1]) && scaffold[y-1][x] == '#' &&
				x < len(scaffold[y+1]) && scaffold[y+1][x] == '#' {
				total += x * y
			}
		}
	}

	return total
}

var headings = map[byte][2]int{
	'^': {0, -1},
	'>': {1, 0},
	'v': {0, 1},
	'<': {-1, 0},
}

// buildRoute walks the scaffold from the robot's starting position: move
// forward as long as possible, otherwise turn toward the scaffold, stopping
// at the dead end.
func buildRoute(scaffold [][]byte) []string {
	x, y, heading := findRobot(scaffold)
	dx, dy := headings[heading][0], headings[heading][1]

	isScaffold := func(x, y int) bool {
		return y >= 0 && y < len(scaffold) && x >= 0 && x < len(scaffold[y]) && scaffold[y][x] == '#'
	}

	var route []string
	moved := 0
	for {
		switch {
		case isScaffold(x+dx, y+dy):
			x += dx
			y += dy
			moved++
		case isScaffold(x+dy, y-dx): // left of heading
			if moved > 0 {
				route = append(route, strconv.Itoa(moved))
				moved = 0
			}
			route = append(route, "L")
			dx, dy = dy, -dx
		case isScaffold(x-dy, y+dx): // right of heading
			if moved > 0 {
				route = append(route, strconv.Itoa(moved))
				moved = 0
			}
			route = append(route, "R")
			dx, dy = -dy, dx
		default:
			// reached the end
			if moved > 0 {
				route = append(route, strconv.Itoa(moved))
			}
			return route
		}
	}
}

// compress splits the route into a main routine of at most ten calls to three
// movement functions of at most twenty characters each.
func compress(route []string) ([]string, [3][]string) {
	var main []string
	var funcs [][]string

	matches := func(pos int, f []string) bool {
		if pos+len(f) > len(route) {
			return false
		}
		for i, token := range f {
			if route[pos+i] != token {
				return false
			}
		}
		return true
	}

	var solve func(pos int) bool
	solve = func(pos int) bool {
		if pos == len(route) {
			return true
		}
		if len(main) >= 10 {
			return false
		}

		for i, f := range funcs {
			if matches(pos, f) {
				main = append(main, string(rune('A'+i)))
				if solve(pos + len(f)) {
					return true
				}
				main = main[:len(main)-1]
			}
		}

		if len(funcs) < 3 {
			for end := pos + 1; end <= len(route); end++ {
				f := route[pos:end]
				if len(strings.Join(f, ",")) > 20 {
					break
				}

				funcs = append(funcs, f)
				main = append(main, string(rune('A'+len(funcs)-1)))
				if solve(end) {
					return true
				}
				funcs = funcs[:len(funcs)-1]
				main = main[:len(main)-1]
			}
		}

		return false
	}

	if !solve(0) {
		panic("Route cannot be compressed into three movement functions")
	}

	var fixed [3][]string
	copy(fixed[:], funcs)
	return main, fixed
}

func findRobot(scaffold [][]byte) (int, int, byte) {
	for y, row := range scaffold {
		for x, c := range row {
			if _, ok := headings[c]; ok {
				return x, y, c
			}
		}
	}

	panic("No robot on the scaffold")
}

func parseScaffold(outputs []int) [][]byte {
	scaffold := [][]byte{{}}
	for _, o := range outputs {
		if o == '\n' {
			scaffold = append(scaffold, []byte{})
		} else {
			scaffold[len(scaffold)-1] = append(scaffold[len(scaffold)-1], byte(o))
		}
	}

	for len(scaffold) > 0 && len(scaffold[len(scaffold)-1]) == 0 {
		scaffold = scaffold[:len(scaffold)-1]
	}

	return scaffold
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
