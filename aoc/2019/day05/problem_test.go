package aoc2019day05

import "testing"

func TestComparisons(t *testing.T) {
	tests := []struct {
		name     string
		program  string
		input    int
		expected int
	}{
		{name: "equal to 8, position mode, true", program: "3,9,8,9,10,9,4,9,99,-1,8", input: 8, expected: 1},
		{name: "equal to 8, position mode, false", program: "3,9,8,9,10,9,4,9,99,-1,8", input: 7, expected: 0},
		{name: "less than 8, position mode, true", program: "3,9,7,9,10,9,4,9,99,-1,8", input: 7, expected: 1},
		{name: "less than 8, position mode, false", program: "3,9,7,9,10,9,4,9,99,-1,8", input: 9, expected: 0},
		{name: "equal to 8, immediate mode, true", program: "3,3,1108,-1,8,3,4,3,99", input: 8, expected: 1},
		{name: "less than 8, immediate mode, false", program: "3,3,1107,-1,8,3,4,3,99", input: 8, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := newIntcode(&tt.program)
			outputs := program.run([]int{tt.input})
			if len(outputs) != 1 || outputs[0] != tt.expected {
				t.Errorf("run(%d) outputs = %v; want [%d]", tt.input, outputs, tt.expected)
			}
		})
	}
}

func TestJumps(t *testing.T) {
	tests := []struct {
		name     string
		program  string
		input    int
		expected int
	}{
		{name: "jump position mode, zero", program: "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", input: 0, expected: 0},
		{name: "jump position mode, nonzero", program: "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", input: 42, expected: 1},
		{name: "jump immediate mode, zero", program: "3,3,1105,-1,9,1101,0,0,12,4,12,99,1", input: 0, expected: 0},
		{name: "jump immediate mode, nonzero", program: "3,3,1105,-1,9,1101,0,0,12,4,12,99,1", input: 7, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := newIntcode(&tt.program)
			outputs := program.run([]int{tt.input})
			if len(outputs) != 1 || outputs[0] != tt.expected {
				t.Errorf("run(%d) outputs = %v; want [%d]", tt.input, outputs, tt.expected)
			}
		})
	}
}

func TestLargerExample(t *testing.T) {
	program := "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31," +
		"1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104," +
		"999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99"

	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{name: "below 8", input: 7, expected: 999},
		{name: "equal to 8", input: 8, expected: 1000},
		{name: "above 8", input: 9, expected: 1001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := program
			outputs := newIntcode(&p).run([]int{tt.input})
			if len(outputs) != 1 || outputs[0] != tt.expected {
				t.Errorf("run(%d) outputs = %v; want [%d]", tt.input, outputs, tt.expected)
			}
		})
	}
}

func TestEcho(t *testing.T) {
	program := "3,0,4,0,99"
	outputs := newIntcode(&program).run([]int{77})
	if len(outputs) != 1 || outputs[0] != 77 {
		t.Errorf("echo outputs = %v; want [77]", outputs)
	}
}
