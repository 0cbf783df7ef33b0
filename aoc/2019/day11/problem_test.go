package aoc2019day11

import "testing"

func TestRelativeBaseMachine(t *testing.T) {
	t.Run("quine", func(t *testing.T) {
		input := "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"
		program := newIntcode(&input)
		outputs, halted := program.run(nil)

		if !halted {
			t.Fatal("program did not halt")
		}
		expected := []int{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}
		if len(outputs) != len(expected) {
			t.Fatalf("outputs = %v; want %v", outputs, expected)
		}
		for i := range expected {
			if outputs[i] != expected[i] {
				t.Fatalf("outputs = %v; want %v", outputs, expected)
			}
		}
	})

	t.Run("sixteen digit number", func(t *testing.T) {
		input := "1102,34915192,34915192,7,4,7,99,0"
		outputs, _ := newIntcode(&input).run(nil)
		if len(outputs) != 1 || outputs[0] != 1219070632396864 {
			t.Errorf("outputs = %v; want [1219070632396864]", outputs)
		}
	})

	t.Run("large immediate", func(t *testing.T) {
		input := "104,1125899906842624,99"
		outputs, _ := newIntcode(&input).run(nil)
		if len(outputs) != 1 || outputs[0] != 1125899906842624 {
			t.Errorf("outputs = %v; want [1125899906842624]", outputs)
		}
	})
}

func TestTurns(t *testing.T) {
	tests := []struct {
		name     string
		start    direction
		how      int
		expected direction
	}{
		{name: "up turns left", start: up, how: 0, expected: left},
		{name: "up turns right", start: up, how: 1, expected: right},
		{name: "left turns down", start: left, how: 0, expected: down},
		{name: "down turns right", start: down, how: 0, expected: right},
		{name: "right turns down", start: right, how: 1, expected: down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.start.turn(tt.how); got != tt.expected {
				t.Errorf("turn(%d) = %v; want %v", tt.how, got, tt.expected)
			}
		})
	}
}

func TestPaintLoop(t *testing.T) {
	// paint white, turn left, then halt: only the starting panel is recorded
	input := "104,1,104,0,99"
	if got := part1(&input); got != 1 {
		t.Errorf("part1() = %d; want 1", got)
	}
}
