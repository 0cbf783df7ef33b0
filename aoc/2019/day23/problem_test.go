package aoc2019day23

import "testing"

func TestPart2NATDelivery(t *testing.T) {
	// every computer reads its address, sends it to the NAT as a packet's Y
	// value, and halts; the last writer wins, the network goes idle, and the
	// NAT keeps redelivering Y=49
	input := "3,100,104,255,104,0,4,100,99"

	if got := part2(&input); got != 49 {
		t.Errorf("part2() = %d; want 49", got)
	}
}

func TestRunSuspendsOnMissingInput(t *testing.T) {
	input := "3,11,3,12,1,11,12,13,4,13,99,0,0,0"
	program := newIntcode(&input)

	outputs, halted := program.run([]int{7})
	if halted || len(outputs) != 0 {
		t.Fatalf("run() = %v, halted=%t; want suspension with no output", outputs, halted)
	}

	outputs, halted = program.run([]int{35})
	if !halted || len(outputs) != 1 || outputs[0] != 42 {
		t.Errorf("resumed run() = %v, halted=%t; want [42], true", outputs, halted)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	input := "3,3,99,0"
	program := newIntcode(&input)

	clone := program.clone()
	clone.run([]int{42})

	if program.code[3] != 0 {
		t.Errorf("running a clone modified the original program: %v", program.code)
	}
}
