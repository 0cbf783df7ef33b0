package aoc2019day17

import (
	"strings"
	"testing"
)

func parseCamera(view string) [][]byte {
	var outputs []int
	for _, b := range []byte(view) {
		outputs = append(outputs, int(b))
	}
	return parseScaffold(outputs)
}

func TestAlignmentSum(t *testing.T) {
	view := strings.Join([]string{
		"..#..........",
		"..#..........",
		"#######...###",
		"#.#...#...#.#",
		"#############",
		"..#...#...#..",
		"..#####...^..",
	}, "\n")

	got := alignmentSum(parseCamera(view))
	want := 76
	if got != want {
		t.Errorf("alignmentSum() = %d; want %d", got, want)
	}
}

func TestBuildRoute(t *testing.T) {
	view := strings.Join([]string{
		"#######...#####",
		"#.....#...#...#",
		"#.....#...#...#",
		"......#...#...#",
		"......#...###.#",
		"......#.....#.#",
		"^########...#.#",
		"......#.#...#.#",
		"......#########",
		"........#...#..",
		"....#########..",
		"....#...#......",
		"....#...#......",
		"....#...#......",
		"....#####......",
	}, "\n")

	got := strings.Join(buildRoute(parseCamera(view)), ",")
	want := "R,8,R,8,R,4,R,4,R,8,L,6,L,2,R,4,R,4,R,8,R,8,R,8,L,6,L,2"
	if got != want {
		t.Errorf("buildRoute() = %q; want %q", got, want)
	}
}

func TestCompress(t *testing.T) {
	route := strings.Split("R,8,R,8,R,4,R,4,R,8,L,6,L,2,R,4,R,4,R,8,R,8,R,8,L,6,L,2", ",")

	main, funcs := compress(route)

	if len(strings.Join(main, ",")) > 20 {
		t.Errorf("main routine %q is longer than 20 characters", strings.Join(main, ","))
	}
	for i, f := range funcs {
		if len(strings.Join(f, ",")) > 20 {
			t.Errorf("function %c %q is longer than 20 characters", 'A'+i, strings.Join(f, ","))
		}
	}

	var replay []string
	for _, call := range main {
		replay = append(replay, funcs[call[0]-'A']...)
	}
	if got, want := strings.Join(replay, ","), strings.Join(route, ","); got != want {
		t.Errorf("replayed route = %q; want %q", got, want)
	}
}

func TestIntcodeEcho(t *testing.T) {
	input := "3,0,4,0,99"
	program := newIntcode(&input)

	outputs, halted := program.run([]int{42})
	if !halted {
		t.Fatal("program did not halt")
	}
	if len(outputs) != 1 || outputs[0] != 42 {
		t.Errorf("run() = %v; want [42]", outputs)
	}
}
