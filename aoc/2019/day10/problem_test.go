package aoc2019day10

import "testing"

const largeMap = `.#..##.###...#######
##.############..##.
.#.######.########.#
.###.#######.####.#.
#####.##.#.##.###.##
..#####..#.#########
####################
#.####....###.#.#.##
##.#################
#####.##.###..####..
..######..##.#######
####.##.####...##..#
.#####..#.######.###
##...#.##########...
#.##########.#######
.####.#.###.###.#.##
....##.##.###..#####
.#.#.###########.###
#.#.#.#####.####.###
###.##.####.##.#..##`

func TestBestStation(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantPoint point
		wantCount int
	}{
		{
			name:      "small example",
			input:     ".#..#\n.....\n#####\n....#\n...##",
			wantPoint: point{3, 4},
			wantCount: 8,
		},
		{
			name: "second example",
			input: "......#.#.\n#..#.#....\n..#######.\n.#.#.###..\n.#..#.....\n" +
				"..#....#.#\n#..#....#.\n.##.#..###\n##...#..#.\n.#....####",
			wantPoint: point{5, 8},
			wantCount: 33,
		},
		{
			name: "third example",
			input: "#.#...#.#.\n.###....#.\n.#....#...\n##.#.#.#.#\n....#.#.#.\n" +
				".##..###.#\n..#...##..\n..##....##\n......#...\n.####.###.",
			wantPoint: point{1, 2},
			wantCount: 35,
		},
		{
			name:      "large example",
			input:     largeMap,
			wantPoint: point{11, 13},
			wantCount: 210,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asteroids := parseMap(&tt.input)
			got, count := bestStation(asteroids)
			if got != tt.wantPoint || count != tt.wantCount {
				t.Errorf("bestStation() = (%v, %d); want (%v, %d)", got, count, tt.wantPoint, tt.wantCount)
			}
		})
	}
}

func TestVaporizeOrder(t *testing.T) {
	input := largeMap
	asteroids := parseMap(&input)
	order := vaporizeOrder(asteroids, point{11, 13})

	checks := []struct {
		index    int
		expected point
	}{
		{0, point{11, 12}},
		{1, point{12, 1}},
		{2, point{12, 2}},
		{9, point{12, 8}},
		{19, point{16, 0}},
		{49, point{16, 9}},
		{99, point{10, 16}},
		{198, point{9, 6}},
		{199, point{8, 2}},
		{200, point{10, 9}},
		{298, point{11, 1}},
	}

	for _, c := range checks {
		if order[c.index] != c.expected {
			t.Errorf("order[%d] = %v; want %v", c.index, order[c.index], c.expected)
		}
	}

	if got := part2(&input); got != 802 {
		t.Errorf("part2() = %d; want 802", got)
	}
}
