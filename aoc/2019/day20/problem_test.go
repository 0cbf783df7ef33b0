package aoc2019day20

import (
	"strings"
	"testing"
)

var smallMaze = strings.Join([]string{
	"         A         ",
	"         A         ",
	"  #######.#########",
	"  #######.........#",
	"  #######.#######.#",
	"  #######.#######.#",
	"  #######.#######.#",
	"  #####  B    ###.#",
	"BC...##  C    ###.#",
	"  ##.##       ###.#",
	"  ##...DE  F  ###.#",
	"  #####    G  ###.#",
	"  #########.#####.#",
	"DE..#######...###.#",
	"  #.#########.###.#",
	"FG..#########.....#",
	"  ###########.#####",
	"             Z     ",
	"             Z     ",
}, "\n")

var largeMaze = strings.Join([]string{
	"                   A               ",
	"                   A               ",
	"  #################.#############  ",
	"  #.#...#...................#.#.#  ",
	"  #.#.#.###.###.###.#########.#.#  ",
	"  #.#.#.......#...#.....#.#.#...#  ",
	"  #.#########.###.#####.#.#.###.#  ",
	"  #.............#.#.....#.......#  ",
	"  ###.###########.###.#####.#.#.#  ",
	"  #.....#        A   C    #.#.#.#  ",
	"  #######        S   P    #####.#  ",
	"  #.#...#                 #......VT",
	"  #.#.#.#                 #.#####  ",
	"  #...#.#               YN....#.#  ",
	"  #.###.#                 #####.#  ",
	"DI....#.#                 #.....#  ",
	"  #####.#                 #.###.#  ",
	"ZZ......#               QG....#..AS",
	"  ###.###                 #######  ",
	"JO..#.#.#                 #.....#  ",
	"  #.#.#.#                 ###.#.#  ",
	"  #...#..DI             BU....#..LF",
	"  #####.#                 #.#####  ",
	"YN......#               VT..#....QG",
	"  #.###.#                 #.###.#  ",
	"  #.#...#                 #.....#  ",
	"  ###.###    J L     J    #.#.###  ",
	"  #.....#    O F     P    #.#...#  ",
	"  #.###.#####.#.#####.#####.###.#  ",
	"  #...#.#.#...#.....#.....#.#...#  ",
	"  #.#####.###.###.#.#.#########.#  ",
	"  #...#.#.....#...#.#.#.#.....#.#  ",
	"  #.###.#####.###.###.#.#.#######  ",
	"  #.#.........#...#.............#  ",
	"  #########.###.###.#############  ",
	"           B   J   C               ",
	"           U   P   P               ",
}, "\n")

var interleavedMaze = strings.Join([]string{
	"             Z L X W       C                 ",
	"             Z P Q B       K                 ",
	"  ###########.#.#.#.#######.###############  ",
	"  #...#.......#.#.......#.#.......#.#.#...#  ",
	"  ###.#.#.#.#.#.#.#.###.#.#.#######.#.#.###  ",
	"  #.#...#.#.#...#.#.#...#...#...#.#.......#  ",
	"  #.###.#######.###.###.#.###.###.#.#######  ",
	"  #...#.......#.#...#...#.............#...#  ",
	"  #.#########.#######.#.#######.#######.###  ",
	"  #...#.#    F       R I       Z    #.#.#.#  ",
	"  #.###.#    D       E C       H    #.#.#.#  ",
	"  #.#...#                           #...#.#  ",
	"  #.###.#                           #.###.#  ",
	"  #.#....OA                       WB..#.#..ZH",
	"  #.###.#                           #.#.#.#  ",
	"CJ......#                           #.....#  ",
	"  #######                           #######  ",
	"  #.#....CK                         #......IC",
	"  #.###.#                           #.###.#  ",
	"  #.....#                           #...#.#  ",
	"  ###.###                           #.#.#.#  ",
	"XF....#.#                         RF..#.#.#  ",
	"  #####.#                           #######  ",
	"  #......CJ                       NM..#...#  ",
	"  ###.#.#                           #.###.#  ",
	"RE....#.#                           #......RF",
	"  ###.###        X   X       L      #.#.#.#  ",
	"  #.....#        F   Q       P      #.#.#.#  ",
	"  ###.###########.###.#######.#########.###  ",
	"  #.....#...#.....#.......#...#.....#.#...#  ",
	"  #####.#.###.#######.#######.###.###.#.#.#  ",
	"  #.......#.......#.#.#.#.#...#...#...#.#.#  ",
	"  #####.###.#####.#.#.#.#.###.###.#.###.###  ",
	"  #.......#.....#.#...#...............#...#  ",
	"  #############.#.#.###.###################  ",
	"               A O F   N                     ",
	"               A A D   M                     ",
}, "\n")

func TestPart1(t *testing.T) {
	tests := []struct {
		name string
		maze string
		want int
	}{
		{"three portal pairs", smallMaze, 23},
		{"larger maze", largeMaze, 58},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := part1(&tt.maze); got != tt.want {
				t.Errorf("part1() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestPart2(t *testing.T) {
	tests := []struct {
		name string
		maze string
		want int
	}{
		{"three portal pairs", smallMaze, 26},
		{"interleaved maze", interleavedMaze, 396},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := part2(&tt.maze); got != tt.want {
				t.Errorf("part2() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestFindConnections(t *testing.T) {
	grid := parseGrid(&smallMaze)
	connections := findConnections(grid, findLabels(grid))

	aa := connections["AA"]
	if len(aa) != 3 {
		t.Fatalf("AA has %d edges; want 3: %v", len(aa), aa)
	}

	bc, ok := aa[connKey{"BC", false}]
	if !ok {
		t.Fatal("AA should reach BC")
	}
	if !bc.inner {
		t.Errorf("AA reaches BC through its inner entrance; edge says outer")
	}
	if bc.distance != 5 {
		t.Errorf("AA to BC distance = %d; want 5", bc.distance)
	}

	zz, ok := aa[connKey{"ZZ", false}]
	if !ok {
		t.Fatal("AA should reach ZZ")
	}
	if zz.inner {
		t.Errorf("ZZ is the outer exit; edge says inner")
	}
	if zz.distance != 26 {
		t.Errorf("AA to ZZ distance = %d; want 26", zz.distance)
	}
}

func TestFindLabels(t *testing.T) {
	grid := parseGrid(&smallMaze)
	labels := findLabels(grid)

	if len(labels) != 5 {
		t.Fatalf("findLabels() found %d labels; want 5", len(labels))
	}
	if len(labels["AA"]) != 1 || len(labels["ZZ"]) != 1 {
		t.Errorf("AA and ZZ should each have a single entrance: %v, %v", labels["AA"], labels["ZZ"])
	}
	for _, label := range []string{"BC", "DE", "FG"} {
		entrances := labels[label]
		if len(entrances) != 2 {
			t.Fatalf("label %s has %d entrances; want 2", label, len(entrances))
		}
		if entrances[0].inner == entrances[1].inner {
			t.Errorf("label %s should have one inner and one outer entrance: %v", label, entrances)
		}
	}
}
