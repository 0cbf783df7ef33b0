package aoc2019day14

import (
	"fmt"
	"strconv"
	"strings"
)

const oreBudget = 1_000_000_000_000

type chemicalQuantity struct {
	name     string
	quantity int
}

type reaction struct {
	quantity     int
	requirements []chemicalQuantity
}

func Run(input string, part int) {
	if part == 0 || part == 1 {
		fmt.Printf("AoC2019, Day14, Part1 solution is: %d\n", part1(&input))
	}
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day14, Part2 solution is: %d\n", part2(&input))
	}
}

func part1(input *string) int {
	reactions := parseReactions(input)
	return oreFor(reactions, 1)
}

// part2 binary-searches the most FUEL a trillion ORE can produce. Leftover
// chemicals make bulk fuel cheaper than part 1's per-unit cost, so the search
// starts at the naive estimate and assumes at most double it.
func part2(input *string) int {
	reactions := parseReactions(input)

	orePerFuel := oreFor(reactions, 1)
	minFuel := oreBudget / orePerFuel
	maxFuel := minFuel * 2

	for minFuel < maxFuel {
		fuel := (minFuel + maxFuel) / 2
		if fuel == minFuel {
			fuel++
		}

		ore := oreFor(reactions, fuel)
		switch {
		case ore > oreBudget:
			maxFuel = fuel - 1
		case ore == oreBudget:
			minFuel = fuel
			maxFuel = fuel
		default:
			minFuel = fuel
		}
	}

	return minFuel
}

// oreFor expands the FUEL requirement down to raw ORE, banking leftover
// chemicals from over-producing reactions and spending them before running
// new reactions. Works because each chemical has exactly one producing
// reaction.
func oreFor(reactions map[string]reaction, fuel int) int {
	ore := 0
	extra := make(map[string]int)
	needed := []chemicalQuantity{{"FUEL", fuel}}

	for len(needed) > 0 {
		cq := needed[len(needed)-1]
		needed = needed[:len(needed)-1]

		if cq.name == "ORE" {
			ore += cq.quantity
			continue
		}

		if leftover := extra[cq.name]; leftover > 0 {
			if cq.quantity >= leftover {
				cq.quantity -= leftover
				extra[cq.name] = 0
			} else {
				extra[cq.name] = leftover - cq.quantity
				continue
			}
		}

		r := reactions[cq.name]
		multiplier := (cq.quantity + r.quantity - 1) / r.quantity
		for _, req := range r.requirements {
			needed = append(needed, chemicalQuantity{req.name, req.quantity * multiplier})
		}

		if leftover := r.quantity*multiplier - cq.quantity; leftover > 0 {
			extra[cq.name] = leftover
		}
	}

	return ore
}

// parseReactions reads lines like "7 A, 1 B => 1 C".
func parseReactions(input *string) map[string]reaction {
	reactions := make(map[string]reaction)
	for _, line := range strings.Split(strings.TrimSpace(*input), "\n") {
		line = strings.TrimSpace(line)
		sides := strings.SplitN(line, " => ", 2)
		if len(sides) != 2 {
			panic(fmt.Sprintf("Bad reaction: %s", line))
		}

		produced := parseChemical(sides[1])
		var requirements []chemicalQuantity
		for _, req := range strings.Split(sides[0], ", ") {
			requirements = append(requirements, parseChemical(req))
		}

		reactions[produced.name] = reaction{produced.quantity, requirements}
	}

	return reactions
}

func parseChemical(s string) chemicalQuantity {
	parts := strings.SplitN(s, " ", 2)
	if len(parts) != 2 {
		panic(fmt.Sprintf("Bad chemical quantity: %s", s))
	}

	quantity, err := strconv.Atoi(parts[0])
	if err != nil {
		panic(err)
	}

	return chemicalQuantity{parts[1], quantity}
}
