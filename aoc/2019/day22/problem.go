package aoc2019day22

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const (
	deckSize   = 119315717514047
	iterations = 101741582076661
	targetCard = 2020
)

func Run(input string, part int) {
	if part == 0 || part == 2 {
		fmt.Printf("AoC2019, Day22, Part2 solution is: %d\n", part2(&input))
	}
}

// part2 never touches the deck. The shuffled deck is an arithmetic sequence
// mod the deck size: the card at position p is offset + increment*p. Each
// technique updates the two parameters, and repeating the whole shuffle
// multiplies the increment by a constant while the offset grows by a
// geometric series, so a hundred trillion repetitions collapse into a modular
// exponentiation.
func part2(input *string) int64 {
	offset, increment := parseShuffle(input, deckSize)
	offset, increment = repeatShuffle(offset, increment, iterations, deckSize)
	return (offset + mulMod(increment, targetCard, deckSize)) % deckSize
}

func parseShuffle(input *string, m int64) (offset, increment int64) {
	offset, increment = 0, 1
	for _, line := range strings.Split(strings.TrimSpace(*input), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "deal into new stack":
			// reversing negates the increment and shifts the first card
			increment = m - increment
			offset = (offset + increment) % m
		case strings.HasPrefix(line, "cut "):
			// rotating only moves the first card
			n, err := strconv.ParseInt(line[4:], 10, 64)
			if err != nil {
				panic(err)
			}
			offset = (offset + mulMod(increment, euclidMod(n, m), m)) % m
		case strings.HasPrefix(line, "deal with increment "):
			// the card at position 1 ends up at position n, so the new
			// spacing between cards is the modular inverse of n
			n, err := strconv.ParseInt(line[20:], 10, 64)
			if err != nil {
				panic(err)
			}
			increment = mulMod(increment, inv(n, m), m)
		default:
			panic(fmt.Sprintf("%q is not a valid shuffle technique.", line))
		}
	}

	return offset, increment
}

// repeatShuffle applies a whole shuffle pass `times` times. After n passes
// the increment is increment**n and the offset is the geometric series
// offset * (1 + increment + ... + increment**(n-1)), which sums to
// offset * (1 - increment**n) / (1 - increment).
func repeatShuffle(offset, increment, times, m int64) (int64, int64) {
	repeated := powMod(increment, times, m)
	offset = mulMod(
		mulMod(offset, euclidMod(1-repeated, m), m),
		inv(euclidMod(1-increment, m), m),
		m,
	)
	return offset, repeated
}

// mulMod multiplies two values below m without overflowing by splitting the
// product into 128 bits.
func mulMod(a, b, m int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	_, rem := bits.Div64(hi, lo, uint64(m))
	return int64(rem)
}

func powMod(base, exponent, m int64) int64 {
	if m == 1 {
		return 0
	}

	result := int64(1)
	base = base % m
	for exponent > 0 {
		if exponent&1 == 1 {
			result = mulMod(result, base, m)
		}
		exponent >>= 1
		base = mulMod(base, base, m)
	}

	return result
}

// inv computes the modular inverse of n, relying on m being prime
func inv(n, m int64) int64 {
	return powMod(euclidMod(n, m), m-2, m)
}

func euclidMod(n, m int64) int64 {
	return ((n % m) + m) % m
}
