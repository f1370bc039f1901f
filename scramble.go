package cubesim

import "math/rand"

// DefaultScrambleLength is the scramble length used when none is configured.
const DefaultScrambleLength = 25

// GenerateScramble returns length moves drawn uniformly from the twelve
// quarter-turn tokens. Pass a *rand.Rand for reproducible scrambles, or
// nil to use the shared source.
func GenerateScramble(length int, rng *rand.Rand) []Move {
	if length <= 0 {
		return nil
	}
	moves := make([]Move, length)
	for i := range moves {
		var k int
		if rng != nil {
			k = rng.Intn(len(QuarterMoves))
		} else {
			k = rand.Intn(len(QuarterMoves))
		}
		moves[i] = QuarterMoves[k]
	}
	return moves
}
