package rps

import (
	"math/rand/v2"
	"time"
)

// minHistory is the number of rounds needed before frequencies are trusted.
const minHistory = 3

// FrequencyPredictor counters the player's most frequent move.
type FrequencyPredictor struct {
	rand *rand.Rand
}

// NewFrequencyPredictor - uses rng for the short-history case, or a time seeded source when nil.
func NewFrequencyPredictor(rng *rand.Rand) *FrequencyPredictor {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1)) //nolint: gosec // game opponent, not crypto
	}

	return &FrequencyPredictor{rand: rng}
}

func (that *FrequencyPredictor) Predict(history []Move) Move {
	if len(history) < minHistory {
		return Moves[that.rand.IntN(len(Moves))]
	}

	return Counter(MostFrequent(history))
}

// MostFrequent - counts the history, equal counts resolve to the earlier entry of Moves.
func MostFrequent(history []Move) Move {
	counts := make(map[Move]int, len(Moves))
	for _, move := range history {
		counts[move]++
	}

	likely := Moves[0]
	for _, move := range Moves[1:] {
		if counts[move] > counts[likely] {
			likely = move
		}
	}

	return likely
}
