package rps

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mindgames-backend/internal/apperror"
)

func TestCounter(t *testing.T) {
	assert.Equal(t, Paper, Counter(Rock))
	assert.Equal(t, Scissors, Counter(Paper))
	assert.Equal(t, Rock, Counter(Scissors))

	for _, move := range Moves {
		assert.Equal(t, move, Beats[Counter(move)])
	}
}

func TestParseMove(t *testing.T) {
	t.Run("Known moves", func(t *testing.T) {
		move, err := ParseMove(" Rock ")
		require.NoError(t, err)
		assert.Equal(t, Rock, move)
	})

	t.Run("Unknown move", func(t *testing.T) {
		_, err := ParseMove("lizard")
		assert.ErrorIs(t, err, apperror.ErrInvalidMove)
	})
}

func TestFrequencyPredictor_Predict(t *testing.T) {
	t.Run("Counters a repeated move", func(t *testing.T) {
		// Given: the player always chose rock
		predictor := NewFrequencyPredictor(rand.New(rand.NewPCG(1, 2)))

		// When: predicting
		move := predictor.Predict([]Move{Rock, Rock, Rock})

		// Then: paper beats the expected rock
		assert.Equal(t, Paper, move)
	})

	t.Run("Uses the whole history", func(t *testing.T) {
		predictor := NewFrequencyPredictor(nil)

		move := predictor.Predict([]Move{Paper, Scissors, Scissors, Rock, Scissors, Paper})

		assert.Equal(t, Rock, move)
	})

	t.Run("Short history is uniformly random", func(t *testing.T) {
		// Given: only two rounds of history
		predictor := NewFrequencyPredictor(rand.New(rand.NewPCG(42, 7)))
		history := []Move{Rock, Paper}
		counts := make(map[Move]int)

		// When: predicting many times
		const draws = 3000
		for range draws {
			counts[predictor.Predict(history)]++
		}

		// Then: every move shows up with roughly equal frequency
		require.Len(t, counts, len(Moves))
		for _, move := range Moves {
			assert.InDelta(t, draws/3, counts[move], draws/10, "move %s", move)
		}
	})

	t.Run("Empty history", func(t *testing.T) {
		predictor := NewFrequencyPredictor(nil)

		assert.True(t, predictor.Predict(nil).Valid())
	})
}

func TestMostFrequent_TieBreak(t *testing.T) {
	tests := []struct {
		name    string
		history []Move
		want    Move
	}{
		{name: "all equal prefers rock", history: []Move{Scissors, Paper, Rock}, want: Rock},
		{name: "paper and scissors tie prefers paper", history: []Move{Scissors, Paper, Scissors, Paper}, want: Paper},
		{name: "rock and scissors tie prefers rock", history: []Move{Scissors, Rock}, want: Rock},
		{name: "strict maximum wins", history: []Move{Rock, Scissors, Scissors}, want: Scissors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MostFrequent(tt.history))
		})
	}
}
