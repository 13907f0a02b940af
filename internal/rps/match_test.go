package rps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedPredictor always plays the same move and remembers what it was shown.
type fixedPredictor struct {
	move Move
	seen [][]Move
}

func (that *fixedPredictor) Predict(history []Move) Move {
	that.seen = append(that.seen, history)
	return that.move
}

type recordingView struct {
	results []string
}

func (that *recordingView) RenderResult(message string) {
	that.results = append(that.results, message)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, OutcomePlayer, Resolve(Rock, Scissors))
	assert.Equal(t, OutcomeComputer, Resolve(Scissors, Rock))
	assert.Equal(t, OutcomeDraw, Resolve(Paper, Paper))
}

func TestMatch_SubmitPlayerMove(t *testing.T) {
	t.Run("Player wins the round", func(t *testing.T) {
		// Given: the computer will play scissors
		view := &recordingView{}
		match := NewMatch(&fixedPredictor{move: Scissors}, view)

		// When: the player chooses rock
		round, ok := match.SubmitPlayerMove(Rock)

		// Then: the player scores and the message describes the round
		require.True(t, ok)
		assert.Equal(t, OutcomePlayer, round.Outcome)
		assert.Equal(t, 1, round.PlayerScore)
		assert.Equal(t, 0, round.ComputerScore)
		assert.Equal(t, "You win! rock beats scissors.\nScore - You: 1, AI: 0", round.Message)
		assert.Equal(t, []string{round.Message}, view.results)
	})

	t.Run("Computer wins the round", func(t *testing.T) {
		match := NewMatch(&fixedPredictor{move: Rock}, nil)

		round, ok := match.SubmitPlayerMove(Scissors)

		require.True(t, ok)
		assert.Equal(t, OutcomeComputer, round.Outcome)
		assert.Equal(t, "You lose! rock beats scissors.\nScore - You: 0, AI: 1", round.Message)
	})

	t.Run("Draw leaves the score alone", func(t *testing.T) {
		match := NewMatch(&fixedPredictor{move: Paper}, nil)

		round, ok := match.SubmitPlayerMove(Paper)

		require.True(t, ok)
		assert.Equal(t, OutcomeDraw, round.Outcome)
		assert.Equal(t, "It's a draw! You both chose paper.\nScore - You: 0, AI: 0", round.Message)
		player, computer := match.Scores()
		assert.Zero(t, player)
		assert.Zero(t, computer)
		assert.Equal(t, []Move{Paper}, match.History())
	})

	t.Run("Predictor only sees earlier moves", func(t *testing.T) {
		// Given: a match with a recording predictor
		predictor := &fixedPredictor{move: Rock}
		match := NewMatch(predictor, nil)

		// When: two rounds are played
		match.SubmitPlayerMove(Paper)
		match.SubmitPlayerMove(Scissors)

		// Then: each prediction was made before the move was recorded
		require.Len(t, predictor.seen, 2)
		assert.Empty(t, predictor.seen[0])
		assert.Equal(t, []Move{Paper}, predictor.seen[1])
		assert.Equal(t, []Move{Paper, Scissors}, match.History())
	})

	t.Run("Invalid move is ignored", func(t *testing.T) {
		match := NewMatch(&fixedPredictor{move: Rock}, nil)

		_, ok := match.SubmitPlayerMove("lizard")

		assert.False(t, ok)
		assert.Empty(t, match.History())
	})
}

func TestMatch_Termination(t *testing.T) {
	t.Run("Player reaches five", func(t *testing.T) {
		// Given: the computer always loses to rock
		view := &recordingView{}
		match := NewMatch(&fixedPredictor{move: Scissors}, view)

		// When: the player wins five rounds
		var last Round
		for range WinningScore {
			round, ok := match.SubmitPlayerMove(Rock)
			require.True(t, ok)
			last = round
		}

		// Then: the match is over and the message says so
		assert.True(t, last.MatchOver)
		assert.True(t, match.IsOver())
		assert.Equal(t, OutcomePlayer, match.Winner())
		assert.Equal(t, "You win! rock beats scissors. You won the game!\nScore - You: 5, AI: 0", last.Message)

		// When: the player keeps going
		_, ok := match.SubmitPlayerMove(Paper)

		// Then: scores and history do not move and nothing is rendered
		assert.False(t, ok)
		player, computer := match.Scores()
		assert.Equal(t, 5, player)
		assert.Zero(t, computer)
		assert.Len(t, match.History(), WinningScore)
		assert.Len(t, view.results, WinningScore)
	})

	t.Run("Computer reaches five", func(t *testing.T) {
		match := NewMatch(&fixedPredictor{move: Paper}, nil)

		var last Round
		for range WinningScore {
			last, _ = match.SubmitPlayerMove(Rock)
		}

		assert.Equal(t, OutcomeComputer, match.Winner())
		assert.Equal(t, "You lose! paper beats rock. AI wins the game!\nScore - You: 0, AI: 5", last.Message)
	})

	t.Run("Restored finished match rejects moves", func(t *testing.T) {
		match := RestoreMatch(&fixedPredictor{move: Rock}, nil, []Move{Rock}, 2, 5)

		_, ok := match.SubmitPlayerMove(Paper)

		assert.False(t, ok)
		assert.Equal(t, []Move{Rock}, match.History())
	})
}

func TestMatch_Restart(t *testing.T) {
	// Given: a finished match
	view := &recordingView{}
	match := NewMatch(&fixedPredictor{move: Scissors}, view)
	for range WinningScore {
		match.SubmitPlayerMove(Rock)
	}
	require.True(t, match.IsOver())

	// When: restarting twice
	match.Restart()
	match.Restart()

	// Then: everything is back to zero and play resumes
	player, computer := match.Scores()
	assert.Zero(t, player)
	assert.Zero(t, computer)
	assert.Empty(t, match.History())
	assert.False(t, match.IsOver())
	assert.Equal(t, []string{"", ""}, view.results[len(view.results)-2:])

	_, ok := match.SubmitPlayerMove(Rock)
	assert.True(t, ok)
}
