package rps

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/mindgames-backend/internal/apperror"
)

type Move string

const (
	Rock     Move = "rock"
	Paper    Move = "paper"
	Scissors Move = "scissors"
)

// Moves is the fixed declaration order used for random picks and frequency tie-breaks.
var Moves = [3]Move{Rock, Paper, Scissors}

// Beats maps each move to the move it defeats.
var Beats = map[Move]Move{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// Counter - returns the move that defeats m.
func Counter(m Move) Move {
	for _, move := range Moves {
		if Beats[move] == m {
			return move
		}
	}
	return ""
}

func ParseMove(raw string) (Move, error) {
	move := Move(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := Beats[move]; !ok {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidMove, raw)
	}

	return move, nil
}

func (that Move) Valid() bool {
	_, ok := Beats[that]
	return ok
}
