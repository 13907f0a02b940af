package entity

import (
	"github.com/rocketscienceinc/mindgames-backend/internal/rps"
	"github.com/rocketscienceinc/mindgames-backend/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// TicTacToe is the stored state of one tic-tac-toe session.
type TicTacToe struct {
	ID      string    `json:"id"`
	Board   [9]string `json:"board"`
	Winner  string    `json:"winner"`
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Hint    int       `json:"hint"`

	// Applied reports whether the last submitted move changed the board.
	// Only meaningful in the response to a move.
	Applied bool `json:"applied"`
}

func NewTicTacToe(id string) *TicTacToe {
	game := &TicTacToe{ID: id}
	game.Sync(tictactoe.NewGame(nil))

	return game
}

// Engine - rebuilds the in-memory game, renders go to view.
func (that *TicTacToe) Engine(view tictactoe.View) *tictactoe.Game {
	return tictactoe.Restore(tictactoe.BoardFromStrings(that.Board), view)
}

// Sync - copies the engine state back into the record.
func (that *TicTacToe) Sync(game *tictactoe.Game) {
	board := game.Board()

	that.Board = board.Strings()
	that.Message = game.Status()
	that.Hint = tictactoe.BestMoveFor(board, tictactoe.Human)

	switch result := game.Result(); result {
	case tictactoe.ResultNone:
		that.Winner = ""
		that.Status = StatusOngoing
	default:
		that.Winner = string(result)
		that.Status = StatusFinished
	}
}

func (that *TicTacToe) IsFinished() bool {
	return that.Status == StatusFinished
}

// RPSMatch is the stored state of one rock-paper-scissors match.
type RPSMatch struct {
	ID            string     `json:"id"`
	History       []rps.Move `json:"history"`
	PlayerScore   int        `json:"player_score"`
	ComputerScore int        `json:"computer_score"`
	Winner        string     `json:"winner"`
	Status        string     `json:"status"`
	LastRound     *rps.Round `json:"last_round,omitempty"`

	// Applied reports whether the last submitted move was played.
	// Only meaningful in the response to a move.
	Applied bool `json:"applied"`
}

func NewRPSMatch(id string) *RPSMatch {
	return &RPSMatch{
		ID:      id,
		History: []rps.Move{},
		Status:  StatusOngoing,
	}
}

// Engine - rebuilds the in-memory match around predictor, renders go to view.
func (that *RPSMatch) Engine(predictor rps.Predictor, view rps.View) *rps.Match {
	return rps.RestoreMatch(predictor, view, that.History, that.PlayerScore, that.ComputerScore)
}

// Sync - copies the engine state back into the record.
func (that *RPSMatch) Sync(match *rps.Match) {
	that.History = append([]rps.Move{}, match.History()...)
	that.PlayerScore, that.ComputerScore = match.Scores()
	that.Winner = string(match.Winner())

	if match.IsOver() {
		that.Status = StatusFinished
	} else {
		that.Status = StatusOngoing
	}
}

func (that *RPSMatch) IsFinished() bool {
	return that.Status == StatusFinished
}
