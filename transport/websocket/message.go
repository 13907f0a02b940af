package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/mindgames-backend/internal/entity"
)

// client actions
const (
	actionTicTacToeNew   = "tictactoe:new"
	actionTicTacToeMove  = "tictactoe:move"
	actionTicTacToeReset = "tictactoe:reset"
	actionRPSNew         = "rps:new"
	actionRPSPlay        = "rps:play"
	actionRPSRestart     = "rps:restart"
)

// server pushes
const (
	actionTicTacToeBoard  = "tictactoe:board"
	actionTicTacToeStatus = "tictactoe:status"
	actionRPSResult       = "rps:result"
	actionError           = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ResponsePayload struct {
	Game  *entity.TicTacToe `json:"game,omitempty"`
	Match *entity.RPSMatch  `json:"match,omitempty"`
	Error string            `json:"error,omitempty"`
}

type BoardPayload struct {
	GameID string    `json:"game_id"`
	Board  [9]string `json:"board"`
}

type StatusPayload struct {
	GameID string `json:"game_id"`
	Status string `json:"status"`
}

type ResultPayload struct {
	MatchID string `json:"match_id"`
	Message string `json:"message"`
}

type gameRequest struct {
	GameID string `json:"game_id" validate:"required,uuid"`
}

type moveRequest struct {
	GameID string `json:"game_id" validate:"required,uuid"`
	Cell   *int   `json:"cell"    validate:"required"`
}

type matchRequest struct {
	MatchID string `json:"match_id" validate:"required,uuid"`
}

type playRequest struct {
	MatchID string `json:"match_id" validate:"required,uuid"`
	Move    string `json:"move"     validate:"required,rps_move"`
}
