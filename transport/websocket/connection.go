package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/mindgames-backend/internal/tictactoe"
)

const writeWait = 10 * time.Second

// connection is one browser tab. Writes are serialised, reads happen on a single goroutine.
type connection struct {
	logger *slog.Logger
	conn   *websocket.Conn

	writeMu sync.Mutex

	// sessions started on this connection, ended when it closes
	games   []string
	matches []string
}

func newConnection(logger *slog.Logger, conn *websocket.Conn) *connection {
	return &connection{
		logger: logger,
		conn:   conn,
	}
}

func (that *connection) send(action string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err = that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.conn.WriteJSON(Message{Action: action, Payload: data}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *connection) sendError(action, message string) error {
	return that.send(action, ResponsePayload{Error: message})
}

// push - sends a render, logging failures since views cannot return errors.
func (that *connection) push(action string, payload any) {
	if err := that.send(action, payload); err != nil {
		that.logger.Error("failed to push render", "action", action, "error", err)
	}
}

// ticTacToeView renders one game onto the connection.
type ticTacToeView struct {
	conn   *connection
	gameID string
}

func (that ticTacToeView) RenderBoard(board tictactoe.Board) {
	that.conn.push(actionTicTacToeBoard, BoardPayload{GameID: that.gameID, Board: board.Strings()})
}

func (that ticTacToeView) RenderStatus(status string) {
	that.conn.push(actionTicTacToeStatus, StatusPayload{GameID: that.gameID, Status: status})
}

// rpsView renders one match onto the connection.
type rpsView struct {
	conn    *connection
	matchID string
}

func (that rpsView) RenderResult(message string) {
	that.conn.push(actionRPSResult, ResultPayload{MatchID: that.matchID, Message: message})
}
