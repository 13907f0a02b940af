package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mindgames-backend/internal/apperror"
	"github.com/rocketscienceinc/mindgames-backend/internal/entity"
	"github.com/rocketscienceinc/mindgames-backend/internal/rps"
	"github.com/rocketscienceinc/mindgames-backend/internal/usecase"
	"github.com/rocketscienceinc/mindgames-backend/testing/memstore"
)

type alwaysRock struct{}

func (alwaysRock) Predict([]rps.Move) rps.Move { return rps.Rock }

type stores struct {
	games   *memstore.Store[entity.TicTacToe]
	matches *memstore.Store[entity.RPSMatch]
}

func newTestClient(t *testing.T) (*websocket.Conn, stores) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := stores{games: memstore.NewTicTacToe(), matches: memstore.NewRPS()}

	server := New(
		logger,
		usecase.NewTicTacToeUseCase(logger, st.games),
		usecase.NewRPSUseCase(logger, st.matches, alwaysRock{}),
	)

	httpServer := httptest.NewServer(server.Handler())
	t.Cleanup(httpServer.Close)

	url := "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws"

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	t.Cleanup(func() { _ = conn.Close() })

	return conn, st
}

func send(t *testing.T, conn *websocket.Conn, action string, payload any) {
	t.Helper()

	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		raw = data
	}

	require.NoError(t, conn.WriteJSON(Message{Action: action, Payload: raw}))
}

func receive[T any](t *testing.T, conn *websocket.Conn, action string) T {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, action, msg.Action, string(msg.Payload))

	var payload T
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))

	return payload
}

func TestTicTacToeOverWebSocket(t *testing.T) {
	conn, st := newTestClient(t)

	// Given: a new game
	send(t, conn, actionTicTacToeNew, nil)
	created := receive[ResponsePayload](t, conn, actionTicTacToeNew)
	require.NotNil(t, created.Game)
	id := created.Game.ID

	t.Run("Move pushes the board before the response", func(t *testing.T) {
		// When: the human plays the center
		send(t, conn, actionTicTacToeMove, map[string]any{"game_id": id, "cell": 4})

		// Then: the rendered board arrives first
		board := receive[BoardPayload](t, conn, actionTicTacToeBoard)
		assert.Equal(t, id, board.GameID)
		assert.Equal(t, "O", board.Board[4])

		resp := receive[ResponsePayload](t, conn, actionTicTacToeMove)
		require.NotNil(t, resp.Game)
		assert.True(t, resp.Game.Applied)
		assert.Equal(t, board.Board, resp.Game.Board)
	})

	t.Run("Ignored move pushes nothing", func(t *testing.T) {
		send(t, conn, actionTicTacToeMove, map[string]any{"game_id": id, "cell": 4})

		resp := receive[ResponsePayload](t, conn, actionTicTacToeMove)
		require.NotNil(t, resp.Game)
		assert.False(t, resp.Game.Applied)
	})

	t.Run("Reset pushes an empty board and status", func(t *testing.T) {
		send(t, conn, actionTicTacToeReset, map[string]any{"game_id": id})

		board := receive[BoardPayload](t, conn, actionTicTacToeBoard)
		assert.Equal(t, [9]string{}, board.Board)

		status := receive[StatusPayload](t, conn, actionTicTacToeStatus)
		assert.Empty(t, status.Status)

		resp := receive[ResponsePayload](t, conn, actionTicTacToeReset)
		require.NotNil(t, resp.Game)
		assert.Equal(t, [9]string{}, resp.Game.Board)
	})

	t.Run("Invalid payload is rejected", func(t *testing.T) {
		send(t, conn, actionTicTacToeMove, map[string]any{"game_id": "not-a-uuid", "cell": 1})

		resp := receive[ResponsePayload](t, conn, actionTicTacToeMove)
		assert.NotEmpty(t, resp.Error)
		assert.Nil(t, resp.Game)
	})

	t.Run("Unknown game", func(t *testing.T) {
		send(t, conn, actionTicTacToeReset, map[string]any{"game_id": "7f0c5d9e-3b57-4a8e-9c52-0a8f3b7b1c11"})

		resp := receive[ResponsePayload](t, conn, actionTicTacToeReset)
		assert.Equal(t, "game not found", resp.Error)
	})

	t.Run("Disconnect ends the game", func(t *testing.T) {
		require.Equal(t, 1, st.games.Len())

		require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))

		assert.Eventually(t, func() bool { return st.games.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
	})
}

func TestRPSOverWebSocket(t *testing.T) {
	conn, _ := newTestClient(t)

	// Given: a match against a computer that always plays rock
	send(t, conn, actionRPSNew, nil)
	created := receive[ResponsePayload](t, conn, actionRPSNew)
	require.NotNil(t, created.Match)
	id := created.Match.ID

	t.Run("Play pushes the round result", func(t *testing.T) {
		// When: the player chooses paper
		send(t, conn, actionRPSPlay, map[string]any{"match_id": id, "move": "paper"})

		// Then: the result message is pushed, then the match state
		result := receive[ResultPayload](t, conn, actionRPSResult)
		assert.Equal(t, id, result.MatchID)
		assert.Equal(t, "You win! paper beats rock.\nScore - You: 1, AI: 0", result.Message)

		resp := receive[ResponsePayload](t, conn, actionRPSPlay)
		require.NotNil(t, resp.Match)
		assert.Equal(t, 1, resp.Match.PlayerScore)
	})

	t.Run("Unknown move is rejected", func(t *testing.T) {
		send(t, conn, actionRPSPlay, map[string]any{"match_id": id, "move": "spock"})

		resp := receive[ResponsePayload](t, conn, actionRPSPlay)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("Restart clears the result", func(t *testing.T) {
		send(t, conn, actionRPSRestart, map[string]any{"match_id": id})

		result := receive[ResultPayload](t, conn, actionRPSResult)
		assert.Empty(t, result.Message)

		resp := receive[ResponsePayload](t, conn, actionRPSRestart)
		require.NotNil(t, resp.Match)
		assert.Zero(t, resp.Match.PlayerScore)
	})
}

func TestMalformedMessages(t *testing.T) {
	conn, _ := newTestClient(t)

	t.Run("Broken JSON", func(t *testing.T) {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{nope")))

		resp := receive[ResponsePayload](t, conn, actionError)
		assert.Equal(t, "malformed message", resp.Error)
	})

	t.Run("Unknown action", func(t *testing.T) {
		send(t, conn, "chess:new", nil)

		resp := receive[ResponsePayload](t, conn, "chess:new")
		assert.Equal(t, "unknown action", resp.Error)
	})

	t.Run("Connection survives errors", func(t *testing.T) {
		send(t, conn, actionRPSNew, nil)

		resp := receive[ResponsePayload](t, conn, actionRPSNew)
		assert.NotNil(t, resp.Match)
	})
}

func TestClientError(t *testing.T) {
	_, invalidMove := rps.ParseMove("spock")

	assert.Equal(t, "game not found", clientError(fmt.Errorf("failed to play round: %w", apperror.ErrGameNotFound)))
	assert.Equal(t, invalidMove.Error(), clientError(invalidMove))
	assert.Equal(t, "internal error", clientError(errors.New("redis down")))
}
