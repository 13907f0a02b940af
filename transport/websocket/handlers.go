package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/mindgames-backend/internal/apperror"
	"github.com/rocketscienceinc/mindgames-backend/internal/rps"
)

// decode - unmarshals and validates the payload, answering the client on failure.
// It returns false when the message should not be processed further.
func (that *Server) decode(msg *Message, conn *connection, req any) (bool, error) {
	if err := json.Unmarshal(msg.Payload, req); err != nil {
		return false, conn.sendError(msg.Action, "malformed payload")
	}

	if err := that.validate.Struct(req); err != nil {
		return false, conn.sendError(msg.Action, err.Error())
	}

	return true, nil
}

func clientError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return apperror.ErrGameNotFound.Error()
	case errors.Is(err, apperror.ErrInvalidMove):
		return err.Error()
	}

	return "internal error"
}

func (that *Server) handleTicTacToeNew(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleTicTacToeNew")

	game, err := that.ticTacToe.NewGame(ctx)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return conn.sendError(msg.Action, "failed to create a new game")
	}

	conn.games = append(conn.games, game.ID)

	if err = conn.send(msg.Action, ResponsePayload{Game: game}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("game started", "gameID", game.ID)

	return nil
}

func (that *Server) handleTicTacToeMove(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleTicTacToeMove")

	var req moveRequest
	if ok, err := that.decode(msg, conn, &req); !ok {
		return err
	}

	game, err := that.ticTacToe.MakeMove(ctx, req.GameID, *req.Cell, ticTacToeView{conn: conn, gameID: req.GameID})
	if err != nil {
		log.Error("failed to make move", "gameID", req.GameID, "error", err)
		return conn.sendError(msg.Action, clientError(err))
	}

	return conn.send(msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleTicTacToeReset(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleTicTacToeReset")

	var req gameRequest
	if ok, err := that.decode(msg, conn, &req); !ok {
		return err
	}

	game, err := that.ticTacToe.Reset(ctx, req.GameID, ticTacToeView{conn: conn, gameID: req.GameID})
	if err != nil {
		log.Error("failed to reset game", "gameID", req.GameID, "error", err)
		return conn.sendError(msg.Action, clientError(err))
	}

	return conn.send(msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleRPSNew(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleRPSNew")

	match, err := that.rps.NewMatch(ctx)
	if err != nil {
		log.Error("failed to create match", "error", err)
		return conn.sendError(msg.Action, "failed to create a new match")
	}

	conn.matches = append(conn.matches, match.ID)

	if err = conn.send(msg.Action, ResponsePayload{Match: match}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("match started", "matchID", match.ID)

	return nil
}

func (that *Server) handleRPSPlay(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleRPSPlay")

	var req playRequest
	if ok, err := that.decode(msg, conn, &req); !ok {
		return err
	}

	move, err := rps.ParseMove(req.Move)
	if err != nil {
		return conn.sendError(msg.Action, clientError(err))
	}

	match, err := that.rps.Play(ctx, req.MatchID, move, rpsView{conn: conn, matchID: req.MatchID})
	if err != nil {
		log.Error("failed to play round", "matchID", req.MatchID, "error", err)
		return conn.sendError(msg.Action, clientError(err))
	}

	return conn.send(msg.Action, ResponsePayload{Match: match})
}

func (that *Server) handleRPSRestart(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleRPSRestart")

	var req matchRequest
	if ok, err := that.decode(msg, conn, &req); !ok {
		return err
	}

	match, err := that.rps.Restart(ctx, req.MatchID, rpsView{conn: conn, matchID: req.MatchID})
	if err != nil {
		log.Error("failed to restart match", "matchID", req.MatchID, "error", err)
		return conn.sendError(msg.Action, clientError(err))
	}

	return conn.send(msg.Action, ResponsePayload{Match: match})
}
