package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/mindgames-backend/internal/apperror"
	"github.com/rocketscienceinc/mindgames-backend/internal/entity"
	"github.com/rocketscienceinc/mindgames-backend/internal/rps"
	"github.com/rocketscienceinc/mindgames-backend/internal/tictactoe"
	appvalidator "github.com/rocketscienceinc/mindgames-backend/internal/validator"
)

const (
	maxMessageSize  = 4096
	cleanupTimeout  = 5 * time.Second
	shutdownTimeout = 5 * time.Second
)

type ticTacToeUseCase interface {
	NewGame(ctx context.Context) (*entity.TicTacToe, error)
	Reset(ctx context.Context, id string, view tictactoe.View) (*entity.TicTacToe, error)
	MakeMove(ctx context.Context, id string, cell int, view tictactoe.View) (*entity.TicTacToe, error)
	EndGame(ctx context.Context, id string) error
}

type rpsUseCase interface {
	NewMatch(ctx context.Context) (*entity.RPSMatch, error)
	Play(ctx context.Context, id string, move rps.Move, view rps.View) (*entity.RPSMatch, error)
	Restart(ctx context.Context, id string, view rps.View) (*entity.RPSMatch, error)
	EndMatch(ctx context.Context, id string) error
}

type handlerFunc func(ctx context.Context, msg *Message, conn *connection) error

type Server struct {
	logger    *slog.Logger
	validate  *validator.Validate
	upgrader  websocket.Upgrader
	ticTacToe ticTacToeUseCase
	rps       rpsUseCase

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, ticTacToe ticTacToeUseCase, matches rpsUseCase) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		validate: appvalidator.GetValidator(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		ticTacToe: ticTacToe,
		rps:       matches,
	}

	server.handlers = map[string]handlerFunc{
		actionTicTacToeNew:   server.handleTicTacToeNew,
		actionTicTacToeMove:  server.handleTicTacToeMove,
		actionTicTacToeReset: server.handleTicTacToeReset,
		actionRPSNew:         server.handleRPSNew,
		actionRPSPlay:        server.handleRPSPlay,
		actionRPSRestart:     server.handleRPSRestart,
	}

	return server
}

// Handler exposes the upgrade endpoint, mainly for tests.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWebSocket)

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown WebSocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWebSocket - upgrades the connection and serves it until the client leaves.
func (that *Server) serveWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWebSocket")

	wsConn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer wsConn.Close()

	wsConn.SetReadLimit(maxMessageSize)

	conn := newConnection(that.logger, wsConn)

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	if err = that.handleMessages(req.Context(), conn); err != nil {
		log.Error("error handling messages", "error", err)
	}

	that.handleDisconnect(req.Context(), conn)
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *connection) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				return nil
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)

			if err = conn.sendError(actionError, "malformed message"); err != nil {
				return err
			}

			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)

			if err = conn.sendError(message.Action, "unknown action"); err != nil {
				return err
			}

			continue
		}

		if err = handler(ctx, &message, conn); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

// handleDisconnect - ends every session the connection started.
func (that *Server) handleDisconnect(ctx context.Context, conn *connection) {
	log := that.logger.With("method", "handleDisconnect")

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	for _, id := range conn.games {
		if err := that.ticTacToe.EndGame(ctx, id); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
			log.Error("failed to end game", "gameID", id, "error", err)
		}
	}

	for _, id := range conn.matches {
		if err := that.rps.EndMatch(ctx, id); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
			log.Error("failed to end match", "matchID", id, "error", err)
		}
	}

	log.Info("player disconnected", "games", len(conn.games), "matches", len(conn.matches))
}
