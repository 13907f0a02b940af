package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rocketscienceinc/mindgames-backend/internal/entity"
	"github.com/rocketscienceinc/mindgames-backend/internal/rps"
	"github.com/rocketscienceinc/mindgames-backend/internal/tictactoe"
	appvalidator "github.com/rocketscienceinc/mindgames-backend/internal/validator"
)

const shutdownTimeout = 5 * time.Second

type ticTacToeUseCase interface {
	NewGame(ctx context.Context) (*entity.TicTacToe, error)
	GetGame(ctx context.Context, id string) (*entity.TicTacToe, error)
	Reset(ctx context.Context, id string, view tictactoe.View) (*entity.TicTacToe, error)
	MakeMove(ctx context.Context, id string, cell int, view tictactoe.View) (*entity.TicTacToe, error)
	EndGame(ctx context.Context, id string) error
}

type rpsUseCase interface {
	NewMatch(ctx context.Context) (*entity.RPSMatch, error)
	GetMatch(ctx context.Context, id string) (*entity.RPSMatch, error)
	Play(ctx context.Context, id string, move rps.Move, view rps.View) (*entity.RPSMatch, error)
	Restart(ctx context.Context, id string, view rps.View) (*entity.RPSMatch, error)
	EndMatch(ctx context.Context, id string) error
}

type Server struct {
	logger *slog.Logger
	router *gin.Engine

	ticTacToe ticTacToeUseCase
	rps       rpsUseCase
}

func New(logger *slog.Logger, ticTacToe ticTacToeUseCase, matches rpsUseCase) *Server {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := appvalidator.RegisterCustom(v); err != nil {
			logger.Error("failed to register custom validations", "error", err)
		}
	}

	server := &Server{
		logger:    logger.With("component", "rest"),
		router:    gin.New(),
		ticTacToe: ticTacToe,
		rps:       matches,
	}

	server.router.Use(gin.Recovery(), server.logRequest)
	server.routes()

	return server
}

func (that *Server) routes() {
	that.router.GET("/ping", that.ping)

	api := that.router.Group("/api")

	games := api.Group("/tictactoe")
	games.POST("", that.newGame)
	games.GET("/:id", that.getGame)
	games.POST("/:id/moves", that.makeMove)
	games.POST("/:id/reset", that.resetGame)
	games.DELETE("/:id", that.endGame)

	matches := api.Group("/rps")
	matches.POST("", that.newMatch)
	matches.GET("/:id", that.getMatch)
	matches.POST("/:id/plays", that.play)
	matches.POST("/:id/restart", that.restartMatch)
	matches.DELETE("/:id", that.endMatch)
}

// Handler exposes the router, mainly for tests.
func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - serves HTTP on port until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) logRequest(c *gin.Context) {
	start := time.Now()

	c.Next()

	that.logger.Debug("request handled",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	)
}
