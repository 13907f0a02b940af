package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/mindgames-backend/internal/entity"
	"github.com/rocketscienceinc/mindgames-backend/internal/tictactoe"
)

type TicTacToeUseCase interface {
	NewGame(ctx context.Context) (*entity.TicTacToe, error)
	GetGame(ctx context.Context, id string) (*entity.TicTacToe, error)
	Reset(ctx context.Context, id string, view tictactoe.View) (*entity.TicTacToe, error)
	MakeMove(ctx context.Context, id string, cell int, view tictactoe.View) (*entity.TicTacToe, error)
	EndGame(ctx context.Context, id string) error
}

type ticTacToeRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.TicTacToe) error
	GetByID(ctx context.Context, id string) (*entity.TicTacToe, error)
	Update(ctx context.Context, id string, fn func(game *entity.TicTacToe) error) (*entity.TicTacToe, error)
	DeleteByID(ctx context.Context, id string) error
}

type ticTacToeUseCase struct {
	logger   *slog.Logger
	gameRepo ticTacToeRepo

	moves    metric.Int64Counter
	finished metric.Int64Counter
}

func NewTicTacToeUseCase(logger *slog.Logger, gameRepo ticTacToeRepo) TicTacToeUseCase {
	log := logger.With("component", "tictactoe")

	moves, err := meter.Int64Counter("tictactoe.moves", metric.WithDescription("Human moves submitted"))
	if err != nil {
		log.Warn("failed to create moves counter", "error", err)
		moves = noop.Int64Counter{}
	}

	finished, err := meter.Int64Counter("tictactoe.games.finished", metric.WithDescription("Games that reached a result"))
	if err != nil {
		log.Warn("failed to create finished counter", "error", err)
		finished = noop.Int64Counter{}
	}

	return &ticTacToeUseCase{
		logger:   log,
		gameRepo: gameRepo,
		moves:    moves,
		finished: finished,
	}
}

func (that *ticTacToeUseCase) NewGame(ctx context.Context) (*entity.TicTacToe, error) {
	log := that.logger.With("method", "NewGame")

	ctx, span := tracer.Start(ctx, "TicTacToe.NewGame")
	defer span.End()

	game := entity.NewTicTacToe(uuid.NewString())
	span.SetAttributes(attribute.String("game.id", game.ID))

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create game")
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("game created", "gameID", game.ID)

	return game, nil
}

func (that *ticTacToeUseCase) GetGame(ctx context.Context, id string) (*entity.TicTacToe, error) {
	ctx, span := tracer.Start(ctx, "TicTacToe.GetGame", trace.WithAttributes(attribute.String("game.id", id)))
	defer span.End()

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *ticTacToeUseCase) Reset(ctx context.Context, id string, view tictactoe.View) (*entity.TicTacToe, error) {
	log := that.logger.With("method", "Reset", "gameID", id)

	ctx, span := tracer.Start(ctx, "TicTacToe.Reset", trace.WithAttributes(attribute.String("game.id", id)))
	defer span.End()

	var renders renderBuffer
	game, err := that.gameRepo.Update(ctx, id, func(game *entity.TicTacToe) error {
		renders.reset()

		engine := game.Engine(&renders)
		engine.Reset()
		game.Sync(engine)
		game.Applied = true

		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to reset game")
		return nil, fmt.Errorf("failed to reset game: %w", err)
	}

	renders.replayTicTacToe(view)

	log.Info("game reset")

	return game, nil
}

// MakeMove - places the human mark at cell and lets the computer reply.
// An ignored move is not an error: the current state comes back with Applied set to false.
func (that *ticTacToeUseCase) MakeMove(
	ctx context.Context, id string, cell int, view tictactoe.View,
) (*entity.TicTacToe, error) {
	log := that.logger.With("method", "MakeMove", "gameID", id)

	ctx, span := tracer.Start(ctx, "TicTacToe.MakeMove", trace.WithAttributes(
		attribute.String("game.id", id),
		attribute.Int("game.cell", cell),
	))
	defer span.End()

	var renders renderBuffer
	game, err := that.gameRepo.Update(ctx, id, func(game *entity.TicTacToe) error {
		renders.reset()

		engine := game.Engine(&renders)
		game.Applied = engine.SubmitHumanMove(cell)
		game.Sync(engine)

		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to make move")
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	renders.replayTicTacToe(view)

	span.SetAttributes(attribute.Bool("move.applied", game.Applied))
	that.moves.Add(ctx, 1, metric.WithAttributes(attribute.Bool("applied", game.Applied)))

	if !game.Applied {
		log.Debug("move ignored", "cell", cell)
		return game, nil
	}

	if game.IsFinished() {
		that.finished.Add(ctx, 1, metric.WithAttributes(attribute.String("winner", game.Winner)))
		log.Info("game finished", "winner", game.Winner)
	}

	return game, nil
}

func (that *ticTacToeUseCase) EndGame(ctx context.Context, id string) error {
	log := that.logger.With("method", "EndGame", "gameID", id)

	ctx, span := tracer.Start(ctx, "TicTacToe.EndGame", trace.WithAttributes(attribute.String("game.id", id)))
	defer span.End()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to end game: %w", err)
	}

	log.Info("game deleted")

	return nil
}
