package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/mindgames-backend/internal/entity"
	"github.com/rocketscienceinc/mindgames-backend/internal/rps"
)

type RPSUseCase interface {
	NewMatch(ctx context.Context) (*entity.RPSMatch, error)
	GetMatch(ctx context.Context, id string) (*entity.RPSMatch, error)
	Play(ctx context.Context, id string, move rps.Move, view rps.View) (*entity.RPSMatch, error)
	Restart(ctx context.Context, id string, view rps.View) (*entity.RPSMatch, error)
	EndMatch(ctx context.Context, id string) error
}

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.RPSMatch) error
	GetByID(ctx context.Context, id string) (*entity.RPSMatch, error)
	Update(ctx context.Context, id string, fn func(match *entity.RPSMatch) error) (*entity.RPSMatch, error)
	DeleteByID(ctx context.Context, id string) error
}

// lockedPredictor shares one predictor between concurrent requests.
type lockedPredictor struct {
	mu        sync.Mutex
	predictor rps.Predictor
}

func (that *lockedPredictor) Predict(history []rps.Move) rps.Move {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.predictor.Predict(history)
}

type rpsUseCase struct {
	logger    *slog.Logger
	matchRepo matchRepo
	predictor rps.Predictor

	rounds   metric.Int64Counter
	finished metric.Int64Counter
}

func NewRPSUseCase(logger *slog.Logger, matchRepo matchRepo, predictor rps.Predictor) RPSUseCase {
	log := logger.With("component", "rps")

	rounds, err := meter.Int64Counter("rps.rounds", metric.WithDescription("Rounds played by outcome"))
	if err != nil {
		log.Warn("failed to create rounds counter", "error", err)
		rounds = noop.Int64Counter{}
	}

	finished, err := meter.Int64Counter("rps.matches.finished", metric.WithDescription("Matches that reached the winning score"))
	if err != nil {
		log.Warn("failed to create finished counter", "error", err)
		finished = noop.Int64Counter{}
	}

	return &rpsUseCase{
		logger:    log,
		matchRepo: matchRepo,
		predictor: &lockedPredictor{predictor: predictor},
		rounds:    rounds,
		finished:  finished,
	}
}

func (that *rpsUseCase) NewMatch(ctx context.Context) (*entity.RPSMatch, error) {
	log := that.logger.With("method", "NewMatch")

	ctx, span := tracer.Start(ctx, "RPS.NewMatch")
	defer span.End()

	match := entity.NewRPSMatch(uuid.NewString())
	span.SetAttributes(attribute.String("match.id", match.ID))

	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create match")
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	log.Info("match created", "matchID", match.ID)

	return match, nil
}

func (that *rpsUseCase) GetMatch(ctx context.Context, id string) (*entity.RPSMatch, error) {
	ctx, span := tracer.Start(ctx, "RPS.GetMatch", trace.WithAttributes(attribute.String("match.id", id)))
	defer span.End()

	match, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

// Play - resolves one round against the predictor.
// A round after the match is over is not an error: the state comes back with Applied set to false.
func (that *rpsUseCase) Play(ctx context.Context, id string, move rps.Move, view rps.View) (*entity.RPSMatch, error) {
	log := that.logger.With("method", "Play", "matchID", id)

	ctx, span := tracer.Start(ctx, "RPS.Play", trace.WithAttributes(
		attribute.String("match.id", id),
		attribute.String("rps.move", string(move)),
	))
	defer span.End()

	var renders renderBuffer
	match, err := that.matchRepo.Update(ctx, id, func(match *entity.RPSMatch) error {
		renders.reset()

		engine := match.Engine(that.predictor, &renders)
		round, ok := engine.SubmitPlayerMove(move)
		match.Applied = ok
		if ok {
			match.LastRound = &round
		}
		match.Sync(engine)

		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to play round")
		return nil, fmt.Errorf("failed to play round: %w", err)
	}

	renders.replayRPS(view)

	span.SetAttributes(attribute.Bool("move.applied", match.Applied))

	if !match.Applied {
		log.Debug("round ignored", "move", move)
		return match, nil
	}

	that.rounds.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(match.LastRound.Outcome))))

	if match.IsFinished() {
		that.finished.Add(ctx, 1, metric.WithAttributes(attribute.String("winner", match.Winner)))
		log.Info("match finished", "winner", match.Winner)
	}

	return match, nil
}

func (that *rpsUseCase) Restart(ctx context.Context, id string, view rps.View) (*entity.RPSMatch, error) {
	log := that.logger.With("method", "Restart", "matchID", id)

	ctx, span := tracer.Start(ctx, "RPS.Restart", trace.WithAttributes(attribute.String("match.id", id)))
	defer span.End()

	var renders renderBuffer
	match, err := that.matchRepo.Update(ctx, id, func(match *entity.RPSMatch) error {
		renders.reset()

		engine := match.Engine(that.predictor, &renders)
		engine.Restart()
		match.Sync(engine)
		match.LastRound = nil
		match.Applied = true

		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to restart match")
		return nil, fmt.Errorf("failed to restart match: %w", err)
	}

	renders.replayRPS(view)

	log.Info("match restarted")

	return match, nil
}

func (that *rpsUseCase) EndMatch(ctx context.Context, id string) error {
	log := that.logger.With("method", "EndMatch", "matchID", id)

	ctx, span := tracer.Start(ctx, "RPS.EndMatch", trace.WithAttributes(attribute.String("match.id", id)))
	defer span.End()

	if err := that.matchRepo.DeleteByID(ctx, id); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to end match: %w", err)
	}

	log.Info("match deleted")

	return nil
}
