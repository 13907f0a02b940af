package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/mindgames-backend/internal/entity"
)

type TicTacToeRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.TicTacToe) error
	GetByID(ctx context.Context, id string) (*entity.TicTacToe, error)
	Update(ctx context.Context, id string, fn func(game *entity.TicTacToe) error) (*entity.TicTacToe, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbTicTacToe struct {
	store sessionStore[entity.TicTacToe]
}

// NewTicTacToeRepository - games are stored as JSON under "tictactoe:<id>" and expire after ttl.
func NewTicTacToeRepository(client *redis.Client, ttl time.Duration) TicTacToeRepository {
	return &dbTicTacToe{
		store: sessionStore[entity.TicTacToe]{
			client: client,
			prefix: "tictactoe",
			ttl:    ttl,
		},
	}
}

func (that *dbTicTacToe) CreateOrUpdate(ctx context.Context, game *entity.TicTacToe) error {
	return that.store.set(ctx, game.ID, game)
}

func (that *dbTicTacToe) GetByID(ctx context.Context, id string) (*entity.TicTacToe, error) {
	return that.store.get(ctx, id)
}

func (that *dbTicTacToe) Update(
	ctx context.Context, id string, fn func(game *entity.TicTacToe) error,
) (*entity.TicTacToe, error) {
	return that.store.update(ctx, id, fn)
}

func (that *dbTicTacToe) DeleteByID(ctx context.Context, id string) error {
	return that.store.delete(ctx, id)
}
