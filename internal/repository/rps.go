package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/mindgames-backend/internal/entity"
)

type MatchRepository interface {
	CreateOrUpdate(ctx context.Context, match *entity.RPSMatch) error
	GetByID(ctx context.Context, id string) (*entity.RPSMatch, error)
	Update(ctx context.Context, id string, fn func(match *entity.RPSMatch) error) (*entity.RPSMatch, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbMatch struct {
	store sessionStore[entity.RPSMatch]
}

// NewMatchRepository - matches are stored as JSON under "rps:<id>" and expire after ttl.
func NewMatchRepository(client *redis.Client, ttl time.Duration) MatchRepository {
	return &dbMatch{
		store: sessionStore[entity.RPSMatch]{
			client: client,
			prefix: "rps",
			ttl:    ttl,
		},
	}
}

func (that *dbMatch) CreateOrUpdate(ctx context.Context, match *entity.RPSMatch) error {
	return that.store.set(ctx, match.ID, match)
}

func (that *dbMatch) GetByID(ctx context.Context, id string) (*entity.RPSMatch, error) {
	return that.store.get(ctx, id)
}

func (that *dbMatch) Update(
	ctx context.Context, id string, fn func(match *entity.RPSMatch) error,
) (*entity.RPSMatch, error) {
	return that.store.update(ctx, id, fn)
}

func (that *dbMatch) DeleteByID(ctx context.Context, id string) error {
	return that.store.delete(ctx, id)
}
