package memstore

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/mindgames-backend/internal/apperror"
	"github.com/rocketscienceinc/mindgames-backend/internal/entity"
)

// Store is an in-memory stand-in for the Redis repositories, for transport tests.
type Store[T any] struct {
	mu    sync.Mutex
	items map[string]T
	id    func(value *T) string
}

func New[T any](id func(value *T) string) *Store[T] {
	return &Store[T]{
		items: make(map[string]T),
		id:    id,
	}
}

func NewTicTacToe() *Store[entity.TicTacToe] {
	return New(func(game *entity.TicTacToe) string { return game.ID })
}

func NewRPS() *Store[entity.RPSMatch] {
	return New(func(match *entity.RPSMatch) string { return match.ID })
}

func (that *Store[T]) CreateOrUpdate(_ context.Context, value *T) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.items[that.id(value)] = *value

	return nil
}

func (that *Store[T]) GetByID(_ context.Context, id string) (*T, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	value, ok := that.items[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	return &value, nil
}

// Update - holds the lock for the whole mutation, so updates of one store never interleave.
func (that *Store[T]) Update(_ context.Context, id string, fn func(value *T) error) (*T, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	value, ok := that.items[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	if err := fn(&value); err != nil {
		return nil, err
	}

	that.items[id] = value

	return &value, nil
}

func (that *Store[T]) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.items[id]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.items, id)

	return nil
}

func (that *Store[T]) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.items)
}
