package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/rocketscienceinc/mindgames-backend/internal/apperror"
)

// maxUpdateRetries bounds optimistic retries when a watched key changes mid-update.
const maxUpdateRetries = 5

var tracer = otel.Tracer("repository")

// sessionStore keeps one JSON document per id under prefix, expiring after ttl.
// A zero ttl keeps keys until they are deleted.
type sessionStore[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func (that *sessionStore[T]) key(id string) string {
	return that.prefix + ":" + id
}

func (that *sessionStore[T]) set(ctx context.Context, id string, value *T) error {
	ctx, span := tracer.Start(ctx, that.prefix+".set")
	defer span.End()

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal %s: %w", that.prefix, err)
	}

	if err = that.client.Set(ctx, that.key(id), data, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", that.prefix, err)
	}

	return nil
}

func (that *sessionStore[T]) get(ctx context.Context, id string) (*T, error) {
	ctx, span := tracer.Start(ctx, that.prefix+".get")
	defer span.End()

	data, err := that.client.Get(ctx, that.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get %s by id: %w", that.prefix, err)
	}

	var value T
	if err = json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", that.prefix, err)
	}

	return &value, nil
}

// update - loads the document, applies fn and writes it back inside a WATCH transaction.
// fn may run more than once if another writer touches the key in between.
func (that *sessionStore[T]) update(ctx context.Context, id string, fn func(value *T) error) (*T, error) {
	ctx, span := tracer.Start(ctx, that.prefix+".update")
	defer span.End()

	key := that.key(id)

	var result *T
	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return apperror.ErrGameNotFound
		}

		if err != nil {
			return fmt.Errorf("failed to get %s by id: %w", that.prefix, err)
		}

		var value T
		if err = json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", that.prefix, err)
		}

		if err = fn(&value); err != nil {
			return err
		}

		updated, err := json.Marshal(&value)
		if err != nil {
			return fmt.Errorf("could not marshal %s: %w", that.prefix, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, that.ttl)
			return nil
		})
		if err != nil {
			return err //nolint: wrapcheck // TxFailedErr is matched by the caller
		}

		result = &value

		return nil
	}

	for range maxUpdateRetries {
		err := that.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to update %s: %w", that.prefix, err)
		}

		return result, nil
	}

	return nil, fmt.Errorf("%w: %s", apperror.ErrConcurrentWrite, key)
}

func (that *sessionStore[T]) delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, that.prefix+".delete")
	defer span.End()

	deleted, err := that.client.Del(ctx, that.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete %s by id: %w", that.prefix, err)
	}

	if deleted == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}
