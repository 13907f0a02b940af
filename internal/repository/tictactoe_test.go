package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mindgames-backend/internal/apperror"
	"github.com/rocketscienceinc/mindgames-backend/internal/entity"
	"github.com/rocketscienceinc/mindgames-backend/testing/suite"
)

var errRejected = errors.New("rejected")

func TestTicTacToeRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewTicTacToeRepository(st.Storage, time.Hour)

	// Given: a new game
	game := entity.NewTicTacToe("123")

	// When: CreateOrUpdate is called
	err := gameRepo.CreateOrUpdate(ctx, game)

	// Then: the game is stored under its key with a ttl
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "tictactoe:123").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestTicTacToeRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewTicTacToeRepository(st.Storage, time.Hour)

		// Given: a stored game with one exchange played
		game := entity.NewTicTacToe("123")
		engine := game.Engine(nil)
		require.True(t, engine.SubmitHumanMove(4))
		game.Sync(engine)

		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		assert.Equal(t, game.ID, retrievedGame.ID)
		assert.Equal(t, game.Board, retrievedGame.Board)
		assert.Equal(t, game.Status, retrievedGame.Status)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewTicTacToeRepository(st.Storage, time.Hour)

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})
}

func TestTicTacToeRepository_Update(t *testing.T) {
	t.Run("Applies the mutation", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewTicTacToeRepository(st.Storage, time.Hour)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewTicTacToe("123")))

		// When: a move is applied through Update
		updated, err := gameRepo.Update(ctx, "123", func(game *entity.TicTacToe) error {
			engine := game.Engine(nil)
			game.Applied = engine.SubmitHumanMove(0)
			game.Sync(engine)
			return nil
		})

		// Then: the returned and stored states agree
		require.NoError(t, err)
		assert.True(t, updated.Applied)
		assert.Equal(t, "O", updated.Board[0])

		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, updated.Board, stored.Board)
	})

	t.Run("Mutation error leaves the game untouched", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewTicTacToeRepository(st.Storage, time.Hour)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewTicTacToe("123")))

		// When: the mutation fails after changing the record
		_, err := gameRepo.Update(ctx, "123", func(game *entity.TicTacToe) error {
			game.Board[0] = "O"
			return errRejected
		})

		// Then: the error is returned and nothing is written
		require.ErrorIs(t, err, errRejected)

		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Empty(t, stored.Board[0])
	})

	t.Run("Missing game", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewTicTacToeRepository(st.Storage, time.Hour)

		_, err := gameRepo.Update(ctx, "missing", func(*entity.TicTacToe) error { return nil })

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Concurrent writer triggers a retry", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewTicTacToeRepository(st.Storage, time.Hour)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewTicTacToe("123")))

		// Given: another writer changes the key during the first attempt
		attempts := 0
		_, err := gameRepo.Update(ctx, "123", func(game *entity.TicTacToe) error {
			attempts++
			if attempts == 1 {
				other := entity.NewTicTacToe("123")
				other.Board[8] = "X"
				require.NoError(t, gameRepo.CreateOrUpdate(context.Background(), other))
			}

			game.Board[0] = "O"
			return nil
		})

		// Then: the mutation is replayed on the fresh state
		require.NoError(t, err)
		assert.Equal(t, 2, attempts)

		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, "O", stored.Board[0])
		assert.Equal(t, "X", stored.Board[8])
	})

	t.Run("Writer that never stops exhausts the retries", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewTicTacToeRepository(st.Storage, time.Hour)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewTicTacToe("123")))

		// Given: another writer changes the key during every attempt
		attempts := 0
		_, err := gameRepo.Update(ctx, "123", func(game *entity.TicTacToe) error {
			attempts++

			other := entity.NewTicTacToe("123")
			other.Board[8] = "X"
			require.NoError(t, gameRepo.CreateOrUpdate(context.Background(), other))

			game.Board[0] = "O"
			return nil
		})

		// Then: the update gives up with a concurrent write error
		require.ErrorIs(t, err, apperror.ErrConcurrentWrite)
		assert.Equal(t, maxUpdateRetries, attempts)

		// And: only the other writer's state is stored
		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Empty(t, stored.Board[0])
		assert.Equal(t, "X", stored.Board[8])
	})
}

func TestTicTacToeRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewTicTacToeRepository(st.Storage, time.Hour)

		// Given: a stored game
		game := entity.NewTicTacToe("123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: DeleteByID is called with existing ID
		err := gameRepo.DeleteByID(ctx, game.ID)

		// Then: no error should be returned and the game is gone
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewTicTacToeRepository(st.Storage, time.Hour)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}
