package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/marble-mania/internal/apperror"
	"github.com/rocketscienceinc/marble-mania/internal/entity"
	"github.com/rocketscienceinc/marble-mania/internal/marble"
	"github.com/rocketscienceinc/marble-mania/internal/puzzle"
	"github.com/rocketscienceinc/marble-mania/internal/repository"
)

var errRedisDown = errors.New("redis down")

type mockResultRepo struct {
	mock.Mock
}

func (m *mockResultRepo) CreateOrUpdate(ctx context.Context, result *entity.Result) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *mockResultRepo) GetByGame(ctx context.Context, players, lastMarble int) (*entity.Result, error) {
	args := m.Called(ctx, players, lastMarble)

	result, _ := args.Get(0).(*entity.Result)
	return result, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSolver_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("Simulates and stores a result on cache miss", func(t *testing.T) {
		// Given: an empty cache
		repo := &mockResultRepo{}
		repo.On("GetByGame", mock.Anything, 9, 25).Return(nil, repository.ErrResultNotFound).Once()
		repo.On("CreateOrUpdate", mock.Anything, mock.MatchedBy(func(r *entity.Result) bool {
			return r.Players == 9 && r.LastMarble == 25 && r.HighScore == 32
		})).Return(nil).Once()

		solver := NewSolver(discardLogger(), WithResultRepo(repo))

		// When: playing the example game
		result, err := solver.Play(ctx, 9, 25)

		// Then: the game is simulated and cached
		require.NoError(t, err)
		assert.Equal(t, 32, result.HighScore)
		assert.Equal(t, 4, result.Winner)
		assert.NotEmpty(t, result.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Returns the cached result without simulating", func(t *testing.T) {
		// Given: a cached result with a score no simulation would produce
		cached := &entity.Result{ID: "cached", Players: 9, LastMarble: 25, HighScore: 1}
		repo := &mockResultRepo{}
		repo.On("GetByGame", mock.Anything, 9, 25).Return(cached, nil).Once()

		solver := NewSolver(discardLogger(), WithResultRepo(repo))

		// When: playing the game
		result, err := solver.Play(ctx, 9, 25)

		// Then: the cached result is returned and nothing is stored
		require.NoError(t, err)
		assert.Same(t, cached, result)
		repo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Cache failures do not fail the game", func(t *testing.T) {
		repo := &mockResultRepo{}
		repo.On("GetByGame", mock.Anything, 10, 1618).Return(nil, errRedisDown).Once()
		repo.On("CreateOrUpdate", mock.Anything, mock.Anything).Return(errRedisDown).Once()

		solver := NewSolver(discardLogger(), WithResultRepo(repo))

		result, err := solver.Play(ctx, 10, 1618)

		require.NoError(t, err)
		assert.Equal(t, 8317, result.HighScore)
		repo.AssertExpectations(t)
	})

	t.Run("Works without a repository", func(t *testing.T) {
		solver := NewSolver(discardLogger())

		result, err := solver.Play(ctx, 13, 7999)

		require.NoError(t, err)
		assert.Equal(t, 146373, result.HighScore)
	})

	t.Run("Invalid games are rejected", func(t *testing.T) {
		solver := NewSolver(discardLogger())

		_, err := solver.Play(ctx, 0, 25)

		require.ErrorIs(t, err, apperror.ErrInvalidPlayerCount)
	})

	t.Run("A cancelled context stops the game before it starts", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		solver := NewSolver(discardLogger())

		_, err := solver.Play(cancelled, 9, 25)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSolver_Solve(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays both games and reports progress for the extended one", func(t *testing.T) {
		// Given: a solver with a progress callback
		var reports int
		solver := NewSolver(discardLogger(), WithProgress(20, func(_, last marble.Marble, _ int) {
			assert.Equal(t, marble.Marble(2500), last)
			reports++
		}))

		// When: solving the nine player example with a multiplier of 100
		answers, err := solver.Solve(ctx, puzzle.Input{Players: 9, LastMarble: 25}, 100)

		// Then: both answers are computed and only the extended game reported progress
		require.NoError(t, err)
		assert.Equal(t, 32, answers.Normal.HighScore)
		assert.Equal(t, 2500, answers.Extended.LastMarble)
		assert.Equal(t, 100, answers.Multiplier)
		assert.Equal(t, 20, reports)

		want, err := marble.Simulate(9, 2500)
		require.NoError(t, err)
		assert.Equal(t, want, answers.Extended.HighScore)
	})

	t.Run("Rejects a non-positive multiplier", func(t *testing.T) {
		solver := NewSolver(discardLogger())

		_, err := solver.Solve(ctx, puzzle.Input{Players: 9, LastMarble: 25}, 0)

		require.ErrorIs(t, err, ErrInvalidMultiplier)
	})
}
