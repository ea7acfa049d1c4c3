package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/marble-mania/internal/entity"
	"github.com/rocketscienceinc/marble-mania/internal/marble"
	"github.com/rocketscienceinc/marble-mania/internal/pkg"
	"github.com/rocketscienceinc/marble-mania/internal/puzzle"
	"github.com/rocketscienceinc/marble-mania/internal/repository"
)

var ErrInvalidMultiplier = errors.New("multiplier must be positive")

type resultRepo interface {
	CreateOrUpdate(ctx context.Context, result *entity.Result) error
	GetByGame(ctx context.Context, players, lastMarble int) (*entity.Result, error)
}

type Solver struct {
	logger     *slog.Logger
	resultRepo resultRepo

	progressSteps int
	progress      marble.ProgressFunc
}

type SolverOption func(*Solver)

// WithResultRepo - caches results; without it every game is simulated.
func WithResultRepo(repo resultRepo) SolverOption {
	return func(s *Solver) {
		s.resultRepo = repo
	}
}

// WithProgress - reports progress of the extended game.
func WithProgress(steps int, fn marble.ProgressFunc) SolverOption {
	return func(s *Solver) {
		s.progressSteps = steps
		s.progress = fn
	}
}

func NewSolver(logger *slog.Logger, opts ...SolverOption) *Solver {
	solver := &Solver{
		logger: logger.With("component", "solver"),
	}

	for _, opt := range opts {
		opt(solver)
	}

	return solver
}

// Solve - plays the puzzle game and the same game with the last marble multiplied.
func (that *Solver) Solve(ctx context.Context, input puzzle.Input, multiplier int) (*entity.Answers, error) {
	if multiplier <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMultiplier, multiplier)
	}

	normal, err := that.Play(ctx, input.Players, input.LastMarble)
	if err != nil {
		return nil, fmt.Errorf("failed to play normal game: %w", err)
	}

	var opts []marble.Option
	if that.progress != nil {
		opts = append(opts, marble.WithProgress(that.progressSteps, that.progress))
	}

	extended, err := that.play(ctx, input.Players, input.LastMarble*multiplier, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to play extended game: %w", err)
	}

	return &entity.Answers{
		Normal:     normal,
		Extended:   extended,
		Multiplier: multiplier,
	}, nil
}

// Play - returns the result of one game, from the cache when possible.
func (that *Solver) Play(ctx context.Context, players, lastMarble int) (*entity.Result, error) {
	return that.play(ctx, players, lastMarble)
}

func (that *Solver) play(ctx context.Context, players, lastMarble int, opts ...marble.Option) (*entity.Result, error) {
	log := that.logger.With("method", "play", "players", players, "last_marble", lastMarble)

	if cached, ok := that.getCached(ctx, players, lastMarble); ok {
		log.Debug("result found in cache", "id", cached.ID)
		return cached, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("game not started: %w", err)
	}

	started := time.Now()

	game, err := marble.Play(players, lastMarble, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate game: %w", err)
	}

	winner, highScore := game.Scores().Leader()
	result := &entity.Result{
		ID:         pkg.GenerateRunID(),
		Players:    players,
		LastMarble: lastMarble,
		HighScore:  highScore,
		Winner:     winner,
		Elapsed:    time.Since(started),
	}

	log.Info("game simulated", "id", result.ID, "high_score", highScore, "winner", winner, "elapsed", result.Elapsed)

	that.storeResult(ctx, result)

	return result, nil
}

func (that *Solver) getCached(ctx context.Context, players, lastMarble int) (*entity.Result, bool) {
	if that.resultRepo == nil {
		return nil, false
	}

	result, err := that.resultRepo.GetByGame(ctx, players, lastMarble)
	if err != nil {
		if !errors.Is(err, repository.ErrResultNotFound) {
			that.logger.Warn("failed to read cached result", "error", err)
		}

		return nil, false
	}

	return result, true
}

func (that *Solver) storeResult(ctx context.Context, result *entity.Result) {
	if that.resultRepo == nil {
		return
	}

	if err := that.resultRepo.CreateOrUpdate(ctx, result); err != nil {
		that.logger.Error("failed to store result", "error", err, "id", result.ID)
	}
}
