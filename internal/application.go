package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rocketscienceinc/marble-mania/internal/config"
	"github.com/rocketscienceinc/marble-mania/internal/entity"
	"github.com/rocketscienceinc/marble-mania/internal/marble"
	"github.com/rocketscienceinc/marble-mania/internal/puzzle"
	"github.com/rocketscienceinc/marble-mania/internal/repository"
	"github.com/rocketscienceinc/marble-mania/internal/repository/storage"
	"github.com/rocketscienceinc/marble-mania/internal/usecase"
	"github.com/rocketscienceinc/marble-mania/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// Streams are where the CLI writes answers and progress.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// RunSolve - solves the puzzle file named in the config and prints both answers.
func RunSolve(logger *slog.Logger, conf *config.Config, streams Streams) error {
	log := logger.With("component", "app")

	ctx, cancel := signalContext(log)
	defer cancel()

	input, err := puzzle.ReadFile(conf.InputPath)
	if err != nil {
		return fmt.Errorf("failed to load puzzle: %w", err)
	}

	solver, closeSolver, err := newSolver(ctx, logger, conf, streams)
	if err != nil {
		return err
	}
	defer closeSolver()

	answers, err := solver.Solve(ctx, input, conf.Simulation.Multiplier)
	if err != nil {
		return fmt.Errorf("failed to solve puzzle: %w", err)
	}

	return PrintAnswers(streams.Out, answers)
}

// RunPlay - plays a single game and prints its high score.
func RunPlay(logger *slog.Logger, conf *config.Config, streams Streams, players, lastMarble int) error {
	log := logger.With("component", "app")

	ctx, cancel := signalContext(log)
	defer cancel()

	solver, closeSolver, err := newSolver(ctx, logger, conf, streams)
	if err != nil {
		return err
	}
	defer closeSolver()

	result, err := solver.Play(ctx, players, lastMarble)
	if err != nil {
		return fmt.Errorf("failed to play game: %w", err)
	}

	return PrintResult(streams.Out, result)
}

// RunServer - serves the HTTP transport until a signal arrives.
func RunServer(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signalContext(log)
	defer cancel()

	solver, closeSolver, err := newSolver(ctx, logger, conf, Streams{Out: io.Discard, Err: io.Discard})
	if err != nil {
		return err
	}
	defer closeSolver()

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err = rest.Start(ctx, conf.HTTPPort, rest.NewHandlers(logger, solver, conf.Simulation.MaxLastMarble)); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// PrintAnswers - writes both puzzle answers with grouped digits.
func PrintAnswers(w io.Writer, answers *entity.Answers) error {
	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "Max normal score: %d\n", answers.Normal.HighScore); err != nil {
		return fmt.Errorf("failed to print answer: %w", err)
	}

	if _, err := p.Fprintf(w, "Max x%d score: %d\n", answers.Multiplier, answers.Extended.HighScore); err != nil {
		return fmt.Errorf("failed to print answer: %w", err)
	}

	return nil
}

// PrintResult - writes a single game result.
func PrintResult(w io.Writer, result *entity.Result) error {
	p := message.NewPrinter(language.English)

	_, err := p.Fprintf(w, "%d players, last marble %d: high score %d by player %d\n",
		result.Players, result.LastMarble, result.HighScore, result.Winner+1)
	if err != nil {
		return fmt.Errorf("failed to print result: %w", err)
	}

	return nil
}

func signalContext(log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigs)
		cancel()
	}
}

func newSolver(ctx context.Context, logger *slog.Logger, conf *config.Config, streams Streams) (*usecase.Solver, func(), error) {
	log := logger.With("component", "app")
	opts := []usecase.SolverOption{
		usecase.WithProgress(conf.Simulation.ProgressSteps, progressReporter(logger, conf, streams.Err)),
	}
	closer := func() {}

	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, storage.ResultCacheOptions{
			Addr:     redisAddrString,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
			Timeout:  conf.Redis.Timeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closer = func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		opts = append(opts, usecase.WithResultRepo(repository.NewResultRepository(redisStorage.Connection, conf.Redis.ResultTTL)))
	}

	return usecase.NewSolver(logger, opts...), closer, nil
}

// progressReporter - renders progress as a bar on w, or as log lines.
func progressReporter(logger *slog.Logger, conf *config.Config, w io.Writer) marble.ProgressFunc {
	log := logger.With("component", "progress")

	if !conf.Simulation.ProgressBar {
		return func(current, last marble.Marble, percent int) {
			log.Info("simulation progress", "percent", percent, "marble", current, "last_marble", last)
		}
	}

	var bar *progressbar.ProgressBar

	return func(_, last marble.Marble, percent int) {
		if bar == nil {
			bar = progressbar.NewOptions(100,
				progressbar.OptionSetWriter(w),
				progressbar.OptionSetDescription(fmt.Sprintf("marbles to %d", last)),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}

		if err := bar.Set(percent); err != nil {
			log.Debug("failed to render progress", "percent", percent, "error", err)
		}

		if percent >= 100 {
			if err := bar.Finish(); err != nil {
				log.Debug("failed to finish progress bar", "error", err)
			}
			bar = nil
		}
	}
}
