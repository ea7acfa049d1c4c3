package marble

import (
	"fmt"

	"github.com/rocketscienceinc/marble-mania/internal/apperror"
	"github.com/rocketscienceinc/marble-mania/internal/entity"
	"github.com/rocketscienceinc/marble-mania/internal/pkg"
)

const (
	// SpecialDivisor marks the marbles that score instead of being placed.
	SpecialDivisor = 23

	insertOffset = 1
	removeOffset = -7

	// maxPreallocNodes bounds the arena reserved up front; larger games grow it by append.
	maxPreallocNodes = 1 << 20
)

// ProgressFunc receives the marble just played, the last marble and the
// percentage of the game completed.
type ProgressFunc func(marble, last Marble, percent int)

type Option func(*Game)

// WithProgress reports progress steps times over the course of the game.
func WithProgress(steps int, fn ProgressFunc) Option {
	return func(g *Game) {
		if steps <= 0 || fn == nil {
			return
		}

		g.progress = fn
		g.progressEvery = Marble((int(g.last) + steps - 1) / steps)
	}
}

// Game is the state of one run: the circle, the current marble and the scores.
type Game struct {
	ring    *Ring
	current NodeID
	scores  *entity.Scoreboard

	marble Marble
	last   Marble

	progress      ProgressFunc
	progressEvery Marble
}

func NewGame(players, last int, opts ...Option) (*Game, error) {
	if players <= 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayerCount, players)
	}

	if last < 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidLastMarble, last)
	}

	scores, err := entity.NewScoreboard(players)
	if err != nil {
		return nil, fmt.Errorf("failed to create scoreboard: %w", err)
	}

	// roughly 2 of every 23 turns remove a marble
	ring, current := NewWithCapacity(0, min(last+1-2*(last/SpecialDivisor), maxPreallocNodes))

	game := &Game{
		ring:    ring,
		current: current,
		scores:  scores,
		last:    Marble(last),
	}

	for _, opt := range opts {
		opt(game)
	}

	return game, nil
}

// Simulate plays a whole game and returns the highest score.
func Simulate(players, last int, opts ...Option) (int, error) {
	game, err := Play(players, last, opts...)
	if err != nil {
		return 0, err
	}

	return game.Scores().Max(), nil
}

// Play plays a whole game and returns it for inspection.
func Play(players, last int, opts ...Option) (*Game, error) {
	game, err := NewGame(players, last, opts...)
	if err != nil {
		return nil, err
	}

	if err = game.Run(); err != nil {
		return nil, err
	}

	return game, nil
}

// Run plays every remaining turn.
func (that *Game) Run() error {
	for !that.Finished() {
		if err := that.Turn(); err != nil {
			return err
		}
	}

	return nil
}

// Turn plays the next marble.
func (that *Game) Turn() error {
	if that.Finished() {
		return nil
	}

	that.marble++
	marble := that.marble

	player, err := pkg.NonNegativeMod(int(marble)-1, that.scores.Players())
	if err != nil {
		return fmt.Errorf("turn %d: %w", marble, err)
	}

	if marble%SpecialDivisor == 0 {
		if err = that.score(player, marble); err != nil {
			return fmt.Errorf("turn %d: %w", marble, err)
		}
	} else {
		that.current = that.ring.InsertAfter(that.ring.Shift(that.current, insertOffset), marble)
	}

	that.reportProgress()

	return nil
}

func (that *Game) score(player int, marble Marble) error {
	target := that.ring.Shift(that.current, removeOffset)
	removed := that.ring.Value(target)

	next, err := that.ring.Remove(target)
	if err != nil {
		return fmt.Errorf("failed to remove marble %d: %w", removed, err)
	}

	if err = that.scores.Credit(player, int(marble+removed)); err != nil {
		return fmt.Errorf("failed to credit player %d: %w", player, err)
	}

	that.current = next

	return nil
}

func (that *Game) reportProgress() {
	if that.progress == nil || that.marble%that.progressEvery != 0 {
		return
	}

	that.progress(that.marble, that.last, int(100*int64(that.marble)/int64(that.last)))
}

func (that *Game) Finished() bool {
	return that.marble >= that.last
}

// Marble returns the last marble played.
func (that *Game) Marble() Marble {
	return that.marble
}

// Current returns the value of the current marble.
func (that *Game) Current() Marble {
	return that.ring.Value(that.current)
}

// Circle returns the marbles in clockwise order starting at the current one.
func (that *Game) Circle() []Marble {
	return that.ring.Values(that.current)
}

func (that *Game) Scores() *entity.Scoreboard {
	return that.scores
}
