package entity

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPlayer   = errors.New("invalid player index")
	ErrNegativeCredit  = errors.New("score credit must not be negative")
	ErrEmptyScoreboard = errors.New("scoreboard has no players")
)

// Scoreboard holds one score per player. Index 0 is the player who places marble 1.
type Scoreboard struct {
	scores []int
}

func NewScoreboard(players int) (*Scoreboard, error) {
	if players <= 0 {
		return nil, fmt.Errorf("%w: %d players", ErrEmptyScoreboard, players)
	}

	return &Scoreboard{scores: make([]int, players)}, nil
}

func (that *Scoreboard) Players() int {
	return len(that.scores)
}

// Credit - adds delta to the score of player.
func (that *Scoreboard) Credit(player, delta int) error {
	if player < 0 || player >= len(that.scores) {
		return fmt.Errorf("%w: player %d", ErrInvalidPlayer, player)
	}

	if delta < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCredit, delta)
	}

	that.scores[player] += delta

	return nil
}

// Score - returns the score of player.
func (that *Scoreboard) Score(player int) (int, error) {
	if player < 0 || player >= len(that.scores) {
		return 0, fmt.Errorf("%w: player %d", ErrInvalidPlayer, player)
	}

	return that.scores[player], nil
}

// Max - returns the highest score on the board.
func (that *Scoreboard) Max() int {
	_, score := that.Leader()
	return score
}

// Leader - returns the lowest index among the top scorers and their score.
func (that *Scoreboard) Leader() (int, int) {
	leader := 0
	for i, score := range that.scores {
		if score > that.scores[leader] {
			leader = i
		}
	}

	return leader, that.scores[leader]
}

// Total - returns the sum of all credited points.
func (that *Scoreboard) Total() int {
	total := 0
	for _, score := range that.scores {
		total += score
	}

	return total
}

// Scores - returns a copy of the per-player scores.
func (that *Scoreboard) Scores() []int {
	return append([]int(nil), that.scores...)
}
