package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScoreboard(t *testing.T) {
	t.Run("Creates zeroed scores for every player", func(t *testing.T) {
		board, err := NewScoreboard(9)

		require.NoError(t, err)
		assert.Equal(t, 9, board.Players())
		assert.Equal(t, make([]int, 9), board.Scores())
	})

	t.Run("Rejects zero players", func(t *testing.T) {
		_, err := NewScoreboard(0)

		require.ErrorIs(t, err, ErrEmptyScoreboard)
	})
}

func TestScoreboard_Credit(t *testing.T) {
	t.Run("Accumulates credits per player", func(t *testing.T) {
		// Given: a board with three players
		board, err := NewScoreboard(3)
		require.NoError(t, err)

		// When: crediting player 1 twice
		require.NoError(t, board.Credit(1, 23))
		require.NoError(t, board.Credit(1, 9))

		// Then: only player 1 has points
		assert.Equal(t, []int{0, 32, 0}, board.Scores())
		assert.Equal(t, 32, board.Total())
	})

	t.Run("Rejects out of range players", func(t *testing.T) {
		board, err := NewScoreboard(3)
		require.NoError(t, err)

		assert.ErrorIs(t, board.Credit(3, 1), ErrInvalidPlayer)
		assert.ErrorIs(t, board.Credit(-1, 1), ErrInvalidPlayer)
	})

	t.Run("Rejects negative credits", func(t *testing.T) {
		board, err := NewScoreboard(3)
		require.NoError(t, err)

		require.ErrorIs(t, board.Credit(0, -5), ErrNegativeCredit)

		score, err := board.Score(0)
		require.NoError(t, err)
		assert.Zero(t, score)
	})
}

func TestScoreboard_Leader(t *testing.T) {
	t.Run("Returns the top scorer", func(t *testing.T) {
		board, err := NewScoreboard(4)
		require.NoError(t, err)
		require.NoError(t, board.Credit(2, 50))
		require.NoError(t, board.Credit(3, 10))

		player, score := board.Leader()

		assert.Equal(t, 2, player)
		assert.Equal(t, 50, score)
		assert.Equal(t, 50, board.Max())
	})

	t.Run("Ties resolve to the lowest index", func(t *testing.T) {
		board, err := NewScoreboard(3)
		require.NoError(t, err)
		require.NoError(t, board.Credit(1, 7))
		require.NoError(t, board.Credit(2, 7))

		player, _ := board.Leader()

		assert.Equal(t, 1, player)
	})

	t.Run("Scores copy is detached", func(t *testing.T) {
		board, err := NewScoreboard(2)
		require.NoError(t, err)

		scores := board.Scores()
		scores[0] = 100

		score, err := board.Score(0)
		require.NoError(t, err)
		assert.Zero(t, score)
	})
}

func TestScoreboard_Score(t *testing.T) {
	t.Run("Returns the credited score", func(t *testing.T) {
		board, err := NewScoreboard(3)
		require.NoError(t, err)
		require.NoError(t, board.Credit(2, 41))

		score, err := board.Score(2)

		require.NoError(t, err)
		assert.Equal(t, 41, score)
	})

	t.Run("Rejects out of range players like Credit does", func(t *testing.T) {
		// Given: a three player board
		board, err := NewScoreboard(3)
		require.NoError(t, err)

		for _, player := range []int{-1, 3, 100} {
			// When: asking for a player that does not exist
			score, err := board.Score(player)

			// Then: an error is returned instead of a panic
			require.ErrorIs(t, err, ErrInvalidPlayer, "player %d", player)
			assert.Zero(t, score)
		}
	})
}
