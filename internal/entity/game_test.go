package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("Creates an empty ongoing game", func(t *testing.T) {
		// When: a new 4x4 game is created
		game, err := NewGame("123", 4)
		require.NoError(t, err)

		// Then: the game should have the expected initial state
		expectedGame := &Game{
			ID:           "123",
			GridSize:     4,
			Board:        make(Board, 16),
			Turn:         PlayerX,
			Status:       StatusOngoing,
			ComputerMove: NoCell,
		}

		require.Equal(t, expectedGame, game)
		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
		assert.Empty(t, game.Message())
	})

	t.Run("Rejects grid size below minimum", func(t *testing.T) {
		// When: a 2x2 game is requested
		game, err := NewGame("123", 2)

		// Then: ErrInvalidGridSize should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidGridSize)
		assert.Nil(t, game)
	})
}

func TestGame_Message(t *testing.T) {
	tests := map[TerminalStatus]string{
		StatusOngoing: "",
		StatusWinX:    "You win!",
		StatusWinO:    "Computer wins!",
		StatusTie:     "It's a tie!",
	}

	for status, message := range tests {
		t.Run(string(status), func(t *testing.T) {
			// Given: a game in the given status
			game := &Game{Status: status}

			// Then: the outcome text should match
			assert.Equal(t, message, game.Message())
			assert.Equal(t, status != StatusOngoing, game.IsFinished())
		})
	}
}
