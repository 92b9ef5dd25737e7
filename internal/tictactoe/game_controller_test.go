package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOngoingGame(t *testing.T, gridSize int) *entity.Game {
	t.Helper()

	game, err := entity.NewGame("123", gridSize)
	require.NoError(t, err)

	return game
}

func TestMakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new game
		game := newOngoingGame(t, 3)

		// When: player X makes a turn
		err := MakeTurn(game, x, 0)
		require.NoError(t, err)

		// Then: the board and the turn should change
		expectedGame := &entity.Game{
			ID:           "123",
			GridSize:     3,
			Board:        entity.Board{x, e, e, e, e, e, e, e, e},
			Turn:         o,
			Status:       entity.StatusOngoing,
			ComputerMove: entity.NoCell,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X has taken cell 0
		game := newOngoingGame(t, 3)
		require.NoError(t, MakeTurn(game, x, 0))

		// When: O tries the same cell
		err := MakeTurn(game, o, 0)

		// Then: ErrCellOccupied must be returned and the turn stays with O
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, o, game.Turn)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game
		game := newOngoingGame(t, 3)

		// When: O moves first
		err := MakeTurn(game, o, 1)

		// Then: ErrNotYourTurn must be returned and the board stays empty
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Len(t, game.Board.EmptyCells(), 9)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		game := newOngoingGame(t, 4)

		// When: the index is past the end of a 4x4 board
		err := MakeTurn(game, x, 16)

		// Then: ErrInvalidCell must be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Invalid Negative Cell", func(t *testing.T) {
		game := newOngoingGame(t, 3)

		err := MakeTurn(game, x, -1)

		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X is one move away from the top row
		game := newOngoingGame(t, 3)
		game.Board = entity.Board{x, x, e, o, o, e, e, e, e}

		// When: X completes the row
		err := MakeTurn(game, x, 2)
		require.NoError(t, err)

		// Then: the game is won by X and no one is to move
		assert.Equal(t, entity.StatusWinX, game.Status)
		assert.Equal(t, entity.EmptyCell, game.Turn)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game that ended in a draw
		game := newOngoingGame(t, 3)
		game.Board = entity.Board{o, x, o, o, x, x, x, o, x}
		game.Status = entity.StatusTie

		// When: X tries to move
		err := MakeTurn(game, x, 3)

		// Then: ErrGameFinished should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}
