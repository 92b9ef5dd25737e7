package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestWinningLines(t *testing.T) {
	for gridSize := entity.MinGridSize; gridSize <= entity.MaxGridSize; gridSize++ {
		// When: generating winning lines for the grid size
		lines := WinningLines(gridSize)

		// Then: there should be 2N+2 lines of N distinct in-range indices
		require.Len(t, lines, 2*gridSize+2)

		for _, line := range lines {
			require.Len(t, line, gridSize)

			seen := make(map[int]struct{}, gridSize)
			for _, cell := range line {
				assert.GreaterOrEqual(t, cell, 0)
				assert.Less(t, cell, gridSize*gridSize)
				seen[cell] = struct{}{}
			}
			assert.Len(t, seen, gridSize)
		}

		// Then: the anti-diagonal should match (i+1)*(N-1)
		antiDiagonal := lines[len(lines)-1]
		for i, cell := range antiDiagonal {
			assert.Equal(t, (i+1)*(gridSize-1), cell)
		}
	}

	t.Run("3x3 lines", func(t *testing.T) {
		expected := [][]int{
			{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
			{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
			{0, 4, 8}, {2, 4, 6},
		}

		assert.Equal(t, expected, WinningLines(3))
	})
}

func TestHasWon(t *testing.T) {
	t.Run("Every complete line wins", func(t *testing.T) {
		for _, gridSize := range []int{3, 4, 7} {
			for _, line := range WinningLines(gridSize) {
				// Given: a board where O owns exactly one line
				board := make(entity.Board, gridSize*gridSize)
				for _, cell := range line {
					board[cell] = o
				}

				// Then: O has won and X has not
				assert.True(t, HasWon(board, gridSize, o), "line %v", line)
				assert.False(t, HasWon(board, gridSize, x), "line %v", line)
			}
		}
	})

	t.Run("No complete line", func(t *testing.T) {
		// Given: a busy board without any complete line
		board := entity.Board{
			x, o, x, e,
			o, x, o, e,
			o, x, e, x,
			e, o, x, o,
		}

		// Then: neither player has won
		assert.False(t, HasWon(board, 4, x))
		assert.False(t, HasWon(board, 4, o))
	})
}

func TestIsFull(t *testing.T) {
	assert.False(t, IsFull(entity.Board{x, o, x, o, x, o, o, x, e}))
	assert.True(t, IsFull(entity.Board{x, o, x, o, x, o, o, x, o}))
}

func TestTerminalStatus(t *testing.T) {
	t.Run("Winner X", func(t *testing.T) {
		// Given: X owns the first column
		board := entity.Board{x, o, e, x, o, e, x, e, e}

		// Then: the status should be a win for X
		require.Equal(t, entity.StatusWinX, TerminalStatus(board, 3))
	})

	t.Run("Winner O on anti-diagonal", func(t *testing.T) {
		// Given: O owns the anti-diagonal of a 4x4 board
		board := entity.Board{
			x, x, e, o,
			x, e, o, e,
			e, o, e, e,
			o, x, e, e,
		}

		// Then: the status should be a win for O
		require.Equal(t, entity.StatusWinO, TerminalStatus(board, 4))
	})

	t.Run("Ongoing Game", func(t *testing.T) {
		// Given: a game where there is no winner yet
		board := entity.Board{x, o, x, e, o, e, x, e, e}

		// Then: the game should continue
		require.Equal(t, entity.StatusOngoing, TerminalStatus(board, 3))
	})

	t.Run("Tie", func(t *testing.T) {
		// Given: a full board without a winner
		board := entity.Board{o, x, o, o, x, x, x, o, x}

		// Then: the game should be declared a tie
		assert.Equal(t, entity.StatusTie, TerminalStatus(board, 3))
	})

	t.Run("X checked before O", func(t *testing.T) {
		// Given: an unreachable board where both players own a row
		board := entity.Board{x, x, x, o, o, o, e, e, e}

		// Then: the X win is reported
		assert.Equal(t, entity.StatusWinX, TerminalStatus(board, 3))
	})

	t.Run("Win on full board", func(t *testing.T) {
		// Given: a full board where X completes the last row
		board := entity.Board{o, x, o, o, x, o, x, x, x}

		// Then: the win takes priority over the tie
		assert.Equal(t, entity.StatusWinX, TerminalStatus(board, 3))
	})
}
