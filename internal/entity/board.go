package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Mark is the content of a single board cell.
type Mark string

const (
	EmptyCell Mark = ""

	// PlayerX is the human player. X always moves first.
	PlayerX Mark = "X"
	// PlayerO is the computer player.
	PlayerO Mark = "O"
)

const (
	MinGridSize = 3
	MaxGridSize = 10
)

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Board is a row-major N×N grid: cell i sits at row i/N, column i%N.
type Board []Mark

// NewBoard returns an empty board for the given grid size.
func NewBoard(gridSize int) (Board, error) {
	if gridSize < MinGridSize {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidGridSize, gridSize)
	}

	return make(Board, gridSize*gridSize), nil
}

// ValidateBoard checks that the board length is exactly gridSize².
func ValidateBoard(board Board, gridSize int) error {
	if gridSize < MinGridSize {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidGridSize, gridSize)
	}

	if len(board) != gridSize*gridSize {
		return fmt.Errorf("%w: board of %d cells does not fit grid size %d", apperror.ErrInvalidGridSize, len(board), gridSize)
	}

	return nil
}

// IsEmpty reports whether the cell holds no mark. It panics on an out of range index.
func (that Board) IsEmpty(cell int) bool {
	return that[cell] == EmptyCell
}

// EmptyCells returns the indices of empty cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, mark := range that {
		if mark == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) Clone() Board {
	clone := make(Board, len(that))
	copy(clone, that)

	return clone
}
