package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// WinningLines returns the 2N+2 lines of an N×N grid: N rows, N columns,
// the primary diagonal and the anti-diagonal.
func WinningLines(gridSize int) [][]int {
	lines := make([][]int, 0, 2*gridSize+2)

	for row := 0; row < gridSize; row++ {
		line := make([]int, gridSize)
		for col := 0; col < gridSize; col++ {
			line[col] = row*gridSize + col
		}
		lines = append(lines, line)
	}

	for col := 0; col < gridSize; col++ {
		line := make([]int, gridSize)
		for row := 0; row < gridSize; row++ {
			line[row] = row*gridSize + col
		}
		lines = append(lines, line)
	}

	diagonal := make([]int, gridSize)
	antiDiagonal := make([]int, gridSize)
	for i := 0; i < gridSize; i++ {
		diagonal[i] = i*gridSize + i
		// i*N + (N-1-i) == (i+1)*(N-1) for every N.
		antiDiagonal[i] = i*gridSize + (gridSize - 1 - i)
	}

	return append(lines, diagonal, antiDiagonal)
}

// HasWon reports whether any winning line is filled entirely with player's mark.
func HasWon(board entity.Board, gridSize int, player entity.Mark) bool {
	return hasWon(board, WinningLines(gridSize), player)
}

// IsFull reports whether no cell is empty.
func IsFull(board entity.Board) bool {
	for _, mark := range board {
		if mark == entity.EmptyCell {
			return false
		}
	}

	return true
}

// TerminalStatus checks X win, then O win, then a full board.
func TerminalStatus(board entity.Board, gridSize int) entity.TerminalStatus {
	return terminalStatus(board, WinningLines(gridSize))
}

func terminalStatus(board entity.Board, lines [][]int) entity.TerminalStatus {
	switch {
	case hasWon(board, lines, entity.PlayerX):
		return entity.StatusWinX
	case hasWon(board, lines, entity.PlayerO):
		return entity.StatusWinO
	case IsFull(board):
		return entity.StatusTie
	default:
		return entity.StatusOngoing
	}
}

func hasWon(board entity.Board, lines [][]int, player entity.Mark) bool {
	for _, line := range lines {
		if lineOwnedBy(board, line, player) {
			return true
		}
	}

	return false
}

func lineOwnedBy(board entity.Board, line []int, player entity.Mark) bool {
	for _, cell := range line {
		if board[cell] != player {
			return false
		}
	}

	return true
}
