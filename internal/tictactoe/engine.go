package tictactoe

import (
	"fmt"
	"math"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	// NoDepthLimit lets the search run until every branch reaches a terminal state.
	NoDepthLimit = -1

	// DefaultCappedDepth is the depth limit for every grid larger than 3×3.
	DefaultCappedDepth = 3

	fullSearchGridSize = 3
)

const (
	ScoreWin  = 10
	ScoreLoss = -10
	// ScoreNeutral covers both a tie and a depth cutoff without a winner.
	ScoreNeutral = 0
)

// Result describes one chosen computer move.
type Result struct {
	Cell  int
	Score int
	// Nodes counts calls to search, root trials excluded.
	Nodes int
	// MaxDepth is the deepest depth value any search call received.
	MaxDepth int
}

// Engine picks moves for the computer (O) with minimax and alpha-beta pruning.
// It holds no state between calls.
type Engine struct {
	cappedDepth int
}

func NewEngine(cappedDepth int) *Engine {
	if cappedDepth <= 0 {
		cappedDepth = DefaultCappedDepth
	}

	return &Engine{
		cappedDepth: cappedDepth,
	}
}

// MaxDepth returns the depth limit used for the grid size.
func (that *Engine) MaxDepth(gridSize int) int {
	if gridSize == fullSearchGridSize {
		return NoDepthLimit
	}

	return that.cappedDepth
}

// ChooseMove returns the cell index of the computer's move. The board is not modified.
func (that *Engine) ChooseMove(board entity.Board, gridSize int) (int, error) {
	result, err := that.Analyze(board, gridSize)
	if err != nil {
		return entity.NoCell, err
	}

	return result.Cell, nil
}

// Analyze runs the same search as ChooseMove and reports its statistics.
func (that *Engine) Analyze(board entity.Board, gridSize int) (Result, error) {
	if err := entity.ValidateBoard(board, gridSize); err != nil {
		return Result{Cell: entity.NoCell}, fmt.Errorf("failed to validate board: %w", err)
	}

	started := time.Now()

	s := newSearcher(board.Clone(), WinningLines(gridSize), that.MaxDepth(gridSize))

	if status := terminalStatus(s.board, s.lines); status.IsTerminal() {
		return Result{Cell: entity.NoCell}, fmt.Errorf("%w: game is %s", apperror.ErrNoLegalMove, status)
	}

	result := s.chooseMove()

	observeSearch(gridSize, result, time.Since(started))

	return result, nil
}

// Search scores the board for the side to move. The board is mutated while searching
// and restored before Search returns. Alpha and beta bound the window of interest;
// pass math.MinInt and math.MaxInt for a full window.
func Search(board entity.Board, gridSize, depth int, maximizing bool, alpha, beta, depthLimit int) int {
	s := newSearcher(board, WinningLines(gridSize), depthLimit)

	return s.search(depth, maximizing, alpha, beta)
}

type searcher struct {
	board      entity.Board
	lines      [][]int
	depthLimit int

	nodes    int
	maxDepth int
}

func newSearcher(board entity.Board, lines [][]int, depthLimit int) *searcher {
	return &searcher{
		board:      board,
		lines:      lines,
		depthLimit: depthLimit,
	}
}

func (that *searcher) chooseMove() Result {
	// A move that wins on the spot is always taken, even when an earlier cell scores the same.
	for cell := range that.board {
		if !that.board.IsEmpty(cell) {
			continue
		}

		won := that.withMark(cell, entity.PlayerO, func() int {
			if hasWon(that.board, that.lines, entity.PlayerO) {
				return ScoreWin
			}
			return ScoreNeutral
		})
		if won == ScoreWin {
			return Result{Cell: cell, Score: ScoreWin}
		}
	}

	result := Result{Cell: entity.NoCell, Score: math.MinInt}

	for cell := range that.board {
		if !that.board.IsEmpty(cell) {
			continue
		}

		score := that.withMark(cell, entity.PlayerO, func() int {
			return that.search(0, false, math.MinInt, math.MaxInt)
		})

		if score > result.Score {
			result.Cell = cell
			result.Score = score
		}
	}

	result.Nodes = that.nodes
	result.MaxDepth = that.maxDepth

	return result
}

func (that *searcher) search(depth int, maximizing bool, alpha, beta int) int {
	that.nodes++
	that.maxDepth = max(that.maxDepth, depth)

	status := terminalStatus(that.board, that.lines)
	if status.IsTerminal() || depth == that.depthLimit {
		return leafScore(status)
	}

	if maximizing {
		best := math.MinInt
		for cell := range that.board {
			if !that.board.IsEmpty(cell) {
				continue
			}

			score := that.withMark(cell, entity.PlayerO, func() int {
				return that.search(depth+1, false, alpha, beta)
			})

			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}

		return best
	}

	best := math.MaxInt
	for cell := range that.board {
		if !that.board.IsEmpty(cell) {
			continue
		}

		score := that.withMark(cell, entity.PlayerX, func() int {
			return that.search(depth+1, true, alpha, beta)
		})

		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}

	return best
}

// withMark places mark on an empty cell for the duration of fn.
func (that *searcher) withMark(cell int, mark entity.Mark, fn func() int) int {
	that.board[cell] = mark
	defer func() {
		that.board[cell] = entity.EmptyCell
	}()

	return fn()
}

func leafScore(status entity.TerminalStatus) int {
	switch status {
	case entity.StatusWinO:
		return ScoreWin
	case entity.StatusWinX:
		return ScoreLoss
	default:
		return ScoreNeutral
	}
}
