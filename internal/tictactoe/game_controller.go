package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MakeTurn places player's mark and re-evaluates the game.
func MakeTurn(game *entity.Game, player entity.Mark, cell int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(game, player, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board[cell] = player
	updateGameStatus(game, player)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, player entity.Mark, cell int) error {
	if cell < 0 || cell >= len(game.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if game.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if !game.Board.IsEmpty(cell) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game, player entity.Mark) {
	game.Status = TerminalStatus(game.Board, game.GridSize)

	if game.IsFinished() {
		game.Turn = entity.EmptyCell
		return
	}

	game.Turn = player.Opponent()
}
