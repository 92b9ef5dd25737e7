package entity

import "fmt"

// NoCell marks the absence of a computer move.
const NoCell = -1

// Game is one human-versus-computer match on an N×N grid.
type Game struct {
	ID           string         `json:"id"`
	GridSize     int            `json:"grid_size"`
	Board        Board          `json:"board"`
	Turn         Mark           `json:"player_turn"`
	Status       TerminalStatus `json:"status"`
	ComputerMove int            `json:"computer_move"`
}

func NewGame(id string, gridSize int) (*Game, error) {
	board, err := NewBoard(gridSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Game{
		ID:           id,
		GridSize:     gridSize,
		Board:        board,
		Turn:         PlayerX,
		Status:       StatusOngoing,
		ComputerMove: NoCell,
	}, nil
}

func (that *Game) IsFinished() bool {
	return that.Status.IsTerminal()
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Message returns the outcome text, empty while the game is ongoing.
func (that *Game) Message() string {
	return that.Status.Message()
}
