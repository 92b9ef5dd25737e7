package websocket

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrGameIDRequired = errors.New("game_id is required")
	ErrCellRequired   = errors.New("cell is required")
)

func (that *Server) handleNewGame(ctx context.Context, payload Payload) (Payload, error) {
	game, err := that.gameUseCase.NewGame(ctx, payload.GridSize)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to create game: %w", err)
	}

	return Payload{Game: game}, nil
}

func (that *Server) handleGetGame(ctx context.Context, payload Payload) (Payload, error) {
	if payload.GameID == "" {
		return Payload{}, ErrGameIDRequired
	}

	game, err := that.gameUseCase.GetGame(ctx, payload.GameID)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to get game: %w", err)
	}

	return Payload{Game: game, Message: game.Message()}, nil
}

func (that *Server) handleTurn(ctx context.Context, payload Payload) (Payload, error) {
	if payload.GameID == "" {
		return Payload{}, ErrGameIDRequired
	}

	if payload.Cell == nil {
		return Payload{}, ErrCellRequired
	}

	game, err := that.gameUseCase.MakeTurn(ctx, payload.GameID, *payload.Cell)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to make turn: %w", err)
	}

	return Payload{Game: game, Message: game.Message()}, nil
}
