package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

type engine interface {
	Analyze(board entity.Board, gridSize int) (tictactoe.Result, error)
}

// Settings bounds the grid sizes a player may pick.
type Settings struct {
	DefaultGridSize int
	MaxGridSize     int
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	engine   engine
	settings Settings
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, engine engine, settings Settings) *GameManager {
	if settings.DefaultGridSize == 0 {
		settings.DefaultGridSize = entity.MinGridSize
	}

	if settings.MaxGridSize == 0 {
		settings.MaxGridSize = entity.MaxGridSize
	}

	return &GameManager{
		logger:   logger.With("component", "gameManager"),
		gameRepo: gameRepo,
		engine:   engine,
		settings: settings,
	}
}

// NewGame starts a game on an empty board. A zero grid size selects the default one.
func (that *GameManager) NewGame(ctx context.Context, gridSize int) (*entity.Game, error) {
	if gridSize == 0 {
		gridSize = that.settings.DefaultGridSize
	}

	if gridSize > that.settings.MaxGridSize {
		return nil, fmt.Errorf("%w: %d is above %d", apperror.ErrInvalidGridSize, gridSize, that.settings.MaxGridSize)
	}

	game, err := entity.NewGame(pkg.GenerateGameID(), gridSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "gridSize", gridSize)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn applies the human move and, unless that ended the game, the computer's reply.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.MakeTurn(game, entity.PlayerX, cell); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	game.ComputerMove = entity.NoCell

	if game.IsOngoing() {
		if err = that.computerTurn(log, game); err != nil {
			return nil, err
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "status", game.Status)
	}

	return game, nil
}

func (that *GameManager) computerTurn(log *slog.Logger, game *entity.Game) error {
	result, err := that.engine.Analyze(game.Board, game.GridSize)
	if err != nil {
		return fmt.Errorf("computer failed to choose a move: %w", err)
	}

	if err = tictactoe.MakeTurn(game, entity.PlayerO, result.Cell); err != nil {
		return fmt.Errorf("computer failed to make turn: %w", err)
	}

	game.ComputerMove = result.Cell

	log.Debug("computer moved", "cell", result.Cell, "score", result.Score, "nodes", result.Nodes)

	return nil
}
