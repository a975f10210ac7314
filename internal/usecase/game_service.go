package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/caballebrios/nightboard/internal/domain/game"
)

type GameService struct {
	gameRepo game.Repository
}

func NewGameService(gameRepo game.Repository) *GameService {
	return &GameService{gameRepo: gameRepo}
}

func (s *GameService) CreateGame(ctx context.Context, in game.Game) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.CreateGame")
	defer span.End()

	in.ID = 0
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := in.Validate(); err != nil {
		return game.Game{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	id, err := s.gameRepo.Create(ctx, in)
	if err != nil {
		if errors.Is(err, game.ErrNameTaken) {
			return game.Game{}, fmt.Errorf("%w: game name %q is taken", ErrConflict, in.Name)
		}
		return game.Game{}, fmt.Errorf("create game: %w", err)
	}

	in.ID = id
	return in, nil
}

func (s *GameService) ListGames(ctx context.Context) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListGames")
	defer span.End()

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	return games, nil
}

func (s *GameService) GetGame(ctx context.Context, gameID int64) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.GetGame")
	defer span.End()

	if gameID < 1 {
		return game.Game{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	out, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%d", ErrNotFound, gameID)
	}

	return out, nil
}

func (s *GameService) UpdateGame(ctx context.Context, in game.Game) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.UpdateGame")
	defer span.End()

	if in.ID < 1 {
		return game.Game{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := in.Validate(); err != nil {
		return game.Game{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	_, exists, err := s.gameRepo.GetByID(ctx, in.ID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%d", ErrNotFound, in.ID)
	}

	if err := s.gameRepo.Update(ctx, in); err != nil {
		if errors.Is(err, game.ErrNameTaken) {
			return game.Game{}, fmt.Errorf("%w: game name %q is taken", ErrConflict, in.Name)
		}
		return game.Game{}, fmt.Errorf("update game: %w", err)
	}

	return in, nil
}

// DeleteGame removes the game with every round recorded for it, returning
// how many rounds went with it.
func (s *GameService) DeleteGame(ctx context.Context, gameID int64) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.DeleteGame")
	defer span.End()

	if gameID < 1 {
		return 0, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	_, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return 0, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: game=%d", ErrNotFound, gameID)
	}

	removed, err := s.gameRepo.Delete(ctx, gameID)
	if err != nil {
		return 0, fmt.Errorf("delete game: %w", err)
	}

	return removed, nil
}
