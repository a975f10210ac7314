package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/caballebrios/nightboard/internal/domain/player"
)

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) CreatePlayer(ctx context.Context, name string, photo []byte) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	p := player.Player{Name: strings.TrimSpace(name), ProfilePic: photo}
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	id, err := s.playerRepo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, player.ErrNameTaken) {
			return player.Player{}, fmt.Errorf("%w: player name %q is taken", ErrConflict, p.Name)
		}
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return player.Player{ID: id, Name: p.Name}, nil
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	if playerID < 1 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	return p, nil
}

func (s *PlayerService) RenamePlayer(ctx context.Context, playerID int64, name string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.RenamePlayer")
	defer span.End()

	name = strings.TrimSpace(name)
	if playerID < 1 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	if err := s.playerRepo.Rename(ctx, playerID, name); err != nil {
		if errors.Is(err, player.ErrNameTaken) {
			return player.Player{}, fmt.Errorf("%w: player name %q is taken", ErrConflict, name)
		}
		return player.Player{}, fmt.Errorf("rename player: %w", err)
	}

	return player.Player{ID: playerID, Name: name}, nil
}

func (s *PlayerService) GetPlayerPhoto(ctx context.Context, playerID int64) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerPhoto")
	defer span.End()

	if playerID < 1 {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	photo, exists, err := s.playerRepo.GetPhoto(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("get player photo: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	if len(photo) == 0 {
		return nil, fmt.Errorf("%w: player=%d has no photo", ErrNotFound, playerID)
	}

	return photo, nil
}

func (s *PlayerService) SetPlayerPhoto(ctx context.Context, playerID int64, photo []byte) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SetPlayerPhoto")
	defer span.End()

	if playerID < 1 {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if len(photo) == 0 {
		return fmt.Errorf("%w: photo payload is empty", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	if err := s.playerRepo.SetPhoto(ctx, playerID, photo); err != nil {
		return fmt.Errorf("set player photo: %w", err)
	}

	return nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, playerID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	if playerID < 1 {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}
