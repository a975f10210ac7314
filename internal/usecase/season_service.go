package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/caballebrios/nightboard/internal/domain/season"
)

type SeasonService struct {
	seasonRepo season.Repository
}

func NewSeasonService(seasonRepo season.Repository) *SeasonService {
	return &SeasonService{seasonRepo: seasonRepo}
}

func (s *SeasonService) CreateSeason(ctx context.Context, in season.Season) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.CreateSeason")
	defer span.End()

	in.ID = 0
	in.Name = strings.TrimSpace(in.Name)
	if err := in.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	id, err := s.seasonRepo.Create(ctx, in)
	if err != nil {
		if errors.Is(err, season.ErrNameTaken) {
			return season.Season{}, fmt.Errorf("%w: season name %q is taken", ErrConflict, in.Name)
		}
		return season.Season{}, fmt.Errorf("create season: %w", err)
	}

	in.ID = id
	return in, nil
}

func (s *SeasonService) ListSeasons(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ListSeasons")
	defer span.End()

	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	return seasons, nil
}

func (s *SeasonService) GetSeason(ctx context.Context, seasonID int64) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.GetSeason")
	defer span.End()

	if seasonID < 1 {
		return season.Season{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	out, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}

	return out, nil
}

// GetActiveSeason returns ErrNotFound when no season carries the active
// flag; the club sees that as "create or activate a season first".
func (s *SeasonService) GetActiveSeason(ctx context.Context) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.GetActiveSeason")
	defer span.End()

	out, exists, err := s.seasonRepo.GetActive(ctx)
	if err != nil {
		return season.Season{}, fmt.Errorf("get active season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: no active season", ErrNotFound)
	}

	return out, nil
}

func (s *SeasonService) UpdateSeason(ctx context.Context, in season.Season) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.UpdateSeason")
	defer span.End()

	if in.ID < 1 {
		return season.Season{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := in.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	current, exists, err := s.seasonRepo.GetByID(ctx, in.ID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%d", ErrNotFound, in.ID)
	}

	if err := s.seasonRepo.Update(ctx, in); err != nil {
		if errors.Is(err, season.ErrNameTaken) {
			return season.Season{}, fmt.Errorf("%w: season name %q is taken", ErrConflict, in.Name)
		}
		return season.Season{}, fmt.Errorf("update season: %w", err)
	}

	in.IsActive = current.IsActive
	return in, nil
}

func (s *SeasonService) ActivateSeason(ctx context.Context, seasonID int64) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ActivateSeason")
	defer span.End()

	if seasonID < 1 {
		return season.Season{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	out, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}

	if err := s.seasonRepo.Activate(ctx, seasonID); err != nil {
		return season.Season{}, fmt.Errorf("activate season: %w", err)
	}

	out.IsActive = true
	return out, nil
}

func (s *SeasonService) DeleteSeason(ctx context.Context, seasonID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.DeleteSeason")
	defer span.End()

	if seasonID < 1 {
		return fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}

	if err := s.seasonRepo.Delete(ctx, seasonID); err != nil {
		return fmt.Errorf("delete season: %w", err)
	}

	return nil
}
