package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/caballebrios/nightboard/internal/domain/night"
	"github.com/caballebrios/nightboard/internal/domain/season"
)

type NightService struct {
	nightRepo  night.Repository
	seasonRepo season.Repository
}

func NewNightService(nightRepo night.Repository, seasonRepo season.Repository) *NightService {
	return &NightService{
		nightRepo:  nightRepo,
		seasonRepo: seasonRepo,
	}
}

func (s *NightService) CreateNight(ctx context.Context, in night.Night) (night.Night, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NightService.CreateNight")
	defer span.End()

	in.ID = 0
	in.Notes = strings.TrimSpace(in.Notes)
	if err := in.Validate(); err != nil {
		return night.Night{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	_, exists, err := s.seasonRepo.GetByID(ctx, in.SeasonID)
	if err != nil {
		return night.Night{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return night.Night{}, fmt.Errorf("%w: season=%d", ErrNotFound, in.SeasonID)
	}

	id, err := s.nightRepo.Create(ctx, in)
	if err != nil {
		if errors.Is(err, night.ErrMissingReference) {
			return night.Night{}, fmt.Errorf("%w: season=%d", ErrNotFound, in.SeasonID)
		}
		return night.Night{}, fmt.Errorf("create night: %w", err)
	}

	in.ID = id
	return in, nil
}

func (s *NightService) GetNight(ctx context.Context, nightID int64) (night.Night, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NightService.GetNight")
	defer span.End()

	if nightID < 1 {
		return night.Night{}, fmt.Errorf("%w: night id is required", ErrInvalidInput)
	}

	out, exists, err := s.nightRepo.GetByID(ctx, nightID)
	if err != nil {
		return night.Night{}, fmt.Errorf("get night: %w", err)
	}
	if !exists {
		return night.Night{}, fmt.Errorf("%w: night=%d", ErrNotFound, nightID)
	}

	return out, nil
}

func (s *NightService) ListNightsBySeason(ctx context.Context, seasonID int64) ([]night.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NightService.ListNightsBySeason")
	defer span.End()

	if seasonID < 1 {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}

	nights, err := s.nightRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list nights by season: %w", err)
	}

	return nights, nil
}

func (s *NightService) ListRecentNights(ctx context.Context, seasonID int64, limit int) ([]night.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NightService.ListRecentNights")
	defer span.End()

	if seasonID < 1 {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be at least 1", ErrInvalidInput)
	}

	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}

	nights, err := s.nightRepo.ListRecentBySeason(ctx, seasonID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent nights: %w", err)
	}

	return nights, nil
}

func (s *NightService) DeleteNight(ctx context.Context, nightID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.NightService.DeleteNight")
	defer span.End()

	if nightID < 1 {
		return fmt.Errorf("%w: night id is required", ErrInvalidInput)
	}

	_, exists, err := s.nightRepo.GetByID(ctx, nightID)
	if err != nil {
		return fmt.Errorf("get night: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: night=%d", ErrNotFound, nightID)
	}

	if err := s.nightRepo.Delete(ctx, nightID); err != nil {
		return fmt.Errorf("delete night: %w", err)
	}

	return nil
}

// AddRound records one played round with its winners. A zero RoundNumber
// takes the next free position within the night.
func (s *NightService) AddRound(ctx context.Context, in night.Round) (night.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NightService.AddRound")
	defer span.End()

	in.ID = 0
	in.Notes = strings.TrimSpace(in.Notes)
	if in.NightID < 1 {
		return night.Round{}, fmt.Errorf("%w: night id is required", ErrInvalidInput)
	}

	_, exists, err := s.nightRepo.GetByID(ctx, in.NightID)
	if err != nil {
		return night.Round{}, fmt.Errorf("get night: %w", err)
	}
	if !exists {
		return night.Round{}, fmt.Errorf("%w: night=%d", ErrNotFound, in.NightID)
	}

	if in.RoundNumber == 0 {
		existing, err := s.nightRepo.ListRoundsByNight(ctx, in.NightID)
		if err != nil {
			return night.Round{}, fmt.Errorf("list rounds by night: %w", err)
		}
		in.RoundNumber = len(existing) + 1
	}

	if err := in.Validate(); err != nil {
		return night.Round{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	id, err := s.nightRepo.CreateRound(ctx, in)
	if err != nil {
		if errors.Is(err, night.ErrMissingReference) {
			return night.Round{}, fmt.Errorf("%w: %s", ErrNotFound, err)
		}
		return night.Round{}, fmt.Errorf("create round: %w", err)
	}

	in.ID = id
	return in, nil
}

func (s *NightService) ListRounds(ctx context.Context, nightID int64) ([]night.RoundDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NightService.ListRounds")
	defer span.End()

	if nightID < 1 {
		return nil, fmt.Errorf("%w: night id is required", ErrInvalidInput)
	}

	_, exists, err := s.nightRepo.GetByID(ctx, nightID)
	if err != nil {
		return nil, fmt.Errorf("get night: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: night=%d", ErrNotFound, nightID)
	}

	rounds, err := s.nightRepo.ListRoundsByNight(ctx, nightID)
	if err != nil {
		return nil, fmt.Errorf("list rounds by night: %w", err)
	}

	return rounds, nil
}

func (s *NightService) ListSeasonRounds(ctx context.Context, seasonID int64) ([]night.RoundDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NightService.ListSeasonRounds")
	defer span.End()

	if seasonID < 1 {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}

	rounds, err := s.nightRepo.ListRoundsBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list rounds by season: %w", err)
	}

	return rounds, nil
}

func (s *NightService) DeleteRound(ctx context.Context, roundID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.NightService.DeleteRound")
	defer span.End()

	if roundID < 1 {
		return fmt.Errorf("%w: round id is required", ErrInvalidInput)
	}

	_, exists, err := s.nightRepo.GetRound(ctx, roundID)
	if err != nil {
		return fmt.Errorf("get round: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: round=%d", ErrNotFound, roundID)
	}

	if err := s.nightRepo.DeleteRound(ctx, roundID); err != nil {
		return fmt.Errorf("delete round: %w", err)
	}

	return nil
}
