package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/caballebrios/nightboard/internal/domain/night"
	"github.com/caballebrios/nightboard/internal/domain/penalty"
	"github.com/caballebrios/nightboard/internal/domain/player"
	"github.com/caballebrios/nightboard/internal/domain/settings"
)

type PenaltyService struct {
	penaltyRepo  penalty.Repository
	nightRepo    night.Repository
	playerRepo   player.Repository
	settingsRepo settings.Repository
}

func NewPenaltyService(
	penaltyRepo penalty.Repository,
	nightRepo night.Repository,
	playerRepo player.Repository,
	settingsRepo settings.Repository,
) *PenaltyService {
	return &PenaltyService{
		penaltyRepo:  penaltyRepo,
		nightRepo:    nightRepo,
		playerRepo:   playerRepo,
		settingsRepo: settingsRepo,
	}
}

// PenaltyInput carries a penalty to record. A nil Amount takes the
// club-wide default from settings.
type PenaltyInput struct {
	NightID  int64
	PlayerID int64
	Type     penalty.Type
	Amount   *float64
	Reason   string
}

func (s *PenaltyService) AddPenalty(ctx context.Context, in PenaltyInput) (penalty.Penalty, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PenaltyService.AddPenalty")
	defer span.End()

	if in.NightID < 1 {
		return penalty.Penalty{}, fmt.Errorf("%w: night id is required", ErrInvalidInput)
	}
	if in.PlayerID < 1 {
		return penalty.Penalty{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, exists, err := s.nightRepo.GetByID(ctx, in.NightID)
	if err != nil {
		return penalty.Penalty{}, fmt.Errorf("get night: %w", err)
	}
	if !exists {
		return penalty.Penalty{}, fmt.Errorf("%w: night=%d", ErrNotFound, in.NightID)
	}
	_, exists, err = s.playerRepo.GetByID(ctx, in.PlayerID)
	if err != nil {
		return penalty.Penalty{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return penalty.Penalty{}, fmt.Errorf("%w: player=%d", ErrNotFound, in.PlayerID)
	}

	amount, err := s.resolveAmount(ctx, in.Amount)
	if err != nil {
		return penalty.Penalty{}, err
	}

	p := penalty.Penalty{
		NightID:  in.NightID,
		PlayerID: in.PlayerID,
		Type:     in.Type,
		Amount:   amount,
		Reason:   strings.TrimSpace(in.Reason),
	}
	if err := p.Validate(); err != nil {
		return penalty.Penalty{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	id, err := s.penaltyRepo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, penalty.ErrMissingReference) {
			return penalty.Penalty{}, fmt.Errorf("%w: %s", ErrNotFound, err)
		}
		return penalty.Penalty{}, fmt.Errorf("create penalty: %w", err)
	}

	p.ID = id
	return p, nil
}

func (s *PenaltyService) resolveAmount(ctx context.Context, amount *float64) (float64, error) {
	if amount != nil {
		return *amount, nil
	}

	raw, exists, err := s.settingsRepo.Get(ctx, settings.KeyDefaultPenaltyAmount)
	if err != nil {
		return 0, fmt.Errorf("get default penalty amount: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: default penalty amount is not configured", ErrDependencyUnavailable)
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("parse default penalty amount %q: %w", raw, err)
	}

	return parsed, nil
}

func (s *PenaltyService) GetPenalty(ctx context.Context, penaltyID int64) (penalty.Penalty, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PenaltyService.GetPenalty")
	defer span.End()

	if penaltyID < 1 {
		return penalty.Penalty{}, fmt.Errorf("%w: penalty id is required", ErrInvalidInput)
	}

	p, exists, err := s.penaltyRepo.GetByID(ctx, penaltyID)
	if err != nil {
		return penalty.Penalty{}, fmt.Errorf("get penalty: %w", err)
	}
	if !exists {
		return penalty.Penalty{}, fmt.Errorf("%w: penalty=%d", ErrNotFound, penaltyID)
	}

	return p, nil
}

func (s *PenaltyService) ListNightPenalties(ctx context.Context, nightID int64) ([]penalty.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PenaltyService.ListNightPenalties")
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

	penalties, err := s.penaltyRepo.ListByNight(ctx, nightID)
	if err != nil {
		return nil, fmt.Errorf("list penalties by night: %w", err)
	}

	return penalties, nil
}

func (s *PenaltyService) ListAllPenalties(ctx context.Context) ([]penalty.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PenaltyService.ListAllPenalties")
	defer span.End()

	penalties, err := s.penaltyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list penalties: %w", err)
	}

	return penalties, nil
}

// UpdatePenalty adjusts amount and reason. The type and the night/player
// references stay as recorded.
func (s *PenaltyService) UpdatePenalty(ctx context.Context, penaltyID int64, amount float64, reason string) (penalty.Penalty, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PenaltyService.UpdatePenalty")
	defer span.End()

	if penaltyID < 1 {
		return penalty.Penalty{}, fmt.Errorf("%w: penalty id is required", ErrInvalidInput)
	}
	if amount < 0 {
		return penalty.Penalty{}, fmt.Errorf("%w: penalty amount must not be negative", ErrInvalidInput)
	}

	p, exists, err := s.penaltyRepo.GetByID(ctx, penaltyID)
	if err != nil {
		return penalty.Penalty{}, fmt.Errorf("get penalty: %w", err)
	}
	if !exists {
		return penalty.Penalty{}, fmt.Errorf("%w: penalty=%d", ErrNotFound, penaltyID)
	}

	reason = strings.TrimSpace(reason)
	if err := s.penaltyRepo.Update(ctx, penaltyID, amount, reason); err != nil {
		return penalty.Penalty{}, fmt.Errorf("update penalty: %w", err)
	}

	p.Amount = amount
	p.Reason = reason
	return p, nil
}

func (s *PenaltyService) DeletePenalty(ctx context.Context, penaltyID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PenaltyService.DeletePenalty")
	defer span.End()

	if penaltyID < 1 {
		return fmt.Errorf("%w: penalty id is required", ErrInvalidInput)
	}

	_, exists, err := s.penaltyRepo.GetByID(ctx, penaltyID)
	if err != nil {
		return fmt.Errorf("get penalty: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: penalty=%d", ErrNotFound, penaltyID)
	}

	if err := s.penaltyRepo.Delete(ctx, penaltyID); err != nil {
		return fmt.Errorf("delete penalty: %w", err)
	}

	return nil
}
