package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/caballebrios/nightboard/internal/domain/night"
	"github.com/caballebrios/nightboard/internal/domain/penalty"
	"github.com/caballebrios/nightboard/internal/domain/player"
	"github.com/caballebrios/nightboard/internal/domain/settings"
)

func newPenaltyServiceFixture() (*PenaltyService, *stubPenaltyRepository, *stubSettingsRepository) {
	penaltyRepo := newStubPenaltyRepository()
	nightRepo := newStubNightRepository()
	nightRepo.nights[1] = night.Night{ID: 1, SeasonID: 1, Date: "2026-02-05"}
	playerRepo := newStubPlayerRepository()
	playerRepo.players[7] = player.Player{ID: 7, Name: "Ana"}
	settingsRepo := newStubSettingsRepository()
	settingsRepo.values[settings.KeyDefaultPenaltyAmount] = "25"

	service := NewPenaltyService(penaltyRepo, nightRepo, playerRepo, settingsRepo)
	return service, penaltyRepo, settingsRepo
}

func TestPenaltyService_AddPenaltyWithExplicitAmount(t *testing.T) {
	t.Parallel()

	service, _, _ := newPenaltyServiceFixture()

	amount := 12.5
	created, err := service.AddPenalty(context.Background(), PenaltyInput{
		NightID:  1,
		PlayerID: 7,
		Type:     penalty.TypeCustom,
		Amount:   &amount,
		Reason:   " llegó tarde ",
	})
	if err != nil {
		t.Fatalf("add penalty: %v", err)
	}
	if created.ID != 1 || created.Amount != 12.5 || created.Reason != "llegó tarde" {
		t.Fatalf("unexpected created penalty: %+v", created)
	}
}

func TestPenaltyService_AddPenaltyUsesDefaultAmount(t *testing.T) {
	t.Parallel()

	service, _, _ := newPenaltyServiceFixture()

	created, err := service.AddPenalty(context.Background(), PenaltyInput{
		NightID:  1,
		PlayerID: 7,
		Type:     penalty.TypeAbsence,
	})
	if err != nil {
		t.Fatalf("add penalty: %v", err)
	}
	if created.Amount != 25 {
		t.Fatalf("expected the configured default amount, got %+v", created)
	}
}

func TestPenaltyService_AddPenaltyWithoutConfiguredDefault(t *testing.T) {
	t.Parallel()

	service, _, settingsRepo := newPenaltyServiceFixture()
	delete(settingsRepo.values, settings.KeyDefaultPenaltyAmount)

	_, err := service.AddPenalty(context.Background(), PenaltyInput{
		NightID:  1,
		PlayerID: 7,
		Type:     penalty.TypeAbsence,
	})
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestPenaltyService_AddPenaltyValidation(t *testing.T) {
	t.Parallel()

	service, _, _ := newPenaltyServiceFixture()

	if _, err := service.AddPenalty(context.Background(), PenaltyInput{NightID: 1, PlayerID: 7, Type: "Multa"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown type, got %v", err)
	}
	if _, err := service.AddPenalty(context.Background(), PenaltyInput{NightID: 404, PlayerID: 7, Type: penalty.TypeAbsence}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing night, got %v", err)
	}
	if _, err := service.AddPenalty(context.Background(), PenaltyInput{NightID: 1, PlayerID: 404, Type: penalty.TypeAbsence}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing player, got %v", err)
	}
}

func TestPenaltyService_UpdatePenalty(t *testing.T) {
	t.Parallel()

	service, _, _ := newPenaltyServiceFixture()

	amount := 10.0
	created, err := service.AddPenalty(context.Background(), PenaltyInput{
		NightID:  1,
		PlayerID: 7,
		Type:     penalty.TypeAbsence,
		Amount:   &amount,
	})
	if err != nil {
		t.Fatalf("add penalty: %v", err)
	}

	updated, err := service.UpdatePenalty(context.Background(), created.ID, 80, "reincidencia")
	if err != nil {
		t.Fatalf("update penalty: %v", err)
	}
	if updated.Amount != 80 || updated.Reason != "reincidencia" {
		t.Fatalf("unexpected updated penalty: %+v", updated)
	}
	if updated.Type != penalty.TypeAbsence {
		t.Fatalf("expected type untouched, got %+v", updated)
	}

	if _, err := service.UpdatePenalty(context.Background(), created.ID, -1, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative amount, got %v", err)
	}
	if _, err := service.UpdatePenalty(context.Background(), 404, 5, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing penalty, got %v", err)
	}
}

func TestPenaltyService_DeletePenalty(t *testing.T) {
	t.Parallel()

	service, penaltyRepo, _ := newPenaltyServiceFixture()

	amount := 10.0
	created, err := service.AddPenalty(context.Background(), PenaltyInput{
		NightID:  1,
		PlayerID: 7,
		Type:     penalty.TypeAbsence,
		Amount:   &amount,
	})
	if err != nil {
		t.Fatalf("add penalty: %v", err)
	}

	if err := service.DeletePenalty(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing penalty, got %v", err)
	}
	if err := service.DeletePenalty(context.Background(), created.ID); err != nil {
		t.Fatalf("delete penalty: %v", err)
	}
	if len(penaltyRepo.penalties) != 0 {
		t.Fatalf("expected no penalties left, got %+v", penaltyRepo.penalties)
	}
}

type stubPenaltyRepository struct {
	penalties map[int64]penalty.Penalty
	nextID    int64
}

func newStubPenaltyRepository() *stubPenaltyRepository {
	return &stubPenaltyRepository{penalties: map[int64]penalty.Penalty{}}
}

func (s *stubPenaltyRepository) Create(_ context.Context, p penalty.Penalty) (int64, error) {
	s.nextID++
	p.ID = s.nextID
	s.penalties[p.ID] = p
	return p.ID, nil
}

func (s *stubPenaltyRepository) GetByID(_ context.Context, penaltyID int64) (penalty.Penalty, bool, error) {
	item, ok := s.penalties[penaltyID]
	return item, ok, nil
}

func (s *stubPenaltyRepository) ListByNight(_ context.Context, nightID int64) ([]penalty.Detail, error) {
	out := make([]penalty.Detail, 0)
	for _, item := range s.penalties {
		if item.NightID == nightID {
			out = append(out, penalty.Detail{Penalty: item})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubPenaltyRepository) List(_ context.Context) ([]penalty.Detail, error) {
	out := make([]penalty.Detail, 0, len(s.penalties))
	for _, item := range s.penalties {
		out = append(out, penalty.Detail{Penalty: item})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubPenaltyRepository) Update(_ context.Context, penaltyID int64, amount float64, reason string) error {
	item := s.penalties[penaltyID]
	item.Amount = amount
	item.Reason = reason
	s.penalties[penaltyID] = item
	return nil
}

func (s *stubPenaltyRepository) Delete(_ context.Context, penaltyID int64) error {
	delete(s.penalties, penaltyID)
	return nil
}

type stubSettingsRepository struct {
	values map[string]string
}

func newStubSettingsRepository() *stubSettingsRepository {
	return &stubSettingsRepository{values: map[string]string{}}
}

func (s *stubSettingsRepository) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *stubSettingsRepository) Set(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}
