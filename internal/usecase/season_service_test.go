package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/caballebrios/nightboard/internal/domain/season"
)

func TestSeasonService_CreateSeason(t *testing.T) {
	t.Parallel()

	repo := newStubSeasonRepository()
	service := NewSeasonService(repo)

	created, err := service.CreateSeason(context.Background(), season.Season{
		Name:      "Temporada 2",
		StartDate: "2026-01-10",
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}
	if created.ID != 1 || !created.IsActive {
		t.Fatalf("unexpected created season: %+v", created)
	}

	if _, err := service.CreateSeason(context.Background(), season.Season{Name: "Temporada 2", StartDate: "2026-02-01"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate name, got %v", err)
	}
	if _, err := service.CreateSeason(context.Background(), season.Season{Name: "Mala", StartDate: "10/01/2026"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for malformed date, got %v", err)
	}
}

func TestSeasonService_CreateActiveSeasonDeactivatesOthers(t *testing.T) {
	t.Parallel()

	repo := newStubSeasonRepository()
	service := NewSeasonService(repo)

	first, err := service.CreateSeason(context.Background(), season.Season{Name: "Primera", StartDate: "2026-01-01", IsActive: true})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}
	second, err := service.CreateSeason(context.Background(), season.Season{Name: "Segunda", StartDate: "2026-06-01", IsActive: true})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}

	active, err := service.GetActiveSeason(context.Background())
	if err != nil {
		t.Fatalf("get active season: %v", err)
	}
	if active.ID != second.ID {
		t.Fatalf("expected season %d active, got %+v", second.ID, active)
	}

	got, err := service.GetSeason(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("get season: %v", err)
	}
	if got.IsActive {
		t.Fatalf("expected first season deactivated, got %+v", got)
	}
}

func TestSeasonService_GetActiveSeasonNone(t *testing.T) {
	t.Parallel()

	service := NewSeasonService(newStubSeasonRepository())

	if _, err := service.GetActiveSeason(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound without an active season, got %v", err)
	}
}

func TestSeasonService_ActivateSeason(t *testing.T) {
	t.Parallel()

	repo := newStubSeasonRepository()
	service := NewSeasonService(repo)

	first, err := service.CreateSeason(context.Background(), season.Season{Name: "Primera", StartDate: "2026-01-01", IsActive: true})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}
	second, err := service.CreateSeason(context.Background(), season.Season{Name: "Segunda", StartDate: "2026-06-01"})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}

	activated, err := service.ActivateSeason(context.Background(), second.ID)
	if err != nil {
		t.Fatalf("activate season: %v", err)
	}
	if !activated.IsActive {
		t.Fatalf("expected activated season flagged, got %+v", activated)
	}

	got, err := service.GetSeason(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("get season: %v", err)
	}
	if got.IsActive {
		t.Fatalf("expected first season deactivated, got %+v", got)
	}

	if _, err := service.ActivateSeason(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing season, got %v", err)
	}
}

func TestSeasonService_UpdateSeasonKeepsActiveFlag(t *testing.T) {
	t.Parallel()

	repo := newStubSeasonRepository()
	service := NewSeasonService(repo)

	created, err := service.CreateSeason(context.Background(), season.Season{Name: "Primera", StartDate: "2026-01-01", IsActive: true})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}

	updated, err := service.UpdateSeason(context.Background(), season.Season{
		ID:        created.ID,
		Name:      "Primera Revisada",
		StartDate: "2026-01-05",
		EndDate:   "2026-12-01",
		// The caller cannot flip the flag through an update.
		IsActive: false,
	})
	if err != nil {
		t.Fatalf("update season: %v", err)
	}
	if updated.Name != "Primera Revisada" || updated.EndDate != "2026-12-01" {
		t.Fatalf("unexpected updated season: %+v", updated)
	}
	if !updated.IsActive {
		t.Fatalf("expected active flag preserved, got %+v", updated)
	}

	if _, err := service.UpdateSeason(context.Background(), season.Season{ID: 404, Name: "Nadie", StartDate: "2026-01-01"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing season, got %v", err)
	}
}

func TestSeasonService_DeleteSeason(t *testing.T) {
	t.Parallel()

	repo := newStubSeasonRepository()
	service := NewSeasonService(repo)

	created, err := service.CreateSeason(context.Background(), season.Season{Name: "Primera", StartDate: "2026-01-01"})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}

	if err := service.DeleteSeason(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing season, got %v", err)
	}
	if err := service.DeleteSeason(context.Background(), created.ID); err != nil {
		t.Fatalf("delete season: %v", err)
	}

	seasons, err := service.ListSeasons(context.Background())
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if len(seasons) != 0 {
		t.Fatalf("expected no seasons left, got %+v", seasons)
	}
}

type stubSeasonRepository struct {
	seasons map[int64]season.Season
	nextID  int64
}

func newStubSeasonRepository() *stubSeasonRepository {
	return &stubSeasonRepository{seasons: map[int64]season.Season{}}
}

func (s *stubSeasonRepository) Create(_ context.Context, in season.Season) (int64, error) {
	for _, existing := range s.seasons {
		if existing.Name == in.Name {
			return 0, season.ErrNameTaken
		}
	}
	if in.IsActive {
		s.deactivateAll()
	}
	s.nextID++
	in.ID = s.nextID
	s.seasons[in.ID] = in
	return in.ID, nil
}

func (s *stubSeasonRepository) List(_ context.Context) ([]season.Season, error) {
	out := make([]season.Season, 0, len(s.seasons))
	for _, item := range s.seasons {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate > out[j].StartDate })
	return out, nil
}

func (s *stubSeasonRepository) GetByID(_ context.Context, seasonID int64) (season.Season, bool, error) {
	item, ok := s.seasons[seasonID]
	return item, ok, nil
}

func (s *stubSeasonRepository) GetActive(_ context.Context) (season.Season, bool, error) {
	for _, item := range s.seasons {
		if item.IsActive {
			return item, true, nil
		}
	}
	return season.Season{}, false, nil
}

func (s *stubSeasonRepository) Update(_ context.Context, in season.Season) error {
	for id, existing := range s.seasons {
		if id != in.ID && existing.Name == in.Name {
			return season.ErrNameTaken
		}
	}
	current := s.seasons[in.ID]
	current.Name = in.Name
	current.StartDate = in.StartDate
	current.EndDate = in.EndDate
	s.seasons[in.ID] = current
	return nil
}

func (s *stubSeasonRepository) Activate(_ context.Context, seasonID int64) error {
	s.deactivateAll()
	item := s.seasons[seasonID]
	item.IsActive = true
	s.seasons[seasonID] = item
	return nil
}

func (s *stubSeasonRepository) Delete(_ context.Context, seasonID int64) error {
	delete(s.seasons, seasonID)
	return nil
}

func (s *stubSeasonRepository) deactivateAll() {
	for id, item := range s.seasons {
		item.IsActive = false
		s.seasons[id] = item
	}
}
