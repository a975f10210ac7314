package sqldb

import (
	"context"
	"errors"
	"testing"

	"github.com/caballebrios/nightboard/internal/domain/penalty"
	"github.com/caballebrios/nightboard/internal/domain/season"
)

func TestSeasonCreateListGet(t *testing.T) {
	store := openTestStore(t)
	repo := NewSeasonRepository(store)

	oldID, err := repo.Create(context.Background(), season.Season{Name: "Temporada 1", StartDate: "2025-04-08", EndDate: "2025-12-03"})
	if err != nil {
		t.Fatalf("create temporada 1: %v", err)
	}
	newID, err := repo.Create(context.Background(), season.Season{Name: "Temporada 2", StartDate: "2026-01-10"})
	if err != nil {
		t.Fatalf("create temporada 2: %v", err)
	}

	seasons, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if len(seasons) != 2 {
		t.Fatalf("expected 2 seasons, got %d", len(seasons))
	}
	if seasons[0].ID != newID || seasons[1].ID != oldID {
		t.Fatalf("expected newest start date first, got %+v", seasons)
	}

	got, found, err := repo.GetByID(context.Background(), oldID)
	if err != nil || !found {
		t.Fatalf("get season: found=%v err=%v", found, err)
	}
	if got.Name != "Temporada 1" || got.StartDate != "2025-04-08" || got.EndDate != "2025-12-03" || got.IsActive {
		t.Fatalf("unexpected season: %+v", got)
	}

	got, _, err = repo.GetByID(context.Background(), newID)
	if err != nil {
		t.Fatalf("get open season: %v", err)
	}
	if got.EndDate != "" {
		t.Fatalf("expected empty end date for open season, got %q", got.EndDate)
	}

	if _, found, err := repo.GetByID(context.Background(), 999); err != nil || found {
		t.Fatalf("expected missing season, found=%v err=%v", found, err)
	}
}

func TestSeasonCreateDuplicateName(t *testing.T) {
	store := openTestStore(t)
	repo := NewSeasonRepository(store)

	seedSeason(t, store, "Temporada 1", "2025-04-08")
	_, err := repo.Create(context.Background(), season.Season{Name: "Temporada 1", StartDate: "2026-01-01"})
	if !errors.Is(err, season.ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
}

func TestSeasonCreateActiveDeactivatesOthers(t *testing.T) {
	store := openTestStore(t)
	repo := NewSeasonRepository(store)

	firstID, err := repo.Create(context.Background(), season.Season{Name: "Temporada 1", StartDate: "2025-04-08", IsActive: true})
	if err != nil {
		t.Fatalf("create first active season: %v", err)
	}
	secondID, err := repo.Create(context.Background(), season.Season{Name: "Temporada 2", StartDate: "2026-01-10", IsActive: true})
	if err != nil {
		t.Fatalf("create second active season: %v", err)
	}

	active, found, err := repo.GetActive(context.Background())
	if err != nil || !found {
		t.Fatalf("get active: found=%v err=%v", found, err)
	}
	if active.ID != secondID {
		t.Fatalf("expected second season active, got %d", active.ID)
	}

	seasons, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	activeCount := 0
	for _, s := range seasons {
		if s.IsActive {
			activeCount++
		}
	}
	if activeCount != 1 {
		t.Fatalf("expected exactly one active season, got %d", activeCount)
	}

	first, _, err := repo.GetByID(context.Background(), firstID)
	if err != nil || first.IsActive {
		t.Fatalf("expected first season deactivated: %+v err=%v", first, err)
	}
}

func TestSeasonActivate(t *testing.T) {
	store := openTestStore(t)
	repo := NewSeasonRepository(store)

	firstID := seedSeason(t, store, "Temporada 1", "2025-04-08")
	secondID, err := repo.Create(context.Background(), season.Season{Name: "Temporada 2", StartDate: "2026-01-10", IsActive: true})
	if err != nil {
		t.Fatalf("create active season: %v", err)
	}

	if err := repo.Activate(context.Background(), firstID); err != nil {
		t.Fatalf("activate: %v", err)
	}

	active, found, err := repo.GetActive(context.Background())
	if err != nil || !found {
		t.Fatalf("get active: found=%v err=%v", found, err)
	}
	if active.ID != firstID {
		t.Fatalf("expected first season active, got %d", active.ID)
	}
	second, _, err := repo.GetByID(context.Background(), secondID)
	if err != nil || second.IsActive {
		t.Fatalf("expected second season deactivated: %+v err=%v", second, err)
	}

	if err := repo.Activate(context.Background(), 999); err == nil {
		t.Fatal("expected error activating missing season")
	}
}

func TestSeasonGetActiveNone(t *testing.T) {
	store := openTestStore(t)

	_, found, err := NewSeasonRepository(store).GetActive(context.Background())
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	if found {
		t.Fatal("expected no active season")
	}
}

func TestSeasonUpdateKeepsActiveFlag(t *testing.T) {
	store := openTestStore(t)
	repo := NewSeasonRepository(store)

	id, err := repo.Create(context.Background(), season.Season{Name: "Temporada 1", StartDate: "2025-04-08", IsActive: true})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}
	seedSeason(t, store, "Temporada 2", "2026-01-10")

	err = repo.Update(context.Background(), season.Season{ID: id, Name: "Temporada Uno", StartDate: "2025-04-01", EndDate: "2025-12-31"})
	if err != nil {
		t.Fatalf("update season: %v", err)
	}

	got, _, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get season: %v", err)
	}
	if got.Name != "Temporada Uno" || got.StartDate != "2025-04-01" || got.EndDate != "2025-12-31" {
		t.Fatalf("unexpected season after update: %+v", got)
	}
	if !got.IsActive {
		t.Fatal("expected update to leave the active flag alone")
	}

	err = repo.Update(context.Background(), season.Season{ID: id, Name: "Temporada 2", StartDate: "2025-04-01"})
	if !errors.Is(err, season.ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
	if err := repo.Update(context.Background(), season.Season{ID: 999, Name: "Nadie", StartDate: "2025-01-01"}); err == nil {
		t.Fatal("expected error updating missing season")
	}
}

func TestSeasonDeleteCascades(t *testing.T) {
	store := openTestStore(t)
	repo := NewSeasonRepository(store)
	nights := NewNightRepository(store)
	penalties := NewPenaltyRepository(store)

	anaID := seedPlayer(t, store, "Ana")
	gameID := seedGame(t, store, "Catan", 3)

	doomedID := seedSeason(t, store, "Temporada 1", "2025-04-08")
	doomedNight := seedNight(t, store, doomedID, "2025-05-01")
	doomedRound := seedRound(t, store, doomedNight, gameID, 1, anaID)
	seedPenalty(t, store, doomedNight, anaID, penalty.TypeAbsence, 10, "")

	keptID := seedSeason(t, store, "Temporada 2", "2026-01-10")
	keptNight := seedNight(t, store, keptID, "2026-01-15")
	keptRound := seedRound(t, store, keptNight, gameID, 1, anaID)

	if err := repo.Delete(context.Background(), doomedID); err != nil {
		t.Fatalf("delete season: %v", err)
	}

	if _, found, err := repo.GetByID(context.Background(), doomedID); err != nil || found {
		t.Fatalf("expected season gone, found=%v err=%v", found, err)
	}
	if _, found, err := nights.GetByID(context.Background(), doomedNight); err != nil || found {
		t.Fatalf("expected night gone, found=%v err=%v", found, err)
	}
	if _, found, err := nights.GetRound(context.Background(), doomedRound); err != nil || found {
		t.Fatalf("expected round gone, found=%v err=%v", found, err)
	}
	all, err := penalties.List(context.Background())
	if err != nil {
		t.Fatalf("list penalties: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected season penalties removed, got %d", len(all))
	}

	round, found, err := nights.GetRound(context.Background(), keptRound)
	if err != nil || !found {
		t.Fatalf("kept round should survive: found=%v err=%v", found, err)
	}
	if len(round.WinnerIDs) != 1 {
		t.Fatalf("kept round winners should survive, got %v", round.WinnerIDs)
	}

	if err := repo.Delete(context.Background(), 999); err == nil {
		t.Fatal("expected error deleting missing season")
	}
}
