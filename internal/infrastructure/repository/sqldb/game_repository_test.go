package sqldb

import (
	"context"
	"errors"
	"testing"

	"github.com/caballebrios/nightboard/internal/domain/game"
)

func TestGameCreateListGet(t *testing.T) {
	store := openTestStore(t)
	repo := NewGameRepository(store)

	catanID, err := repo.Create(context.Background(), game.Game{Name: "Catan", PointsPerWin: 3, Description: "colonos"})
	if err != nil {
		t.Fatalf("create catan: %v", err)
	}
	asesinoID, err := repo.Create(context.Background(), game.Game{Name: "Asesino", PointsPerWin: 2})
	if err != nil {
		t.Fatalf("create asesino: %v", err)
	}

	games, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
	if games[0].ID != asesinoID || games[1].ID != catanID {
		t.Fatalf("expected name order Asesino, Catan, got %+v", games)
	}

	got, found, err := repo.GetByID(context.Background(), catanID)
	if err != nil || !found {
		t.Fatalf("get catan: found=%v err=%v", found, err)
	}
	if got.Name != "Catan" || got.PointsPerWin != 3 || got.Description != "colonos" {
		t.Fatalf("unexpected game: %+v", got)
	}

	got, _, err = repo.GetByID(context.Background(), asesinoID)
	if err != nil {
		t.Fatalf("get asesino: %v", err)
	}
	if got.Description != "" {
		t.Fatalf("expected empty description, got %q", got.Description)
	}

	if _, found, err := repo.GetByID(context.Background(), 999); err != nil || found {
		t.Fatalf("expected missing game, found=%v err=%v", found, err)
	}
}

func TestGameNameUnique(t *testing.T) {
	store := openTestStore(t)
	repo := NewGameRepository(store)

	seedGame(t, store, "Catan", 3)
	otherID := seedGame(t, store, "Saboteur", 1)

	if _, err := repo.Create(context.Background(), game.Game{Name: "Catan", PointsPerWin: 1}); !errors.Is(err, game.ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken on create, got %v", err)
	}
	err := repo.Update(context.Background(), game.Game{ID: otherID, Name: "Catan", PointsPerWin: 1})
	if !errors.Is(err, game.ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken on update, got %v", err)
	}
}

func TestGameUpdate(t *testing.T) {
	store := openTestStore(t)
	repo := NewGameRepository(store)

	id := seedGame(t, store, "Catan", 3)

	err := repo.Update(context.Background(), game.Game{ID: id, Name: "Catan Junior", PointsPerWin: 2, Description: "para niños"})
	if err != nil {
		t.Fatalf("update game: %v", err)
	}
	got, _, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if got.Name != "Catan Junior" || got.PointsPerWin != 2 || got.Description != "para niños" {
		t.Fatalf("unexpected game after update: %+v", got)
	}

	if err := repo.Update(context.Background(), game.Game{ID: 999, Name: "Nadie", PointsPerWin: 1}); err == nil {
		t.Fatal("expected error updating missing game")
	}
}

func TestGameDeleteRemovesRounds(t *testing.T) {
	store := openTestStore(t)
	repo := NewGameRepository(store)
	nights := NewNightRepository(store)

	anaID := seedPlayer(t, store, "Ana")
	seasonID := seedSeason(t, store, "Temporada 2", "2026-01-10")
	nightID := seedNight(t, store, seasonID, "2026-01-15")

	doomedGame := seedGame(t, store, "Catan", 3)
	keptGame := seedGame(t, store, "Saboteur", 1)
	doomedRound := seedRound(t, store, nightID, doomedGame, 1, anaID)
	seedRound(t, store, nightID, doomedGame, 2)
	keptRound := seedRound(t, store, nightID, keptGame, 3, anaID)

	removed, err := repo.Delete(context.Background(), doomedGame)
	if err != nil {
		t.Fatalf("delete game: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed rounds reported, got %d", removed)
	}

	if _, found, err := repo.GetByID(context.Background(), doomedGame); err != nil || found {
		t.Fatalf("expected game gone, found=%v err=%v", found, err)
	}
	if _, found, err := nights.GetRound(context.Background(), doomedRound); err != nil || found {
		t.Fatalf("expected round gone, found=%v err=%v", found, err)
	}

	var orphanWinners int
	if err := store.DB().GetContext(context.Background(), &orphanWinners, `SELECT COUNT(1) FROM round_winners WHERE round_id = ?`, doomedRound); err != nil {
		t.Fatalf("count orphan winners: %v", err)
	}
	if orphanWinners != 0 {
		t.Fatalf("expected no orphan winner rows, got %d", orphanWinners)
	}

	rounds, err := nights.ListRoundsByNight(context.Background(), nightID)
	if err != nil {
		t.Fatalf("list remaining rounds: %v", err)
	}
	if len(rounds) != 1 || rounds[0].ID != keptRound {
		t.Fatalf("expected only the other game's round left, got %+v", rounds)
	}
}

func TestGameDeleteWithoutRounds(t *testing.T) {
	store := openTestStore(t)
	repo := NewGameRepository(store)

	id := seedGame(t, store, "Catan", 3)
	removed, err := repo.Delete(context.Background(), id)
	if err != nil {
		t.Fatalf("delete game: %v", err)
	}
	if removed != 0 {
		t.Fatalf("expected 0 removed rounds, got %d", removed)
	}

	if _, err := repo.Delete(context.Background(), 999); err == nil {
		t.Fatal("expected error deleting missing game")
	}
}
