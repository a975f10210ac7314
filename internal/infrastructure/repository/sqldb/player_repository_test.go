package sqldb

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/caballebrios/nightboard/internal/domain/penalty"
	"github.com/caballebrios/nightboard/internal/domain/player"
)

func TestPlayerCreateListGet(t *testing.T) {
	store := openTestStore(t)
	repo := NewPlayerRepository(store)

	brunoID, err := repo.Create(context.Background(), player.Player{Name: "Bruno", ProfilePic: []byte{0x01, 0x02}})
	if err != nil {
		t.Fatalf("create bruno: %v", err)
	}
	anaID, err := repo.Create(context.Background(), player.Player{Name: "Ana"})
	if err != nil {
		t.Fatalf("create ana: %v", err)
	}

	players, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
	if players[0].Name != "Ana" || players[1].Name != "Bruno" {
		t.Fatalf("expected name order Ana, Bruno, got %s, %s", players[0].Name, players[1].Name)
	}
	if players[0].ID != anaID || players[1].ID != brunoID {
		t.Fatalf("unexpected ids in listing: %+v", players)
	}

	got, found, err := repo.GetByID(context.Background(), brunoID)
	if err != nil {
		t.Fatalf("get bruno: %v", err)
	}
	if !found || got.Name != "Bruno" {
		t.Fatalf("unexpected player: %+v found=%v", got, found)
	}

	if _, found, err := repo.GetByID(context.Background(), 999); err != nil || found {
		t.Fatalf("expected missing player, found=%v err=%v", found, err)
	}
}

func TestPlayerCreateDuplicateName(t *testing.T) {
	store := openTestStore(t)
	repo := NewPlayerRepository(store)

	if _, err := repo.Create(context.Background(), player.Player{Name: "Ana"}); err != nil {
		t.Fatalf("create ana: %v", err)
	}
	_, err := repo.Create(context.Background(), player.Player{Name: "Ana"})
	if !errors.Is(err, player.ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
}

func TestPlayerRename(t *testing.T) {
	store := openTestStore(t)
	repo := NewPlayerRepository(store)

	anaID := seedPlayer(t, store, "Ana")
	seedPlayer(t, store, "Bruno")

	if err := repo.Rename(context.Background(), anaID, "Anita"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	got, _, err := repo.GetByID(context.Background(), anaID)
	if err != nil || got.Name != "Anita" {
		t.Fatalf("expected renamed player, got %+v err=%v", got, err)
	}

	if err := repo.Rename(context.Background(), anaID, "Bruno"); !errors.Is(err, player.ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
	if err := repo.Rename(context.Background(), 999, "Nadie"); err == nil {
		t.Fatal("expected error renaming missing player")
	}
}

func TestPlayerPhotoRoundTrip(t *testing.T) {
	store := openTestStore(t)
	repo := NewPlayerRepository(store)

	anaID := seedPlayer(t, store, "Ana")

	pic, found, err := repo.GetPhoto(context.Background(), anaID)
	if err != nil {
		t.Fatalf("get photo before set: %v", err)
	}
	if !found || pic != nil {
		t.Fatalf("expected empty photo for existing player, found=%v pic=%v", found, pic)
	}

	want := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	if err := repo.SetPhoto(context.Background(), anaID, want); err != nil {
		t.Fatalf("set photo: %v", err)
	}
	pic, found, err = repo.GetPhoto(context.Background(), anaID)
	if err != nil || !found {
		t.Fatalf("get photo: found=%v err=%v", found, err)
	}
	if !bytes.Equal(pic, want) {
		t.Fatalf("unexpected photo bytes: %v", pic)
	}

	if _, found, err := repo.GetPhoto(context.Background(), 999); err != nil || found {
		t.Fatalf("expected missing player photo, found=%v err=%v", found, err)
	}
	if err := repo.SetPhoto(context.Background(), 999, want); err == nil {
		t.Fatal("expected error setting photo for missing player")
	}
}

func TestPlayerDeleteRemovesWinsAndPenalties(t *testing.T) {
	store := openTestStore(t)
	repo := NewPlayerRepository(store)
	nights := NewNightRepository(store)

	anaID := seedPlayer(t, store, "Ana")
	brunoID := seedPlayer(t, store, "Bruno")
	seasonID := seedSeason(t, store, "Temporada 2", "2026-01-10")
	gameID := seedGame(t, store, "Catan", 3)
	nightID := seedNight(t, store, seasonID, "2026-01-15")
	roundID := seedRound(t, store, nightID, gameID, 1, anaID, brunoID)
	seedPenalty(t, store, nightID, anaID, penalty.TypeAbsence, 10, "")

	if err := repo.Delete(context.Background(), anaID); err != nil {
		t.Fatalf("delete player: %v", err)
	}

	if _, found, err := repo.GetByID(context.Background(), anaID); err != nil || found {
		t.Fatalf("expected player gone, found=%v err=%v", found, err)
	}

	round, found, err := nights.GetRound(context.Background(), roundID)
	if err != nil || !found {
		t.Fatalf("round should survive player delete: found=%v err=%v", found, err)
	}
	if len(round.WinnerIDs) != 1 || round.WinnerIDs[0] != brunoID {
		t.Fatalf("expected only bruno left as winner, got %v", round.WinnerIDs)
	}

	penalties, err := NewPenaltyRepository(store).ListByNight(context.Background(), nightID)
	if err != nil {
		t.Fatalf("list penalties: %v", err)
	}
	if len(penalties) != 0 {
		t.Fatalf("expected player penalties removed, got %d", len(penalties))
	}
}

func TestPlayerDeleteMissing(t *testing.T) {
	store := openTestStore(t)

	if err := NewPlayerRepository(store).Delete(context.Background(), 999); err == nil {
		t.Fatal("expected error deleting missing player")
	}
}
