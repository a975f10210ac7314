package sqldb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/caballebrios/nightboard/internal/domain/game"
	"github.com/caballebrios/nightboard/internal/domain/night"
	"github.com/caballebrios/nightboard/internal/domain/penalty"
	"github.com/caballebrios/nightboard/internal/domain/player"
	"github.com/caballebrios/nightboard/internal/domain/season"
	"github.com/caballebrios/nightboard/internal/domain/settings"
	"github.com/caballebrios/nightboard/internal/platform/sqldialect"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, _ := openTestStoreWithPath(t)
	return store
}

func openTestStoreWithPath(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nightboard.db")
	db, err := openSQLite(context.Background(), Options{SQLitePath: path})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("close database: %v", err)
		}
	})

	store := NewStore(db, sqldialect.SQLite)
	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return store, path
}

func seedPlayer(t *testing.T, store *Store, name string) int64 {
	t.Helper()
	id, err := NewPlayerRepository(store).Create(context.Background(), player.Player{Name: name})
	if err != nil {
		t.Fatalf("seed player %s: %v", name, err)
	}
	return id
}

func seedSeason(t *testing.T, store *Store, name, startDate string) int64 {
	t.Helper()
	id, err := NewSeasonRepository(store).Create(context.Background(), season.Season{Name: name, StartDate: startDate})
	if err != nil {
		t.Fatalf("seed season %s: %v", name, err)
	}
	return id
}

func seedGame(t *testing.T, store *Store, name string, pointsPerWin int) int64 {
	t.Helper()
	id, err := NewGameRepository(store).Create(context.Background(), game.Game{Name: name, PointsPerWin: pointsPerWin})
	if err != nil {
		t.Fatalf("seed game %s: %v", name, err)
	}
	return id
}

func seedNight(t *testing.T, store *Store, seasonID int64, date string) int64 {
	t.Helper()
	id, err := NewNightRepository(store).Create(context.Background(), night.Night{SeasonID: seasonID, Date: date})
	if err != nil {
		t.Fatalf("seed night %s: %v", date, err)
	}
	return id
}

func seedRound(t *testing.T, store *Store, nightID, gameID int64, number int, winnerIDs ...int64) int64 {
	t.Helper()
	id, err := NewNightRepository(store).CreateRound(context.Background(), night.Round{
		NightID:     nightID,
		GameID:      gameID,
		RoundNumber: number,
		WinnerIDs:   winnerIDs,
	})
	if err != nil {
		t.Fatalf("seed round %d: %v", number, err)
	}
	return id
}

func seedPenalty(t *testing.T, store *Store, nightID, playerID int64, penaltyType penalty.Type, amount float64, reason string) int64 {
	t.Helper()
	id, err := NewPenaltyRepository(store).Create(context.Background(), penalty.Penalty{
		NightID:  nightID,
		PlayerID: playerID,
		Type:     penaltyType,
		Amount:   amount,
		Reason:   reason,
	})
	if err != nil {
		t.Fatalf("seed penalty: %v", err)
	}
	return id
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	store := openTestStore(t)

	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("second ensure schema: %v", err)
	}

	value, found, err := NewSettingsRepository(store).Get(context.Background(), settings.KeyDefaultPenaltyAmount)
	if err != nil {
		t.Fatalf("get default penalty amount: %v", err)
	}
	if !found || value != "10" {
		t.Fatalf("expected seeded default penalty amount 10, got %q found=%v", value, found)
	}
}

func TestEnsureSchemaKeepsChangedSetting(t *testing.T) {
	store := openTestStore(t)
	repo := NewSettingsRepository(store)

	if err := repo.Set(context.Background(), settings.KeyDefaultPenaltyAmount, "25"); err != nil {
		t.Fatalf("set default penalty amount: %v", err)
	}
	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("re-run ensure schema: %v", err)
	}

	value, found, err := repo.Get(context.Background(), settings.KeyDefaultPenaltyAmount)
	if err != nil {
		t.Fatalf("get default penalty amount: %v", err)
	}
	if !found || value != "25" {
		t.Fatalf("expected changed value to survive, got %q found=%v", value, found)
	}
}
