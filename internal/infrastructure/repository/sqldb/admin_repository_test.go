package sqldb

import (
	"bytes"
	"context"
	"reflect"
	"testing"

	"github.com/caballebrios/nightboard/internal/domain/report"
)

func TestAdminRunQuery(t *testing.T) {
	store, path := openTestStoreWithPath(t)
	repo := NewAdminRepository(store, path)
	ctx := context.Background()

	seedPlayer(t, store, "Ana")

	result, err := repo.RunQuery(ctx, "SELECT 1 AS n, 'x' AS s, NULL AS missing, 2.5 AS f")
	if err != nil {
		t.Fatalf("run query: %v", err)
	}
	if !reflect.DeepEqual(result.Columns, []string{"n", "s", "missing", "f"}) {
		t.Fatalf("unexpected columns: %v", result.Columns)
	}
	if len(result.Rows) != 1 || !reflect.DeepEqual(result.Rows[0], []string{"1", "x", "", "2.5"}) {
		t.Fatalf("unexpected rows: %v", result.Rows)
	}

	result, err = repo.RunQuery(ctx, "SELECT name FROM players")
	if err != nil {
		t.Fatalf("run query: %v", err)
	}
	if len(result.Rows) != 1 || result.Rows[0][0] != "Ana" {
		t.Fatalf("unexpected rows: %v", result.Rows)
	}

	if _, err := repo.RunQuery(ctx, "SELECT * FROM no_such_table"); err == nil {
		t.Fatal("expected error for unknown table")
	}
}

func TestAdminRunQueryEmptyResult(t *testing.T) {
	store, path := openTestStoreWithPath(t)
	repo := NewAdminRepository(store, path)

	result, err := repo.RunQuery(context.Background(), "SELECT id, name FROM players")
	if err != nil {
		t.Fatalf("run query: %v", err)
	}
	if len(result.Columns) != 2 {
		t.Fatalf("unexpected columns: %v", result.Columns)
	}
	if result.Rows == nil || len(result.Rows) != 0 {
		t.Fatalf("expected empty non-nil rows, got %#v", result.Rows)
	}
}

func TestAdminDatabaseInfoAndBackup(t *testing.T) {
	store, path := openTestStoreWithPath(t)
	repo := NewAdminRepository(store, path)
	ctx := context.Background()

	info, err := repo.DatabaseInfo(ctx)
	if err != nil {
		t.Fatalf("database info: %v", err)
	}
	if info.Backend != "sqlite" {
		t.Fatalf("unexpected backend: %q", info.Backend)
	}
	if info.Path != path {
		t.Fatalf("expected path %q, got %q", path, info.Path)
	}
	if info.TableCount != 8 {
		t.Fatalf("expected 8 tables, got %d", info.TableCount)
	}

	seedPlayer(t, store, "Ana")

	backup, err := repo.ReadBackup(ctx)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if !bytes.HasPrefix(backup, []byte("SQLite format 3\x00")) {
		t.Fatalf("backup does not start with the sqlite magic: %q", backup[:16])
	}

	// The backup checkpointed the WAL, so the main file now holds the data.
	info, err = repo.DatabaseInfo(ctx)
	if err != nil {
		t.Fatalf("database info: %v", err)
	}
	if info.SizeBytes <= 0 {
		t.Fatalf("expected a non-empty database file, got %d bytes", info.SizeBytes)
	}
	if int64(len(backup)) != info.SizeBytes {
		t.Fatalf("backup size %d does not match file size %d", len(backup), info.SizeBytes)
	}
}

func TestAdminImportHistory(t *testing.T) {
	store, path := openTestStoreWithPath(t)
	repo := NewAdminRepository(store, path)
	reports := NewReportRepository(store)
	ctx := context.Background()

	result, err := repo.ImportHistory(ctx)
	if err != nil {
		t.Fatalf("import history: %v", err)
	}
	if result.AlreadyImported {
		t.Fatal("first import reported as already imported")
	}
	if result.SeasonName != "Temporada 1" || result.NightsImported != 10 || result.RoundsImported != 42 {
		t.Fatalf("unexpected import result: %+v", result)
	}

	overview, err := reports.Overview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	want := report.Overview{Players: 7, Games: 9, Seasons: 1, Nights: 10, Rounds: 42, Penalties: 3}
	if overview != want {
		t.Fatalf("expected %+v, got %+v", want, overview)
	}

	seasonID := importedSeasonID(t, store)
	rows, err := reports.Leaderboard(ctx, seasonID)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	byName := make(map[string]report.LeaderboardRow, len(rows))
	for _, row := range rows {
		byName[row.PlayerName] = row
	}
	// Scored with each game's own points, not the per-round values in the
	// dataset; with those Othon would total 17.
	othon := byName["Othon"]
	if othon.TotalPoints != 16 || othon.RoundsWon != 12 {
		t.Fatalf("unexpected othon row: %+v", othon)
	}
	olivas := byName["Olivas"]
	if olivas.TotalPoints != 7 || olivas.RoundsWon != 5 {
		t.Fatalf("unexpected olivas row: %+v", olivas)
	}

	attendance, err := reports.Attendance(ctx, seasonID)
	if err != nil {
		t.Fatalf("attendance: %v", err)
	}
	var othonAttendance *report.AttendanceRow
	for i := range attendance {
		if attendance[i].PlayerName == "Othon" {
			othonAttendance = &attendance[i]
		}
	}
	if othonAttendance == nil {
		t.Fatalf("othon missing from attendance: %+v", attendance)
	}
	if othonAttendance.NightsWon != 6 || othonAttendance.TotalNights != 10 || othonAttendance.AttendanceRate != 60 {
		t.Fatalf("unexpected othon attendance: %+v", *othonAttendance)
	}

	penalties, err := reports.PenaltySummary(ctx, seasonID)
	if err != nil {
		t.Fatalf("penalty summary: %v", err)
	}
	if len(penalties) != 2 {
		t.Fatalf("expected 2 penalized players, got %+v", penalties)
	}
	if penalties[0].PlayerName != "Olivas" || penalties[0].PenaltyCount != 2 || penalties[0].Total != 400 {
		t.Fatalf("unexpected first summary row: %+v", penalties[0])
	}
	if penalties[1].PlayerName != "Choly" || penalties[1].Total != 200 {
		t.Fatalf("unexpected second summary row: %+v", penalties[1])
	}

	again, err := repo.ImportHistory(ctx)
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if !again.AlreadyImported || again.NightsImported != 0 || again.RoundsImported != 0 {
		t.Fatalf("expected idempotent second import, got %+v", again)
	}
	overview, err = reports.Overview(ctx)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview != want {
		t.Fatalf("second import changed the data: %+v", overview)
	}
}

func importedSeasonID(t *testing.T, store *Store) int64 {
	t.Helper()
	var id int64
	query, err := store.query("SELECT id FROM seasons WHERE name = ?")
	if err != nil {
		t.Fatalf("build season lookup: %v", err)
	}
	if err := store.DB().GetContext(context.Background(), &id, query, "Temporada 1"); err != nil {
		t.Fatalf("resolve imported season: %v", err)
	}
	return id
}
