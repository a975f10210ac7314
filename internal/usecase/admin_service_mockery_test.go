package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/caballebrios/nightboard/internal/domain/admin"
	adminmock "github.com/caballebrios/nightboard/internal/mocks/domain/admin"
)

func TestAdminService_RunConsoleQuery_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	adminRepo := adminmock.NewRepository(t)
	service := NewAdminService(adminRepo)

	expected := admin.QueryResult{
		Columns: []string{"id", "name"},
		Rows:    [][]string{{"1", "Ana"}},
	}
	adminRepo.
		On("RunQuery", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "SELECT id, name FROM players").
		Return(expected, nil).
		Once()

	got, err := service.RunConsoleQuery(ctx, "  SELECT id, name FROM players  ")
	if err != nil {
		t.Fatalf("run console query: %v", err)
	}
	if len(got.Rows) != 1 || got.Rows[0][1] != "Ana" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestAdminService_RunConsoleQuery_RejectsNonSelectUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	adminRepo := adminmock.NewRepository(t)
	service := NewAdminService(adminRepo)

	// No expectations: vetting must reject these before the repository.
	for _, query := range []string{"", "   ", "DELETE FROM players", "sel"} {
		if _, err := service.RunConsoleQuery(ctx, query); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("query %q: expected ErrInvalidInput, got %v", query, err)
		}
	}
}

func TestAdminService_RunConsoleQuery_ExecutionFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	adminRepo := adminmock.NewRepository(t)
	service := NewAdminService(adminRepo)

	adminRepo.
		On("RunQuery", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "SELECT * FROM nope").
		Return(admin.QueryResult{}, errors.New("no such table: nope")).
		Once()

	_, err := service.RunConsoleQuery(ctx, "SELECT * FROM nope")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "no such table") {
		t.Fatalf("expected the backend reason in the error, got %v", err)
	}
}

func TestAdminService_BackupDatabase_UsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	adminRepo := adminmock.NewRepository(t)
	service := NewAdminService(adminRepo)

	payload := []byte("SQLite format 3\x00")
	adminRepo.
		On("ReadBackup", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(payload, nil).
		Once()

	data, filename, err := service.BackupDatabase(ctx)
	if err != nil {
		t.Fatalf("backup database: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Fatalf("unexpected backup payload: %q", data)
	}
	if !strings.HasPrefix(filename, "caballebrios_backup_") || !strings.HasSuffix(filename, ".db") {
		t.Fatalf("unexpected backup filename: %q", filename)
	}
}

func TestAdminService_BackupDatabase_UnavailableUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	adminRepo := adminmock.NewRepository(t)
	service := NewAdminService(adminRepo)

	adminRepo.
		On("ReadBackup", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(nil, admin.ErrBackupUnavailable).
		Once()

	_, _, err := service.BackupDatabase(ctx)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAdminService_ImportHistory_UsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	adminRepo := adminmock.NewRepository(t)
	service := NewAdminService(adminRepo)

	expected := admin.ImportResult{SeasonName: "Temporada 1", NightsImported: 10, RoundsImported: 42}
	adminRepo.
		On("ImportHistory", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(expected, nil).
		Once()

	got, err := service.ImportHistory(ctx)
	if err != nil {
		t.Fatalf("import history: %v", err)
	}
	if got != expected {
		t.Fatalf("unexpected result: %+v", got)
	}
}
