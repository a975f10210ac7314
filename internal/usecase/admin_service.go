package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caballebrios/nightboard/internal/domain/admin"
)

type AdminService struct {
	adminRepo admin.Repository
}

func NewAdminService(adminRepo admin.Repository) *AdminService {
	return &AdminService{adminRepo: adminRepo}
}

// RunConsoleQuery executes one ad-hoc read statement. Anything but a
// SELECT is rejected before touching the database, and execution failures
// come back as input errors carrying the backend's reason.
func (s *AdminService) RunConsoleQuery(ctx context.Context, query string) (admin.QueryResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.RunConsoleQuery")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return admin.QueryResult{}, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	if !isSelectStatement(query) {
		return admin.QueryResult{}, fmt.Errorf("%w: only SELECT statements are allowed", ErrInvalidInput)
	}

	result, err := s.adminRepo.RunQuery(ctx, query)
	if err != nil {
		return admin.QueryResult{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	return result, nil
}

func isSelectStatement(query string) bool {
	const prefix = "select"
	if len(query) < len(prefix) {
		return false
	}
	return strings.EqualFold(query[:len(prefix)], prefix)
}

func (s *AdminService) DatabaseInfo(ctx context.Context) (admin.DatabaseInfo, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.DatabaseInfo")
	defer span.End()

	info, err := s.adminRepo.DatabaseInfo(ctx)
	if err != nil {
		return admin.DatabaseInfo{}, fmt.Errorf("database info: %w", err)
	}

	return info, nil
}

// BackupDatabase returns the embedded database file with the download
// name it should be served under.
func (s *AdminService) BackupDatabase(ctx context.Context) ([]byte, string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.BackupDatabase")
	defer span.End()

	data, err := s.adminRepo.ReadBackup(ctx)
	if err != nil {
		if errors.Is(err, admin.ErrBackupUnavailable) {
			return nil, "", fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
		return nil, "", fmt.Errorf("read backup: %w", err)
	}

	filename := fmt.Sprintf("caballebrios_backup_%s.db", time.Now().Format("20060102_150405"))
	return data, filename, nil
}

func (s *AdminService) ImportHistory(ctx context.Context) (admin.ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.ImportHistory")
	defer span.End()

	result, err := s.adminRepo.ImportHistory(ctx)
	if err != nil {
		return admin.ImportResult{}, fmt.Errorf("import history: %w", err)
	}

	return result, nil
}
