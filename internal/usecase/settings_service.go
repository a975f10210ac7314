package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/caballebrios/nightboard/internal/domain/settings"
)

type SettingsService struct {
	settingsRepo settings.Repository
}

func NewSettingsService(settingsRepo settings.Repository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSetting reads one club setting by key. Only known keys resolve.
func (s *SettingsService) GetSetting(ctx context.Context, key string) (settings.Setting, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettingsService.GetSetting")
	defer span.End()

	key = strings.TrimSpace(key)
	if !settings.IsKnownKey(key) {
		return settings.Setting{}, fmt.Errorf("%w: unknown setting %q", ErrNotFound, key)
	}

	value, exists, err := s.settingsRepo.Get(ctx, key)
	if err != nil {
		return settings.Setting{}, fmt.Errorf("get setting: %w", err)
	}
	if !exists {
		return settings.Setting{}, fmt.Errorf("%w: setting %q is not configured", ErrNotFound, key)
	}

	return settings.Setting{Key: key, Value: value}, nil
}

// PutSetting validates and stores one club setting, returning it as stored.
func (s *SettingsService) PutSetting(ctx context.Context, key, value string) (settings.Setting, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettingsService.PutSetting")
	defer span.End()

	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if !settings.IsKnownKey(key) {
		return settings.Setting{}, fmt.Errorf("%w: unknown setting %q", ErrNotFound, key)
	}
	if err := settings.ValidateValue(key, value); err != nil {
		return settings.Setting{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := s.settingsRepo.Set(ctx, key, value); err != nil {
		return settings.Setting{}, fmt.Errorf("set setting: %w", err)
	}

	return settings.Setting{Key: key, Value: value}, nil
}

func (s *SettingsService) GetDefaultPenaltyAmount(ctx context.Context) (float64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettingsService.GetDefaultPenaltyAmount")
	defer span.End()

	raw, exists, err := s.settingsRepo.Get(ctx, settings.KeyDefaultPenaltyAmount)
	if err != nil {
		return 0, fmt.Errorf("get default penalty amount: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: default penalty amount is not configured", ErrNotFound)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("parse default penalty amount %q: %w", raw, err)
	}

	return amount, nil
}

func (s *SettingsService) SetDefaultPenaltyAmount(ctx context.Context, amount float64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SettingsService.SetDefaultPenaltyAmount")
	defer span.End()

	if amount < 0 {
		return fmt.Errorf("%w: default penalty amount must not be negative", ErrInvalidInput)
	}

	value := strconv.FormatFloat(amount, 'f', -1, 64)
	if err := s.settingsRepo.Set(ctx, settings.KeyDefaultPenaltyAmount, value); err != nil {
		return fmt.Errorf("set default penalty amount: %w", err)
	}

	return nil
}
