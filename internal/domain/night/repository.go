package night

import (
	"context"
	"errors"
)

// ErrMissingReference is returned when a write points at a season, game,
// or player that no longer exists.
var ErrMissingReference = errors.New("night references a missing row")

// Repository describes game-night and round persistence needs from use
// cases.
type Repository interface {
	Create(ctx context.Context, n Night) (int64, error)
	ListBySeason(ctx context.Context, seasonID int64) ([]Summary, error)
	ListRecentBySeason(ctx context.Context, seasonID int64, limit int) ([]Summary, error)
	GetByID(ctx context.Context, nightID int64) (Night, bool, error)
	// Delete removes the night with its rounds, their winners, and its
	// penalties in one transaction.
	Delete(ctx context.Context, nightID int64) error

	// CreateRound inserts the round row and its winner rows in one
	// transaction.
	CreateRound(ctx context.Context, r Round) (int64, error)
	GetRound(ctx context.Context, roundID int64) (Round, bool, error)
	ListRoundsByNight(ctx context.Context, nightID int64) ([]RoundDetail, error)
	ListRoundsBySeason(ctx context.Context, seasonID int64) ([]RoundDetail, error)
	DeleteRound(ctx context.Context, roundID int64) error
}
