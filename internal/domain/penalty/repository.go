package penalty

import (
	"context"
	"errors"
)

// ErrMissingReference is returned when a write points at a night or
// player that no longer exists.
var ErrMissingReference = errors.New("penalty references a missing row")

// Repository describes penalty persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, p Penalty) (int64, error)
	GetByID(ctx context.Context, penaltyID int64) (Penalty, bool, error)
	ListByNight(ctx context.Context, nightID int64) ([]Detail, error)
	List(ctx context.Context) ([]Detail, error)
	Update(ctx context.Context, penaltyID int64, amount float64, reason string) error
	Delete(ctx context.Context, penaltyID int64) error
}
