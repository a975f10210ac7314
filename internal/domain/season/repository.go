package season

import (
	"context"
	"errors"
)

// ErrNameTaken is returned by Create and Update when the unique name
// constraint fires.
var ErrNameTaken = errors.New("season name already taken")

// Repository describes season persistence needs from use cases.
type Repository interface {
	// Create inserts the season; when s.IsActive is set, every other
	// season is deactivated in the same transaction.
	Create(ctx context.Context, s Season) (int64, error)
	List(ctx context.Context) ([]Season, error)
	GetByID(ctx context.Context, seasonID int64) (Season, bool, error)
	GetActive(ctx context.Context) (Season, bool, error)
	// Update rewrites name and dates. The active flag only moves through
	// Activate.
	Update(ctx context.Context, s Season) error
	Activate(ctx context.Context, seasonID int64) error
	// Delete removes the season and everything recorded under it:
	// round winners, rounds, penalties, nights, then the season row.
	Delete(ctx context.Context, seasonID int64) error
}
