package player

import (
	"context"
	"errors"
)

// ErrNameTaken is returned by Create and Rename when the unique name
// constraint fires.
var ErrNameTaken = errors.New("player name already taken")

// Repository describes player persistence needs from use cases.
// List and GetByID leave ProfilePic unset; photo bytes travel only
// through GetPhoto and SetPhoto.
type Repository interface {
	Create(ctx context.Context, p Player) (int64, error)
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	Rename(ctx context.Context, playerID int64, name string) error
	GetPhoto(ctx context.Context, playerID int64) ([]byte, bool, error)
	SetPhoto(ctx context.Context, playerID int64, pic []byte) error
	// Delete removes the player together with their round wins and
	// penalties in one transaction.
	Delete(ctx context.Context, playerID int64) error
}
