package game

import (
	"context"
	"errors"
)

// ErrNameTaken is returned by Create and Update when the unique name
// constraint fires.
var ErrNameTaken = errors.New("game name already taken")

// Repository describes game persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, g Game) (int64, error)
	List(ctx context.Context) ([]Game, error)
	GetByID(ctx context.Context, gameID int64) (Game, bool, error)
	Update(ctx context.Context, g Game) error
	// Delete removes the game, its rounds, and those rounds' winners in
	// one transaction, returning how many rounds were removed.
	Delete(ctx context.Context, gameID int64) (int64, error)
}
