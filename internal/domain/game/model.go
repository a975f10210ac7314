package game

import (
	"fmt"
	"strings"
)

// Game is a board or card game the club plays, worth a fixed number of
// points per round won.
type Game struct {
	ID           int64
	Name         string
	PointsPerWin int
	Description  string
}

func (g Game) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("game name is required")
	}
	if g.PointsPerWin < 1 {
		return fmt.Errorf("game points per win must be at least 1")
	}

	return nil
}
