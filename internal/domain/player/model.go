package player

import (
	"fmt"
	"strings"
)

// Player is a club member who shows up to game nights and wins rounds.
type Player struct {
	ID         int64
	Name       string
	ProfilePic []byte
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
