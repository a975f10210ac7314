package penalty

import "fmt"

// Type enumerates the penalty kinds the club hands out.
type Type string

const (
	TypeAbsence Type = "Ausencia"
	TypeCustom  Type = "Personalizada"
)

var AllTypes = map[Type]struct{}{
	TypeAbsence: {},
	TypeCustom:  {},
}

// Penalty is a monetary fine charged to a player for one night.
type Penalty struct {
	ID       int64
	NightID  int64
	PlayerID int64
	Type     Type
	Amount   float64
	Reason   string
}

func (p Penalty) Validate() error {
	if p.NightID < 1 {
		return fmt.Errorf("penalty night id is required")
	}
	if p.PlayerID < 1 {
		return fmt.Errorf("penalty player id is required")
	}
	if _, ok := AllTypes[p.Type]; !ok {
		return fmt.Errorf("invalid penalty type: %s", p.Type)
	}
	if p.Amount < 0 {
		return fmt.Errorf("penalty amount must not be negative")
	}

	return nil
}

// Detail is a penalty row joined with its player and night for listings.
type Detail struct {
	Penalty
	PlayerName string
	NightDate  string
}
