package night

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for night dates.
const DateLayout = "2006-01-02"

// Night is one evening of play inside a season.
type Night struct {
	ID       int64
	SeasonID int64
	Date     string
	Notes    string
}

func (n Night) Validate() error {
	if n.SeasonID < 1 {
		return fmt.Errorf("night season id is required")
	}
	if n.Date == "" {
		return fmt.Errorf("night date is required")
	}
	if _, err := time.Parse(DateLayout, n.Date); err != nil {
		return fmt.Errorf("invalid night date: %s", n.Date)
	}

	return nil
}

// Round is one played round of a game during a night. WinnerIDs carries the
// players who won it; a round is only recorded with at least one winner.
type Round struct {
	ID          int64
	NightID     int64
	GameID      int64
	RoundNumber int
	Notes       string
	WinnerIDs   []int64
}

func (r Round) Validate() error {
	if r.NightID < 1 {
		return fmt.Errorf("round night id is required")
	}
	if r.GameID < 1 {
		return fmt.Errorf("round game id is required")
	}
	if r.RoundNumber < 1 {
		return fmt.Errorf("round number must be at least 1")
	}
	if len(r.WinnerIDs) == 0 {
		return fmt.Errorf("round needs at least one winner")
	}
	for _, id := range r.WinnerIDs {
		if id < 1 {
			return fmt.Errorf("invalid round winner id: %d", id)
		}
	}

	return nil
}

// Summary is a night row in season listings, with aggregate counts.
type Summary struct {
	Night
	RoundCount int
	GameCount  int
}

// RoundDetail is a round row joined with its game and the concatenated
// winner names, as listings display it.
type RoundDetail struct {
	ID          int64
	NightID     int64
	NightDate   string
	GameID      int64
	GameName    string
	RoundNumber int
	Notes       string
	Winners     string
}
