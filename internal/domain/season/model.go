package season

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format for season dates.
const DateLayout = "2006-01-02"

// Season groups game nights into a scoring period. At most one season is
// active at a time; the storage layer enforces the single-flag rule.
type Season struct {
	ID        int64
	Name      string
	StartDate string
	EndDate   string
	IsActive  bool
}

func (s Season) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("season name is required")
	}
	if s.StartDate == "" {
		return fmt.Errorf("season start date is required")
	}
	if _, err := time.Parse(DateLayout, s.StartDate); err != nil {
		return fmt.Errorf("invalid season start date: %s", s.StartDate)
	}
	if s.EndDate != "" {
		if _, err := time.Parse(DateLayout, s.EndDate); err != nil {
			return fmt.Errorf("invalid season end date: %s", s.EndDate)
		}
	}

	return nil
}
