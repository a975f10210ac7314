package sqldb

import (
	"fmt"
	"time"
)

// dateString scans a DATE column from either backend into an ISO
// YYYY-MM-DD string. PostgreSQL hands back time.Time, SQLite the stored
// text; NULL becomes the empty string.
type dateString string

func (d *dateString) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = dateString(v.Format("2006-01-02"))
	case string:
		*d = dateString(v)
	case []byte:
		*d = dateString(v)
	default:
		return fmt.Errorf("unsupported date value of type %T", value)
	}

	return nil
}

// nullableText binds empty strings as NULL so optional TEXT and DATE
// columns stay NULL instead of holding empty strings.
func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// boolToInt maps booleans to the 0/1 representation both backends store.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
