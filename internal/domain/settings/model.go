package settings

import (
	"fmt"
	"strconv"
)

// KeyDefaultPenaltyAmount holds the amount applied when a penalty is
// recorded without an explicit one. Seeded to "10" on first start.
const KeyDefaultPenaltyAmount = "default_penalty_amount"

// KnownKeys enumerates the settings the API exposes. Unknown keys never
// reach storage.
var KnownKeys = map[string]struct{}{
	KeyDefaultPenaltyAmount: {},
}

func IsKnownKey(key string) bool {
	_, ok := KnownKeys[key]
	return ok
}

// ValidateValue checks a candidate value for key before it is stored.
func ValidateValue(key, value string) error {
	switch key {
	case KeyDefaultPenaltyAmount:
		amount, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("default penalty amount must be a number, got %q", value)
		}
		if amount < 0 {
			return fmt.Errorf("default penalty amount must not be negative")
		}
	}

	return nil
}

// Setting is one key/value pair of club configuration. Values are strings;
// callers parse what they need out of them.
type Setting struct {
	Key   string
	Value string
}
