package settings

import "context"

// Repository describes settings persistence needs from use cases.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	// Set upserts the value for key.
	Set(ctx context.Context, key, value string) error
}
