package admin

import "context"

// Repository describes maintenance-console persistence needs from use cases.
type Repository interface {
	// RunQuery executes one read-only statement against the live backend
	// as written, without dialect translation. Statement vetting is the
	// caller's job.
	RunQuery(ctx context.Context, query string) (QueryResult, error)
	DatabaseInfo(ctx context.Context) (DatabaseInfo, error)
	// ReadBackup returns a point-in-time copy of the embedded database
	// file. It fails with ErrBackupUnavailable on the remote backend.
	ReadBackup(ctx context.Context) ([]byte, error)
	// ImportHistory loads the bundled season history. Idempotent: a season
	// that already has nights is left untouched.
	ImportHistory(ctx context.Context) (ImportResult, error)
}
