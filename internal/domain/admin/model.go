package admin

import "errors"

// ErrBackupUnavailable is returned when a file-level backup is requested
// while the service runs against the remote backend.
var ErrBackupUnavailable = errors.New("backup requires the embedded database")

// QueryResult is the tabular outcome of a console query. Row values are
// stringified so the transport can render any column type.
type QueryResult struct {
	Columns []string
	Rows    [][]string
}

// DatabaseInfo describes the live storage backend.
type DatabaseInfo struct {
	Backend string
	// Path and SizeBytes are only set for the embedded backend.
	Path       string
	SizeBytes  int64
	TableCount int
}

// ImportResult reports what a history import inserted. AlreadyImported is
// set when the guard found existing nights for the season, in which case
// nothing was written.
type ImportResult struct {
	SeasonName      string
	NightsImported  int
	RoundsImported  int
	AlreadyImported bool
}
