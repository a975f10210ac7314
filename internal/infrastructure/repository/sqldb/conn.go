package sqldb

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/caballebrios/nightboard/internal/platform/logging"
	"github.com/caballebrios/nightboard/internal/platform/sqldialect"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc registers driver name "sqlite", which sqlx does not know.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Options configures Connect.
type Options struct {
	// DatabaseURL selects PostgreSQL when non-empty.
	DatabaseURL string
	// SQLitePath is the embedded database file used when DatabaseURL is
	// empty or the remote connection attempt fails.
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
}

// Connect opens the database handle. With a DatabaseURL it tries PostgreSQL
// exactly once; any failure there logs a warning and falls back to the
// embedded SQLite file. Errors after this point surface to callers.
func Connect(ctx context.Context, opts Options, logger *logging.Logger) (*sqlx.DB, sqldialect.Dialect, error) {
	if opts.DatabaseURL != "" {
		db, err := connectPostgres(ctx, opts)
		if err == nil {
			return db, sqldialect.Postgres, nil
		}
		logger.WarnContext(ctx, "remote database unavailable, using embedded sqlite",
			"error", err,
			"sqlite_path", opts.SQLitePath,
		)
	}

	db, err := openSQLite(ctx, opts)
	if err != nil {
		return nil, "", fmt.Errorf("open sqlite database: %w", err)
	}

	return db, sqldialect.SQLite, nil
}

func connectPostgres(ctx context.Context, opts Options) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", opts.DatabaseURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(opts.DatabaseURL)),
		otelsql.WithQueryFormatter(formatQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}
	applyPoolLimits(db, opts)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres database: %w", err)
	}

	return db, nil
}

func openSQLite(ctx context.Context, opts Options) (*sqlx.DB, error) {
	path := filepath.Clean(opts.SQLitePath)
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := otelsqlx.Open("sqlite", dsn,
		otelsql.WithDBSystem("sqlite"),
		otelsql.WithDBName(filepath.Base(path)),
		otelsql.WithQueryFormatter(formatQueryForTrace),
	)
	if err != nil {
		return nil, err
	}
	applyPoolLimits(db, opts)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func applyPoolLimits(db *sqlx.DB, opts Options) {
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}
}
