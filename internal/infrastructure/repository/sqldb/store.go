// Package sqldb implements the repositories on top of a single SQL surface
// written in SQLite conventions and translated per dialect. The same query
// text runs against the embedded SQLite file and against PostgreSQL and must
// produce identical results on both.
package sqldb

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/caballebrios/nightboard/internal/platform/sqldialect"
)

// conflictKeys declares, per table, the unique column the translator
// targets when rewriting INSERT OR IGNORE for PostgreSQL.
var conflictKeys = map[string]string{
	"players":  "name",
	"seasons":  "name",
	"games":    "name",
	"settings": "key",
}

// Store bundles the live database handle with the dialect translator the
// repositories share.
type Store struct {
	db *sqlx.DB
	tr *sqldialect.Translator
}

func NewStore(db *sqlx.DB, dialect sqldialect.Dialect) *Store {
	return &Store{db: db, tr: sqldialect.NewTranslator(dialect, conflictKeys)}
}

func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) Dialect() sqldialect.Dialect {
	return s.tr.Dialect()
}

// query translates a SQLite-convention query for the active dialect.
func (s *Store) query(q string) (string, error) {
	return s.tr.Translate(q)
}

// insertID runs an already-translated INSERT and returns the generated id,
// via RETURNING on PostgreSQL and the session rowid on SQLite. The query
// must not carry its own RETURNING clause.
func (s *Store) insertID(ctx context.Context, ex sqlx.ExtContext, query string, args ...any) (int64, error) {
	if s.tr.Dialect() == sqldialect.Postgres {
		var id int64
		if err := sqlx.GetContext(ctx, ex, &id, query+" RETURNING id", args...); err != nil {
			return 0, err
		}
		return id, nil
	}

	result, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}
