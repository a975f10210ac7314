// Package sqldialect carries the differences between the embedded SQLite
// backend and PostgreSQL: DDL fragments for the provisioner and a textual
// query translator for the shared SQL surface, which is written in SQLite
// conventions. Translation is a token scan, not a SQL parse; quoted strings,
// quoted identifiers, and comments pass through untouched.
package sqldialect

type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

func (d Dialect) String() string {
	return string(d)
}

// DriverName is the database/sql driver registered for this dialect
// (modernc.org/sqlite and lib/pq respectively).
func (d Dialect) DriverName() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite"
}

// AutoIncrementPK is the id column definition for generated integer keys.
func (d Dialect) AutoIncrementPK() string {
	if d == Postgres {
		return "SERIAL PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

// BoolType is the column type for flag columns. Both representations accept
// 0/1 binds, so queries compare flags numerically on either backend.
func (d Dialect) BoolType() string {
	if d == Postgres {
		return "INTEGER"
	}
	return "BOOLEAN"
}

// BlobType is the column type for raw byte columns.
func (d Dialect) BlobType() string {
	if d == Postgres {
		return "BYTEA"
	}
	return "BLOB"
}
