package sqldb

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/caballebrios/nightboard/internal/domain/admin"
	"github.com/caballebrios/nightboard/internal/platform/sqldialect"
)

// AdminRepository serves the maintenance console: raw read queries,
// backend info, and file-level backups of the embedded database.
type AdminRepository struct {
	store      *Store
	sqlitePath string
}

func NewAdminRepository(store *Store, sqlitePath string) *AdminRepository {
	return &AdminRepository{store: store, sqlitePath: sqlitePath}
}

// RunQuery executes the statement verbatim. Console queries are written by
// an operator for the live backend, so they bypass dialect translation.
func (r *AdminRepository) RunQuery(ctx context.Context, query string) (admin.QueryResult, error) {
	rows, err := r.store.db.QueryxContext(ctx, query)
	if err != nil {
		return admin.QueryResult{}, fmt.Errorf("run console query: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	columns, err := rows.Columns()
	if err != nil {
		return admin.QueryResult{}, fmt.Errorf("read console columns: %w", err)
	}

	out := admin.QueryResult{Columns: columns, Rows: [][]string{}}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return admin.QueryResult{}, fmt.Errorf("scan console row: %w", err)
		}
		record := make([]string, len(values))
		for i, v := range values {
			record[i] = stringifyValue(v)
		}
		out.Rows = append(out.Rows, record)
	}
	if err := rows.Err(); err != nil {
		return admin.QueryResult{}, fmt.Errorf("iterate console rows: %w", err)
	}

	return out, nil
}

func (r *AdminRepository) DatabaseInfo(ctx context.Context) (admin.DatabaseInfo, error) {
	info := admin.DatabaseInfo{Backend: r.store.Dialect().String()}

	countQuery := `SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`
	if r.store.Dialect() == sqldialect.Postgres {
		countQuery = `SELECT COUNT(1) FROM information_schema.tables WHERE table_schema = 'public'`
	}
	if err := r.store.db.GetContext(ctx, &info.TableCount, countQuery); err != nil {
		return admin.DatabaseInfo{}, fmt.Errorf("count tables: %w", err)
	}

	if r.store.Dialect() == sqldialect.SQLite {
		info.Path = r.sqlitePath
		if stat, err := os.Stat(r.sqlitePath); err == nil {
			info.SizeBytes = stat.Size()
		}
	}

	return info, nil
}

// ReadBackup snapshots the embedded database file. The WAL is folded back
// first so the copy holds every committed write.
func (r *AdminRepository) ReadBackup(ctx context.Context) ([]byte, error) {
	if r.store.Dialect() != sqldialect.SQLite {
		return nil, admin.ErrBackupUnavailable
	}

	if _, err := r.store.db.ExecContext(ctx, `PRAGMA wal_checkpoint(TRUNCATE)`); err != nil {
		return nil, fmt.Errorf("checkpoint wal: %w", err)
	}

	raw, err := os.ReadFile(r.sqlitePath)
	if err != nil {
		return nil, fmt.Errorf("read database file: %w", err)
	}

	return raw, nil
}

// stringifyValue renders a scanned column value for the console table.
// Drivers disagree on concrete types, so the common ones are spelled out.
func stringifyValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", val)
	}
}
