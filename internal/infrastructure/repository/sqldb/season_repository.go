package sqldb

import (
	"context"
	"fmt"

	"github.com/caballebrios/nightboard/internal/domain/season"
)

type SeasonRepository struct {
	store *Store
}

func NewSeasonRepository(store *Store) *SeasonRepository {
	return &SeasonRepository{store: store}
}

func (r *SeasonRepository) Create(ctx context.Context, s season.Season) (int64, error) {
	insertQuery, err := r.store.query(`INSERT INTO seasons (name, start_date, end_date, is_active) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("build create season query: %w", err)
	}
	args := []any{s.Name, nullableText(s.StartDate), nullableText(s.EndDate), boolToInt(s.IsActive)}

	if !s.IsActive {
		id, err := r.store.insertID(ctx, r.store.db, insertQuery, args...)
		if err != nil {
			if isUniqueViolation(err) {
				return 0, season.ErrNameTaken
			}
			return 0, fmt.Errorf("create season: %w", err)
		}
		return id, nil
	}

	tx, err := r.store.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx create season: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, err := r.store.query(`UPDATE seasons SET is_active = 0`)
	if err != nil {
		return 0, fmt.Errorf("build deactivate seasons query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery); err != nil {
		return 0, fmt.Errorf("deactivate seasons: %w", err)
	}

	id, err := r.store.insertID(ctx, tx, insertQuery, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, season.ErrNameTaken
		}
		return 0, fmt.Errorf("create season: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create season tx: %w", err)
	}

	return id, nil
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	query, err := r.store.query(`SELECT id, name, start_date, end_date, is_active FROM seasons ORDER BY start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("build list seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.store.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}
	return out, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID int64) (season.Season, bool, error) {
	query, err := r.store.query(`SELECT id, name, start_date, end_date, is_active FROM seasons WHERE id = ?`)
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season by id query: %w", err)
	}

	var row seasonTableModel
	if err := r.store.db.GetContext(ctx, &row, query, seasonID); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season by id: %w", err)
	}

	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) GetActive(ctx context.Context) (season.Season, bool, error) {
	query, err := r.store.query(`SELECT id, name, start_date, end_date, is_active FROM seasons WHERE is_active = 1 LIMIT 1`)
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get active season query: %w", err)
	}

	var row seasonTableModel
	if err := r.store.db.GetContext(ctx, &row, query); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get active season: %w", err)
	}

	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) Update(ctx context.Context, s season.Season) error {
	query, err := r.store.query(`UPDATE seasons SET name = ?, start_date = ?, end_date = ? WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("build update season query: %w", err)
	}

	result, err := r.store.db.ExecContext(ctx, query, s.Name, nullableText(s.StartDate), nullableText(s.EndDate), s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return season.ErrNameTaken
		}
		return fmt.Errorf("update season: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update season: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update season: not found")
	}

	return nil
}

func (r *SeasonRepository) Activate(ctx context.Context, seasonID int64) error {
	tx, err := r.store.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx activate season: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, err := r.store.query(`UPDATE seasons SET is_active = 0`)
	if err != nil {
		return fmt.Errorf("build deactivate seasons query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery); err != nil {
		return fmt.Errorf("deactivate seasons: %w", err)
	}

	setQuery, err := r.store.query(`UPDATE seasons SET is_active = 1 WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("build activate season query: %w", err)
	}
	result, err := tx.ExecContext(ctx, setQuery, seasonID)
	if err != nil {
		return fmt.Errorf("activate season: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected activate season: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("activate season: not found")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit activate season tx: %w", err)
	}

	return nil
}

func (r *SeasonRepository) Delete(ctx context.Context, seasonID int64) error {
	tx, err := r.store.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx delete season: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Children before parents; the winners of every round of every night
	// in the season go first.
	deleteWinnersQuery, err := r.store.query(`DELETE FROM round_winners WHERE round_id IN (
	SELECT id FROM game_rounds WHERE game_night_id IN (SELECT id FROM game_nights WHERE season_id = ?)
)`)
	if err != nil {
		return fmt.Errorf("build delete season winners query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteWinnersQuery, seasonID); err != nil {
		return fmt.Errorf("delete season winners: %w", err)
	}

	deleteRoundsQuery, err := r.store.query(`DELETE FROM game_rounds WHERE game_night_id IN (SELECT id FROM game_nights WHERE season_id = ?)`)
	if err != nil {
		return fmt.Errorf("build delete season rounds query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteRoundsQuery, seasonID); err != nil {
		return fmt.Errorf("delete season rounds: %w", err)
	}

	deletePenaltiesQuery, err := r.store.query(`DELETE FROM penalties WHERE game_night_id IN (SELECT id FROM game_nights WHERE season_id = ?)`)
	if err != nil {
		return fmt.Errorf("build delete season penalties query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deletePenaltiesQuery, seasonID); err != nil {
		return fmt.Errorf("delete season penalties: %w", err)
	}

	deleteNightsQuery, err := r.store.query(`DELETE FROM game_nights WHERE season_id = ?`)
	if err != nil {
		return fmt.Errorf("build delete season nights query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteNightsQuery, seasonID); err != nil {
		return fmt.Errorf("delete season nights: %w", err)
	}

	deleteSeasonQuery, err := r.store.query(`DELETE FROM seasons WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("build delete season query: %w", err)
	}
	result, err := tx.ExecContext(ctx, deleteSeasonQuery, seasonID)
	if err != nil {
		return fmt.Errorf("delete season: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected delete season: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete season: not found")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete season tx: %w", err)
	}

	return nil
}
