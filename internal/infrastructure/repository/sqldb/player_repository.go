package sqldb

import (
	"context"
	"fmt"

	"github.com/caballebrios/nightboard/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (int64, error) {
	query, err := r.store.query(`INSERT INTO players (name, profile_pic) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("build create player query: %w", err)
	}

	id, err := r.store.insertID(ctx, r.store.db, query, p.Name, p.ProfilePic)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, player.ErrNameTaken
		}
		return 0, fmt.Errorf("create player: %w", err)
	}

	return id, nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, err := r.store.query(`SELECT id, name FROM players ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.store.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, err := r.store.query(`SELECT id, name FROM players WHERE id = ?`)
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.store.db.GetContext(ctx, &row, query, playerID); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}

	return player.Player{ID: row.ID, Name: row.Name}, true, nil
}

func (r *PlayerRepository) Rename(ctx context.Context, playerID int64, name string) error {
	query, err := r.store.query(`UPDATE players SET name = ? WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("build rename player query: %w", err)
	}

	result, err := r.store.db.ExecContext(ctx, query, name, playerID)
	if err != nil {
		if isUniqueViolation(err) {
			return player.ErrNameTaken
		}
		return fmt.Errorf("rename player: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected rename player: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("rename player: not found")
	}

	return nil
}

func (r *PlayerRepository) GetPhoto(ctx context.Context, playerID int64) ([]byte, bool, error) {
	query, err := r.store.query(`SELECT profile_pic FROM players WHERE id = ?`)
	if err != nil {
		return nil, false, fmt.Errorf("build get player photo query: %w", err)
	}

	var pic []byte
	if err := r.store.db.GetContext(ctx, &pic, query, playerID); err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get player photo: %w", err)
	}

	return pic, true, nil
}

func (r *PlayerRepository) SetPhoto(ctx context.Context, playerID int64, pic []byte) error {
	query, err := r.store.query(`UPDATE players SET profile_pic = ? WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("build set player photo query: %w", err)
	}

	result, err := r.store.db.ExecContext(ctx, query, pic, playerID)
	if err != nil {
		return fmt.Errorf("set player photo: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected set player photo: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("set player photo: not found")
	}

	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID int64) error {
	tx, err := r.store.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx delete player: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteWinsQuery, err := r.store.query(`DELETE FROM round_winners WHERE player_id = ?`)
	if err != nil {
		return fmt.Errorf("build delete player wins query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteWinsQuery, playerID); err != nil {
		return fmt.Errorf("delete player wins: %w", err)
	}

	deletePenaltiesQuery, err := r.store.query(`DELETE FROM penalties WHERE player_id = ?`)
	if err != nil {
		return fmt.Errorf("build delete player penalties query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deletePenaltiesQuery, playerID); err != nil {
		return fmt.Errorf("delete player penalties: %w", err)
	}

	deletePlayerQuery, err := r.store.query(`DELETE FROM players WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}
	result, err := tx.ExecContext(ctx, deletePlayerQuery, playerID)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected delete player: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete player: not found")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete player tx: %w", err)
	}

	return nil
}
