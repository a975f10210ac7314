package sqldb

import (
	"context"
	"fmt"

	"github.com/caballebrios/nightboard/internal/domain/game"
)

type GameRepository struct {
	store *Store
}

func NewGameRepository(store *Store) *GameRepository {
	return &GameRepository{store: store}
}

func (r *GameRepository) Create(ctx context.Context, g game.Game) (int64, error) {
	query, err := r.store.query(`INSERT INTO games (name, points_per_win, description) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("build create game query: %w", err)
	}

	id, err := r.store.insertID(ctx, r.store.db, query, g.Name, g.PointsPerWin, nullableText(g.Description))
	if err != nil {
		if isUniqueViolation(err) {
			return 0, game.ErrNameTaken
		}
		return 0, fmt.Errorf("create game: %w", err)
	}

	return id, nil
}

func (r *GameRepository) List(ctx context.Context) ([]game.Game, error) {
	query, err := r.store.query(`SELECT id, name, points_per_win, description FROM games ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("build list games query: %w", err)
	}

	var rows []gameTableModel
	if err := r.store.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameFromRow(row))
	}
	return out, nil
}

func (r *GameRepository) GetByID(ctx context.Context, gameID int64) (game.Game, bool, error) {
	query, err := r.store.query(`SELECT id, name, points_per_win, description FROM games WHERE id = ?`)
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build get game by id query: %w", err)
	}

	var row gameTableModel
	if err := r.store.db.GetContext(ctx, &row, query, gameID); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("get game by id: %w", err)
	}

	return gameFromRow(row), true, nil
}

func (r *GameRepository) Update(ctx context.Context, g game.Game) error {
	query, err := r.store.query(`UPDATE games SET name = ?, points_per_win = ?, description = ? WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("build update game query: %w", err)
	}

	result, err := r.store.db.ExecContext(ctx, query, g.Name, g.PointsPerWin, nullableText(g.Description), g.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return game.ErrNameTaken
		}
		return fmt.Errorf("update game: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update game: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update game: not found")
	}

	return nil
}

func (r *GameRepository) Delete(ctx context.Context, gameID int64) (int64, error) {
	tx, err := r.store.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx delete game: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	countQuery, err := r.store.query(`SELECT COUNT(1) FROM game_rounds WHERE game_id = ?`)
	if err != nil {
		return 0, fmt.Errorf("build count game rounds query: %w", err)
	}
	var rounds int64
	if err := tx.GetContext(ctx, &rounds, countQuery, gameID); err != nil {
		return 0, fmt.Errorf("count game rounds: %w", err)
	}

	deleteWinnersQuery, err := r.store.query(`DELETE FROM round_winners WHERE round_id IN (SELECT id FROM game_rounds WHERE game_id = ?)`)
	if err != nil {
		return 0, fmt.Errorf("build delete game winners query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteWinnersQuery, gameID); err != nil {
		return 0, fmt.Errorf("delete game winners: %w", err)
	}

	deleteRoundsQuery, err := r.store.query(`DELETE FROM game_rounds WHERE game_id = ?`)
	if err != nil {
		return 0, fmt.Errorf("build delete game rounds query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteRoundsQuery, gameID); err != nil {
		return 0, fmt.Errorf("delete game rounds: %w", err)
	}

	deleteGameQuery, err := r.store.query(`DELETE FROM games WHERE id = ?`)
	if err != nil {
		return 0, fmt.Errorf("build delete game query: %w", err)
	}
	result, err := tx.ExecContext(ctx, deleteGameQuery, gameID)
	if err != nil {
		return 0, fmt.Errorf("delete game: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected delete game: %w", err)
	}
	if affected == 0 {
		return 0, fmt.Errorf("delete game: not found")
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit delete game tx: %w", err)
	}

	return rounds, nil
}
