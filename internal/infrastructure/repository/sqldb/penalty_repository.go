package sqldb

import (
	"context"
	"fmt"

	"github.com/caballebrios/nightboard/internal/domain/penalty"
)

type PenaltyRepository struct {
	store *Store
}

func NewPenaltyRepository(store *Store) *PenaltyRepository {
	return &PenaltyRepository{store: store}
}

func (r *PenaltyRepository) Create(ctx context.Context, p penalty.Penalty) (int64, error) {
	query, err := r.store.query(`INSERT INTO penalties (game_night_id, player_id, penalty_type, amount, reason) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("build create penalty query: %w", err)
	}

	id, err := r.store.insertID(ctx, r.store.db, query, p.NightID, p.PlayerID, string(p.Type), p.Amount, nullableText(p.Reason))
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, penalty.ErrMissingReference
		}
		return 0, fmt.Errorf("create penalty: %w", err)
	}

	return id, nil
}

func (r *PenaltyRepository) GetByID(ctx context.Context, penaltyID int64) (penalty.Penalty, bool, error) {
	query, err := r.store.query(`SELECT id, game_night_id, player_id, penalty_type, amount, reason FROM penalties WHERE id = ?`)
	if err != nil {
		return penalty.Penalty{}, false, fmt.Errorf("build get penalty by id query: %w", err)
	}

	var row penaltyTableModel
	if err := r.store.db.GetContext(ctx, &row, query, penaltyID); err != nil {
		if isNotFound(err) {
			return penalty.Penalty{}, false, nil
		}
		return penalty.Penalty{}, false, fmt.Errorf("get penalty by id: %w", err)
	}

	return penaltyFromRow(row), true, nil
}

const penaltyDetailSelect = `SELECT pen.id, pen.game_night_id, pen.player_id, pen.penalty_type, pen.amount, pen.reason,
	p.name AS player_name, gn.date AS night_date
FROM penalties pen
JOIN players p ON p.id = pen.player_id
JOIN game_nights gn ON gn.id = pen.game_night_id`

func (r *PenaltyRepository) ListByNight(ctx context.Context, nightID int64) ([]penalty.Detail, error) {
	query, err := r.store.query(penaltyDetailSelect + `
WHERE pen.game_night_id = ?
ORDER BY pen.id`)
	if err != nil {
		return nil, fmt.Errorf("build list night penalties query: %w", err)
	}

	var rows []penaltyDetailTableModel
	if err := r.store.db.SelectContext(ctx, &rows, query, nightID); err != nil {
		return nil, fmt.Errorf("list night penalties: %w", err)
	}

	out := make([]penalty.Detail, 0, len(rows))
	for _, row := range rows {
		out = append(out, penaltyDetailFromRow(row))
	}
	return out, nil
}

func (r *PenaltyRepository) List(ctx context.Context) ([]penalty.Detail, error) {
	query, err := r.store.query(penaltyDetailSelect + `
ORDER BY gn.date DESC, pen.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("build list penalties query: %w", err)
	}

	var rows []penaltyDetailTableModel
	if err := r.store.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list penalties: %w", err)
	}

	out := make([]penalty.Detail, 0, len(rows))
	for _, row := range rows {
		out = append(out, penaltyDetailFromRow(row))
	}
	return out, nil
}

func (r *PenaltyRepository) Update(ctx context.Context, penaltyID int64, amount float64, reason string) error {
	query, err := r.store.query(`UPDATE penalties SET amount = ?, reason = ? WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("build update penalty query: %w", err)
	}

	result, err := r.store.db.ExecContext(ctx, query, amount, nullableText(reason), penaltyID)
	if err != nil {
		return fmt.Errorf("update penalty: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update penalty: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update penalty: not found")
	}

	return nil
}

func (r *PenaltyRepository) Delete(ctx context.Context, penaltyID int64) error {
	query, err := r.store.query(`DELETE FROM penalties WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("build delete penalty query: %w", err)
	}

	result, err := r.store.db.ExecContext(ctx, query, penaltyID)
	if err != nil {
		return fmt.Errorf("delete penalty: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected delete penalty: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete penalty: not found")
	}

	return nil
}
