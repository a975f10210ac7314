package sqldb

import (
	"context"
	"fmt"

	"github.com/caballebrios/nightboard/internal/domain/night"
)

type NightRepository struct {
	store *Store
}

func NewNightRepository(store *Store) *NightRepository {
	return &NightRepository{store: store}
}

func (r *NightRepository) Create(ctx context.Context, n night.Night) (int64, error) {
	query, err := r.store.query(`INSERT INTO game_nights (season_id, date, notes) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("build create night query: %w", err)
	}

	id, err := r.store.insertID(ctx, r.store.db, query, n.SeasonID, n.Date, nullableText(n.Notes))
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, night.ErrMissingReference
		}
		return 0, fmt.Errorf("create night: %w", err)
	}

	return id, nil
}

const nightSummarySelect = `SELECT gn.id, gn.season_id, gn.date, gn.notes,
	COUNT(gr.id) AS round_count,
	COUNT(DISTINCT gr.game_id) AS game_count
FROM game_nights gn
LEFT JOIN game_rounds gr ON gr.game_night_id = gn.id
WHERE gn.season_id = ?
GROUP BY gn.id, gn.season_id, gn.date, gn.notes
ORDER BY gn.date DESC, gn.id DESC`

func (r *NightRepository) ListBySeason(ctx context.Context, seasonID int64) ([]night.Summary, error) {
	query, err := r.store.query(nightSummarySelect)
	if err != nil {
		return nil, fmt.Errorf("build list nights query: %w", err)
	}

	var rows []nightSummaryTableModel
	if err := r.store.db.SelectContext(ctx, &rows, query, seasonID); err != nil {
		return nil, fmt.Errorf("list nights: %w", err)
	}

	out := make([]night.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, nightSummaryFromRow(row))
	}
	return out, nil
}

func (r *NightRepository) ListRecentBySeason(ctx context.Context, seasonID int64, limit int) ([]night.Summary, error) {
	query, err := r.store.query(nightSummarySelect + `
LIMIT ?`)
	if err != nil {
		return nil, fmt.Errorf("build list recent nights query: %w", err)
	}

	var rows []nightSummaryTableModel
	if err := r.store.db.SelectContext(ctx, &rows, query, seasonID, limit); err != nil {
		return nil, fmt.Errorf("list recent nights: %w", err)
	}

	out := make([]night.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, nightSummaryFromRow(row))
	}
	return out, nil
}

func (r *NightRepository) GetByID(ctx context.Context, nightID int64) (night.Night, bool, error) {
	query, err := r.store.query(`SELECT id, season_id, date, notes FROM game_nights WHERE id = ?`)
	if err != nil {
		return night.Night{}, false, fmt.Errorf("build get night by id query: %w", err)
	}

	var row nightTableModel
	if err := r.store.db.GetContext(ctx, &row, query, nightID); err != nil {
		if isNotFound(err) {
			return night.Night{}, false, nil
		}
		return night.Night{}, false, fmt.Errorf("get night by id: %w", err)
	}

	return nightFromRow(row), true, nil
}

func (r *NightRepository) Delete(ctx context.Context, nightID int64) error {
	tx, err := r.store.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx delete night: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteWinnersQuery, err := r.store.query(`DELETE FROM round_winners WHERE round_id IN (SELECT id FROM game_rounds WHERE game_night_id = ?)`)
	if err != nil {
		return fmt.Errorf("build delete night winners query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteWinnersQuery, nightID); err != nil {
		return fmt.Errorf("delete night winners: %w", err)
	}

	deleteRoundsQuery, err := r.store.query(`DELETE FROM game_rounds WHERE game_night_id = ?`)
	if err != nil {
		return fmt.Errorf("build delete night rounds query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteRoundsQuery, nightID); err != nil {
		return fmt.Errorf("delete night rounds: %w", err)
	}

	deletePenaltiesQuery, err := r.store.query(`DELETE FROM penalties WHERE game_night_id = ?`)
	if err != nil {
		return fmt.Errorf("build delete night penalties query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deletePenaltiesQuery, nightID); err != nil {
		return fmt.Errorf("delete night penalties: %w", err)
	}

	deleteNightQuery, err := r.store.query(`DELETE FROM game_nights WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("build delete night query: %w", err)
	}
	result, err := tx.ExecContext(ctx, deleteNightQuery, nightID)
	if err != nil {
		return fmt.Errorf("delete night: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected delete night: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete night: not found")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete night tx: %w", err)
	}

	return nil
}

func (r *NightRepository) CreateRound(ctx context.Context, round night.Round) (int64, error) {
	tx, err := r.store.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx create round: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	insertRoundQuery, err := r.store.query(`INSERT INTO game_rounds (game_night_id, game_id, round_number, notes) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("build create round query: %w", err)
	}
	roundID, err := r.store.insertID(ctx, tx, insertRoundQuery, round.NightID, round.GameID, round.RoundNumber, nullableText(round.Notes))
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, night.ErrMissingReference
		}
		return 0, fmt.Errorf("create round: %w", err)
	}

	insertWinnerQuery, err := r.store.query(`INSERT INTO round_winners (round_id, player_id) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("build create round winner query: %w", err)
	}
	for _, playerID := range round.WinnerIDs {
		if _, err := tx.ExecContext(ctx, insertWinnerQuery, roundID, playerID); err != nil {
			if isForeignKeyViolation(err) {
				return 0, night.ErrMissingReference
			}
			return 0, fmt.Errorf("create round winner %d: %w", playerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create round tx: %w", err)
	}

	return roundID, nil
}

func (r *NightRepository) GetRound(ctx context.Context, roundID int64) (night.Round, bool, error) {
	roundQuery, err := r.store.query(`SELECT id, game_night_id, game_id, round_number, notes FROM game_rounds WHERE id = ?`)
	if err != nil {
		return night.Round{}, false, fmt.Errorf("build get round query: %w", err)
	}

	var row roundTableModel
	if err := r.store.db.GetContext(ctx, &row, roundQuery, roundID); err != nil {
		if isNotFound(err) {
			return night.Round{}, false, nil
		}
		return night.Round{}, false, fmt.Errorf("get round: %w", err)
	}

	winnersQuery, err := r.store.query(`SELECT player_id FROM round_winners WHERE round_id = ? ORDER BY id`)
	if err != nil {
		return night.Round{}, false, fmt.Errorf("build get round winners query: %w", err)
	}
	var winnerIDs []int64
	if err := r.store.db.SelectContext(ctx, &winnerIDs, winnersQuery, roundID); err != nil {
		return night.Round{}, false, fmt.Errorf("get round winners: %w", err)
	}

	return night.Round{
		ID:          row.ID,
		NightID:     row.NightID,
		GameID:      row.GameID,
		RoundNumber: row.RoundNumber,
		Notes:       row.Notes.String,
		WinnerIDs:   winnerIDs,
	}, true, nil
}

const roundDetailSelect = `SELECT gr.id, gr.game_night_id, gn.date AS night_date, gr.game_id, g.name AS game_name,
	gr.round_number, gr.notes, GROUP_CONCAT(p.name, ', ') AS winners
FROM game_rounds gr
JOIN game_nights gn ON gn.id = gr.game_night_id
JOIN games g ON g.id = gr.game_id
LEFT JOIN round_winners rw ON rw.round_id = gr.id
LEFT JOIN players p ON p.id = rw.player_id`

const roundDetailGroupBy = `
GROUP BY gr.id, gr.game_night_id, gn.date, gr.game_id, g.name, gr.round_number, gr.notes`

func (r *NightRepository) ListRoundsByNight(ctx context.Context, nightID int64) ([]night.RoundDetail, error) {
	query, err := r.store.query(roundDetailSelect + `
WHERE gr.game_night_id = ?` + roundDetailGroupBy + `
ORDER BY gr.round_number`)
	if err != nil {
		return nil, fmt.Errorf("build list night rounds query: %w", err)
	}

	var rows []roundDetailTableModel
	if err := r.store.db.SelectContext(ctx, &rows, query, nightID); err != nil {
		return nil, fmt.Errorf("list night rounds: %w", err)
	}

	out := make([]night.RoundDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, roundDetailFromRow(row))
	}
	return out, nil
}

func (r *NightRepository) ListRoundsBySeason(ctx context.Context, seasonID int64) ([]night.RoundDetail, error) {
	query, err := r.store.query(roundDetailSelect + `
WHERE gn.season_id = ?` + roundDetailGroupBy + `
ORDER BY gn.date DESC, gr.round_number`)
	if err != nil {
		return nil, fmt.Errorf("build list season rounds query: %w", err)
	}

	var rows []roundDetailTableModel
	if err := r.store.db.SelectContext(ctx, &rows, query, seasonID); err != nil {
		return nil, fmt.Errorf("list season rounds: %w", err)
	}

	out := make([]night.RoundDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, roundDetailFromRow(row))
	}
	return out, nil
}

func (r *NightRepository) DeleteRound(ctx context.Context, roundID int64) error {
	tx, err := r.store.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx delete round: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteWinnersQuery, err := r.store.query(`DELETE FROM round_winners WHERE round_id = ?`)
	if err != nil {
		return fmt.Errorf("build delete round winners query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteWinnersQuery, roundID); err != nil {
		return fmt.Errorf("delete round winners: %w", err)
	}

	deleteRoundQuery, err := r.store.query(`DELETE FROM game_rounds WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("build delete round query: %w", err)
	}
	result, err := tx.ExecContext(ctx, deleteRoundQuery, roundID)
	if err != nil {
		return fmt.Errorf("delete round: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected delete round: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete round: not found")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete round tx: %w", err)
	}

	return nil
}
