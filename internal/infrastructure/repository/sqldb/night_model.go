package sqldb

import (
	"database/sql"

	"github.com/caballebrios/nightboard/internal/domain/night"
)

type nightTableModel struct {
	ID       int64          `db:"id"`
	SeasonID int64          `db:"season_id"`
	Date     dateString     `db:"date"`
	Notes    sql.NullString `db:"notes"`
}

func nightFromRow(row nightTableModel) night.Night {
	return night.Night{
		ID:       row.ID,
		SeasonID: row.SeasonID,
		Date:     string(row.Date),
		Notes:    row.Notes.String,
	}
}

type nightSummaryTableModel struct {
	ID         int64          `db:"id"`
	SeasonID   int64          `db:"season_id"`
	Date       dateString     `db:"date"`
	Notes      sql.NullString `db:"notes"`
	RoundCount int            `db:"round_count"`
	GameCount  int            `db:"game_count"`
}

func nightSummaryFromRow(row nightSummaryTableModel) night.Summary {
	return night.Summary{
		Night: night.Night{
			ID:       row.ID,
			SeasonID: row.SeasonID,
			Date:     string(row.Date),
			Notes:    row.Notes.String,
		},
		RoundCount: row.RoundCount,
		GameCount:  row.GameCount,
	}
}

type roundTableModel struct {
	ID          int64          `db:"id"`
	NightID     int64          `db:"game_night_id"`
	GameID      int64          `db:"game_id"`
	RoundNumber int            `db:"round_number"`
	Notes       sql.NullString `db:"notes"`
}

type roundDetailTableModel struct {
	ID          int64          `db:"id"`
	NightID     int64          `db:"game_night_id"`
	NightDate   dateString     `db:"night_date"`
	GameID      int64          `db:"game_id"`
	GameName    string         `db:"game_name"`
	RoundNumber int            `db:"round_number"`
	Notes       sql.NullString `db:"notes"`
	Winners     sql.NullString `db:"winners"`
}

func roundDetailFromRow(row roundDetailTableModel) night.RoundDetail {
	return night.RoundDetail{
		ID:          row.ID,
		NightID:     row.NightID,
		NightDate:   string(row.NightDate),
		GameID:      row.GameID,
		GameName:    row.GameName,
		RoundNumber: row.RoundNumber,
		Notes:       row.Notes.String,
		Winners:     row.Winners.String,
	}
}
