package sqldb

import (
	"database/sql"

	"github.com/caballebrios/nightboard/internal/domain/penalty"
)

type penaltyTableModel struct {
	ID       int64          `db:"id"`
	NightID  int64          `db:"game_night_id"`
	PlayerID int64          `db:"player_id"`
	Type     string         `db:"penalty_type"`
	Amount   float64        `db:"amount"`
	Reason   sql.NullString `db:"reason"`
}

func penaltyFromRow(row penaltyTableModel) penalty.Penalty {
	return penalty.Penalty{
		ID:       row.ID,
		NightID:  row.NightID,
		PlayerID: row.PlayerID,
		Type:     penalty.Type(row.Type),
		Amount:   row.Amount,
		Reason:   row.Reason.String,
	}
}

type penaltyDetailTableModel struct {
	ID         int64          `db:"id"`
	NightID    int64          `db:"game_night_id"`
	PlayerID   int64          `db:"player_id"`
	Type       string         `db:"penalty_type"`
	Amount     float64        `db:"amount"`
	Reason     sql.NullString `db:"reason"`
	PlayerName string         `db:"player_name"`
	NightDate  dateString     `db:"night_date"`
}

func penaltyDetailFromRow(row penaltyDetailTableModel) penalty.Detail {
	return penalty.Detail{
		Penalty: penalty.Penalty{
			ID:       row.ID,
			NightID:  row.NightID,
			PlayerID: row.PlayerID,
			Type:     penalty.Type(row.Type),
			Amount:   row.Amount,
			Reason:   row.Reason.String,
		},
		PlayerName: row.PlayerName,
		NightDate:  string(row.NightDate),
	}
}
