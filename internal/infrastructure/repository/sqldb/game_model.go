package sqldb

import (
	"database/sql"

	"github.com/caballebrios/nightboard/internal/domain/game"
)

type gameTableModel struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	PointsPerWin int            `db:"points_per_win"`
	Description  sql.NullString `db:"description"`
}

func gameFromRow(row gameTableModel) game.Game {
	return game.Game{
		ID:           row.ID,
		Name:         row.Name,
		PointsPerWin: row.PointsPerWin,
		Description:  row.Description.String,
	}
}
