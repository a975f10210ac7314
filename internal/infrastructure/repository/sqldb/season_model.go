package sqldb

import "github.com/caballebrios/nightboard/internal/domain/season"

type seasonTableModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	StartDate dateString `db:"start_date"`
	EndDate   dateString `db:"end_date"`
	IsActive  int        `db:"is_active"`
}

func seasonFromRow(row seasonTableModel) season.Season {
	return season.Season{
		ID:        row.ID,
		Name:      row.Name,
		StartDate: string(row.StartDate),
		EndDate:   string(row.EndDate),
		IsActive:  row.IsActive != 0,
	}
}
