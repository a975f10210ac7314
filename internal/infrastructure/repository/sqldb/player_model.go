package sqldb

type playerTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
