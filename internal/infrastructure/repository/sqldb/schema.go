package sqldb

import (
	"context"
	"fmt"

	"github.com/caballebrios/nightboard/internal/domain/settings"
)

// defaultPenaltyAmountSeed is only inserted when the key is absent, so an
// amount the club has changed survives restarts.
const defaultPenaltyAmountSeed = "10"

// EnsureSchema creates the eight relations if they do not exist and seeds
// the default penalty amount. Safe to run on every start.
func (s *Store) EnsureSchema(ctx context.Context) error {
	d := s.Dialect()

	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS players (
	id %s,
	name TEXT NOT NULL UNIQUE,
	profile_pic %s,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`, d.AutoIncrementPK(), d.BlobType()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS seasons (
	id %s,
	name TEXT NOT NULL UNIQUE,
	start_date DATE,
	end_date DATE,
	is_active %s DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`, d.AutoIncrementPK(), d.BoolType()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS games (
	id %s,
	name TEXT NOT NULL UNIQUE,
	points_per_win INTEGER NOT NULL,
	description TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`, d.AutoIncrementPK()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS game_nights (
	id %s,
	season_id INTEGER NOT NULL,
	date DATE NOT NULL,
	notes TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (season_id) REFERENCES seasons (id)
)`, d.AutoIncrementPK()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS game_rounds (
	id %s,
	game_night_id INTEGER NOT NULL,
	game_id INTEGER NOT NULL,
	round_number INTEGER NOT NULL,
	notes TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (game_night_id) REFERENCES game_nights (id),
	FOREIGN KEY (game_id) REFERENCES games (id)
)`, d.AutoIncrementPK()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS round_winners (
	id %s,
	round_id INTEGER NOT NULL,
	player_id INTEGER NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (round_id) REFERENCES game_rounds (id),
	FOREIGN KEY (player_id) REFERENCES players (id)
)`, d.AutoIncrementPK()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS penalties (
	id %s,
	game_night_id INTEGER NOT NULL,
	player_id INTEGER NOT NULL,
	penalty_type TEXT NOT NULL,
	amount REAL NOT NULL,
	reason TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (game_night_id) REFERENCES game_nights (id),
	FOREIGN KEY (player_id) REFERENCES players (id)
)`, d.AutoIncrementPK()),
		`CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`,
	}

	for _, statement := range statements {
		if _, err := s.db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	query, err := s.query(`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("build seed settings query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, settings.KeyDefaultPenaltyAmount, defaultPenaltyAmountSeed); err != nil {
		return fmt.Errorf("seed default penalty amount: %w", err)
	}

	return nil
}
