package sqldb

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/caballebrios/nightboard/internal/domain/admin"
	"github.com/caballebrios/nightboard/internal/domain/penalty"
	"github.com/caballebrios/nightboard/internal/domain/season"
)

//go:embed seeddata/season1.json
var season1JSON []byte

// historyDataset is one season's worth of played nights. Entities are
// referenced by unique name so the loader can resolve or create them on
// any database.
type historyDataset struct {
	Season  historySeason  `json:"season"`
	Players []string       `json:"players"`
	Games   []historyGame  `json:"games"`
	Nights  []historyNight `json:"nights"`
}

type historySeason struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsActive  bool   `json:"is_active"`
}

type historyGame struct {
	Name         string `json:"name"`
	PointsPerWin int    `json:"points_per_win"`
	Description  string `json:"description"`
}

type historyNight struct {
	Date      string           `json:"date"`
	Notes     string           `json:"notes"`
	Rounds    []historyRound   `json:"rounds"`
	Penalties []historyPenalty `json:"penalties"`
}

type historyRound struct {
	Game string `json:"game"`
	// Points is the value recorded at the time of play. Scoring uses the
	// game's canonical points_per_win, so the loader does not read it.
	Points  int      `json:"points"`
	Winners []string `json:"winners"`
}

type historyPenalty struct {
	Player string  `json:"player"`
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

// ImportHistory loads the bundled "Temporada 1" dataset.
func (r *AdminRepository) ImportHistory(ctx context.Context) (admin.ImportResult, error) {
	ds, err := decodeHistoryDataset(season1JSON)
	if err != nil {
		return admin.ImportResult{}, err
	}
	return r.loadHistory(ctx, ds)
}

// loadHistory inserts a season's played history in a single transaction.
// Players, games, and the season are resolved by name and created when
// missing. A season that already has nights is assumed imported and left
// untouched.
func (r *AdminRepository) loadHistory(ctx context.Context, ds historyDataset) (admin.ImportResult, error) {
	tx, err := r.store.db.BeginTxx(ctx, nil)
	if err != nil {
		return admin.ImportResult{}, fmt.Errorf("begin history import tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	insertSeasonQuery, err := r.store.query(`INSERT OR IGNORE INTO seasons (name, start_date, end_date, is_active) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return admin.ImportResult{}, fmt.Errorf("build seed season query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, insertSeasonQuery, ds.Season.Name, ds.Season.StartDate, nullableText(ds.Season.EndDate), boolToInt(ds.Season.IsActive)); err != nil {
		return admin.ImportResult{}, fmt.Errorf("seed season %s: %w", ds.Season.Name, err)
	}

	selectSeasonQuery, err := r.store.query(`SELECT id FROM seasons WHERE name = ?`)
	if err != nil {
		return admin.ImportResult{}, fmt.Errorf("build resolve season query: %w", err)
	}
	var seasonID int64
	if err := tx.GetContext(ctx, &seasonID, selectSeasonQuery, ds.Season.Name); err != nil {
		return admin.ImportResult{}, fmt.Errorf("resolve season %s: %w", ds.Season.Name, err)
	}

	countNightsQuery, err := r.store.query(`SELECT COUNT(1) FROM game_nights WHERE season_id = ?`)
	if err != nil {
		return admin.ImportResult{}, fmt.Errorf("build count season nights query: %w", err)
	}
	var nightCount int
	if err := tx.GetContext(ctx, &nightCount, countNightsQuery, seasonID); err != nil {
		return admin.ImportResult{}, fmt.Errorf("count season nights: %w", err)
	}
	if nightCount > 0 {
		return admin.ImportResult{SeasonName: ds.Season.Name, AlreadyImported: true}, nil
	}

	insertPlayerQuery, err := r.store.query(`INSERT OR IGNORE INTO players (name) VALUES (?)`)
	if err != nil {
		return admin.ImportResult{}, fmt.Errorf("build seed player query: %w", err)
	}
	selectPlayerQuery, err := r.store.query(`SELECT id FROM players WHERE name = ?`)
	if err != nil {
		return admin.ImportResult{}, fmt.Errorf("build resolve player query: %w", err)
	}
	playerIDs := make(map[string]int64, len(ds.Players))
	for _, name := range ds.Players {
		if _, err := tx.ExecContext(ctx, insertPlayerQuery, name); err != nil {
			return admin.ImportResult{}, fmt.Errorf("seed player %s: %w", name, err)
		}
		var id int64
		if err := tx.GetContext(ctx, &id, selectPlayerQuery, name); err != nil {
			return admin.ImportResult{}, fmt.Errorf("resolve player %s: %w", name, err)
		}
		playerIDs[name] = id
	}

	insertGameQuery, err := r.store.query(`INSERT OR IGNORE INTO games (name, points_per_win, description) VALUES (?, ?, ?)`)
	if err != nil {
		return admin.ImportResult{}, fmt.Errorf("build seed game query: %w", err)
	}
	selectGameQuery, err := r.store.query(`SELECT id FROM games WHERE name = ?`)
	if err != nil {
		return admin.ImportResult{}, fmt.Errorf("build resolve game query: %w", err)
	}
	gameIDs := make(map[string]int64, len(ds.Games))
	for _, g := range ds.Games {
		if _, err := tx.ExecContext(ctx, insertGameQuery, g.Name, g.PointsPerWin, nullableText(g.Description)); err != nil {
			return admin.ImportResult{}, fmt.Errorf("seed game %s: %w", g.Name, err)
		}
		var id int64
		if err := tx.GetContext(ctx, &id, selectGameQuery, g.Name); err != nil {
			return admin.ImportResult{}, fmt.Errorf("resolve game %s: %w", g.Name, err)
		}
		gameIDs[g.Name] = id
	}

	insertNightQuery, err := r.store.query(`INSERT INTO game_nights (season_id, date, notes) VALUES (?, ?, ?)`)
	if err != nil {
		return admin.ImportResult{}, fmt.Errorf("build seed night query: %w", err)
	}
	insertRoundQuery, err := r.store.query(`INSERT INTO game_rounds (game_night_id, game_id, round_number, notes) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return admin.ImportResult{}, fmt.Errorf("build seed round query: %w", err)
	}
	insertWinnerQuery, err := r.store.query(`INSERT INTO round_winners (round_id, player_id) VALUES (?, ?)`)
	if err != nil {
		return admin.ImportResult{}, fmt.Errorf("build seed winner query: %w", err)
	}
	insertPenaltyQuery, err := r.store.query(`INSERT INTO penalties (game_night_id, player_id, penalty_type, amount, reason) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return admin.ImportResult{}, fmt.Errorf("build seed penalty query: %w", err)
	}

	result := admin.ImportResult{SeasonName: ds.Season.Name}
	for _, n := range ds.Nights {
		nightID, err := r.store.insertID(ctx, tx, insertNightQuery, seasonID, n.Date, nullableText(n.Notes))
		if err != nil {
			return admin.ImportResult{}, fmt.Errorf("seed night %s: %w", n.Date, err)
		}
		result.NightsImported++

		for i, round := range n.Rounds {
			gameID, ok := gameIDs[round.Game]
			if !ok {
				return admin.ImportResult{}, crerr.Newf("night %s round %d references unknown game %q", n.Date, i+1, round.Game)
			}
			roundID, err := r.store.insertID(ctx, tx, insertRoundQuery, nightID, gameID, i+1, nullableText(""))
			if err != nil {
				return admin.ImportResult{}, fmt.Errorf("seed night %s round %d: %w", n.Date, i+1, err)
			}
			result.RoundsImported++

			for _, winner := range round.Winners {
				playerID, ok := playerIDs[winner]
				if !ok {
					return admin.ImportResult{}, crerr.Newf("night %s round %d references unknown player %q", n.Date, i+1, winner)
				}
				if _, err := tx.ExecContext(ctx, insertWinnerQuery, roundID, playerID); err != nil {
					return admin.ImportResult{}, fmt.Errorf("seed night %s round %d winner %s: %w", n.Date, i+1, winner, err)
				}
			}
		}

		for _, p := range n.Penalties {
			playerID, ok := playerIDs[p.Player]
			if !ok {
				return admin.ImportResult{}, crerr.Newf("night %s penalty references unknown player %q", n.Date, p.Player)
			}
			if _, err := tx.ExecContext(ctx, insertPenaltyQuery, nightID, playerID, p.Type, p.Amount, nullableText(p.Reason)); err != nil {
				return admin.ImportResult{}, fmt.Errorf("seed night %s penalty for %s: %w", n.Date, p.Player, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return admin.ImportResult{}, fmt.Errorf("commit history import tx: %w", err)
	}

	return result, nil
}

func decodeHistoryDataset(raw []byte) (historyDataset, error) {
	var ds historyDataset
	if err := sonic.Unmarshal(raw, &ds); err != nil {
		return historyDataset{}, crerr.Wrap(err, "decode history dataset")
	}

	if strings.TrimSpace(ds.Season.Name) == "" {
		return historyDataset{}, crerr.New("history dataset: season name is required")
	}
	if _, err := time.Parse(season.DateLayout, ds.Season.StartDate); err != nil {
		return historyDataset{}, crerr.Wrapf(err, "history dataset: season start date %q", ds.Season.StartDate)
	}
	if ds.Season.EndDate != "" {
		if _, err := time.Parse(season.DateLayout, ds.Season.EndDate); err != nil {
			return historyDataset{}, crerr.Wrapf(err, "history dataset: season end date %q", ds.Season.EndDate)
		}
	}

	for _, g := range ds.Games {
		if strings.TrimSpace(g.Name) == "" || g.PointsPerWin < 1 {
			return historyDataset{}, crerr.Newf("history dataset: game %q needs a name and at least one point per win", g.Name)
		}
	}

	for _, n := range ds.Nights {
		if _, err := time.Parse(season.DateLayout, n.Date); err != nil {
			return historyDataset{}, crerr.Wrapf(err, "history dataset: night date %q", n.Date)
		}
		for i, round := range n.Rounds {
			if len(round.Winners) == 0 {
				return historyDataset{}, crerr.Newf("history dataset: night %s round %d has no winners", n.Date, i+1)
			}
		}
		for _, p := range n.Penalties {
			if _, ok := penalty.AllTypes[penalty.Type(p.Type)]; !ok {
				return historyDataset{}, crerr.Newf("history dataset: night %s has unknown penalty type %q", n.Date, p.Type)
			}
			if p.Amount < 0 {
				return historyDataset{}, crerr.Newf("history dataset: night %s has negative penalty amount", n.Date)
			}
		}
	}

	return ds, nil
}
