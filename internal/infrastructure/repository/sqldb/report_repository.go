package sqldb

import (
	"context"
	"fmt"

	"github.com/caballebrios/nightboard/internal/domain/report"
)

// ReportRepository runs the fixed report menu. Every query here is written
// once in SQLite conventions and must return the same numbers on both
// backends after translation.
type ReportRepository struct {
	store *Store
}

func NewReportRepository(store *Store) *ReportRepository {
	return &ReportRepository{store: store}
}

// Leaderboard keeps zero-win players visible by aggregating wins in a
// season-filtered derived table before joining players onto it. Filtering
// in an outer WHERE would drop players whose wins all sit in other seasons.
func (r *ReportRepository) Leaderboard(ctx context.Context, seasonID int64) ([]report.LeaderboardRow, error) {
	query, err := r.store.query(`SELECT p.id AS player_id, p.name AS player_name,
	COALESCE(w.total_points, 0) AS total_points,
	COALESCE(w.rounds_won, 0) AS rounds_won
FROM players p
LEFT JOIN (
	SELECT rw.player_id, SUM(g.points_per_win) AS total_points, COUNT(rw.id) AS rounds_won
	FROM round_winners rw
	JOIN game_rounds gr ON gr.id = rw.round_id
	JOIN games g ON g.id = gr.game_id
	JOIN game_nights gn ON gn.id = gr.game_night_id
	WHERE gn.season_id = ?
	GROUP BY rw.player_id
) w ON w.player_id = p.id
ORDER BY total_points DESC`)
	if err != nil {
		return nil, fmt.Errorf("build leaderboard query: %w", err)
	}

	var rows []leaderboardRowModel
	if err := r.store.db.SelectContext(ctx, &rows, query, seasonID); err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}

	out := make([]report.LeaderboardRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.LeaderboardRow{
			PlayerID:    row.PlayerID,
			PlayerName:  row.PlayerName,
			TotalPoints: row.TotalPoints,
			RoundsWon:   row.RoundsWon,
		})
	}
	return out, nil
}

// DetailedLeaderboard aggregates wins and penalties in independent derived
// tables so one side cannot multiply the other's rows.
func (r *ReportRepository) DetailedLeaderboard(ctx context.Context, seasonID int64) ([]report.DetailedRow, error) {
	query, err := r.store.query(`SELECT p.id AS player_id, p.name AS player_name,
	COALESCE(w.total_points, 0) AS total_points,
	COALESCE(w.rounds_won, 0) AS rounds_won,
	COALESCE(w.games_won, 0) AS games_won,
	COALESCE(w.nights_won, 0) AS nights_won,
	COALESCE(pp.penalty_count, 0) AS penalty_count,
	COALESCE(pp.penalty_total, 0) AS penalty_total
FROM players p
LEFT JOIN (
	SELECT rw.player_id,
		SUM(g.points_per_win) AS total_points,
		COUNT(rw.id) AS rounds_won,
		COUNT(DISTINCT gr.game_id) AS games_won,
		COUNT(DISTINCT gr.game_night_id) AS nights_won
	FROM round_winners rw
	JOIN game_rounds gr ON gr.id = rw.round_id
	JOIN games g ON g.id = gr.game_id
	JOIN game_nights gn ON gn.id = gr.game_night_id
	WHERE gn.season_id = ?
	GROUP BY rw.player_id
) w ON w.player_id = p.id
LEFT JOIN (
	SELECT pen.player_id, COUNT(pen.id) AS penalty_count, SUM(pen.amount) AS penalty_total
	FROM penalties pen
	JOIN game_nights gn ON gn.id = pen.game_night_id
	WHERE gn.season_id = ?
	GROUP BY pen.player_id
) pp ON pp.player_id = p.id
ORDER BY total_points DESC`)
	if err != nil {
		return nil, fmt.Errorf("build detailed leaderboard query: %w", err)
	}

	var rows []detailedRowModel
	if err := r.store.db.SelectContext(ctx, &rows, query, seasonID, seasonID); err != nil {
		return nil, fmt.Errorf("detailed leaderboard: %w", err)
	}

	out := make([]report.DetailedRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.DetailedRow{
			PlayerID:     row.PlayerID,
			PlayerName:   row.PlayerName,
			TotalPoints:  row.TotalPoints,
			RoundsWon:    row.RoundsWon,
			GamesWon:     row.GamesWon,
			NightsWon:    row.NightsWon,
			PenaltyCount: row.PenaltyCount,
			PenaltyTotal: row.PenaltyTotal,
		})
	}
	return out, nil
}

// Progression orders the running window by night date then round id, so
// same-date nights accumulate in round insertion order.
func (r *ReportRepository) Progression(ctx context.Context, seasonID int64) ([]report.ProgressionPoint, error) {
	query, err := r.store.query(`SELECT p.id AS player_id, p.name AS player_name, gn.date AS night_date, gr.id AS round_id,
	g.points_per_win AS points,
	SUM(g.points_per_win) OVER (PARTITION BY p.id ORDER BY gn.date, gr.id) AS running_total
FROM round_winners rw
JOIN game_rounds gr ON gr.id = rw.round_id
JOIN games g ON g.id = gr.game_id
JOIN game_nights gn ON gn.id = gr.game_night_id
JOIN players p ON p.id = rw.player_id
WHERE gn.season_id = ?
ORDER BY p.name, gn.date, gr.id`)
	if err != nil {
		return nil, fmt.Errorf("build progression query: %w", err)
	}

	var rows []progressionPointModel
	if err := r.store.db.SelectContext(ctx, &rows, query, seasonID); err != nil {
		return nil, fmt.Errorf("progression: %w", err)
	}

	out := make([]report.ProgressionPoint, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.ProgressionPoint{
			PlayerID:     row.PlayerID,
			PlayerName:   row.PlayerName,
			NightDate:    string(row.NightDate),
			RoundID:      row.RoundID,
			Points:       row.Points,
			RunningTotal: row.RunningTotal,
		})
	}
	return out, nil
}

// BestGames compares each (player, game) win count against the player's
// per-game maximum. The derived table is uncorrelated and aliased, with
// the player correlation in the scalar subquery's WHERE, which both
// backends accept. Ties produce one row per tied game.
func (r *ReportRepository) BestGames(ctx context.Context, seasonID int64) ([]report.BestGameRow, error) {
	query, err := r.store.query(`SELECT p.id AS player_id, p.name AS player_name, g.id AS game_id, g.name AS game_name,
	COUNT(rw.id) AS wins, COUNT(rw.id) * g.points_per_win AS points
FROM round_winners rw
JOIN game_rounds gr ON gr.id = rw.round_id
JOIN games g ON g.id = gr.game_id
JOIN game_nights gn ON gn.id = gr.game_night_id
JOIN players p ON p.id = rw.player_id
WHERE gn.season_id = ?
GROUP BY p.id, p.name, g.id, g.name, g.points_per_win
HAVING COUNT(rw.id) = (
	SELECT MAX(per_game.win_count) FROM (
		SELECT rw2.player_id AS player_id, COUNT(rw2.id) AS win_count
		FROM round_winners rw2
		JOIN game_rounds gr2 ON gr2.id = rw2.round_id
		JOIN game_nights gn2 ON gn2.id = gr2.game_night_id
		WHERE gn2.season_id = ?
		GROUP BY rw2.player_id, gr2.game_id
	) AS per_game
	WHERE per_game.player_id = p.id
)
ORDER BY points DESC`)
	if err != nil {
		return nil, fmt.Errorf("build best games query: %w", err)
	}

	var rows []bestGameRowModel
	if err := r.store.db.SelectContext(ctx, &rows, query, seasonID, seasonID); err != nil {
		return nil, fmt.Errorf("best games: %w", err)
	}

	out := make([]report.BestGameRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.BestGameRow{
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			GameID:     row.GameID,
			GameName:   row.GameName,
			Wins:       row.Wins,
			Points:     row.Points,
		})
	}
	return out, nil
}

// Attendance divides through NULLIF so a season without nights reports
// zero instead of a division error, and keeps 100.0 un-cast so PostgreSQL
// sees numeric and accepts the two-argument ROUND.
func (r *ReportRepository) Attendance(ctx context.Context, seasonID int64) ([]report.AttendanceRow, error) {
	query, err := r.store.query(`SELECT p.id AS player_id, p.name AS player_name,
	COUNT(wn.game_night_id) AS nights_won,
	(SELECT COUNT(1) FROM game_nights WHERE season_id = ?) AS total_nights,
	COALESCE(ROUND(COUNT(wn.game_night_id) * 100.0 / NULLIF((SELECT COUNT(1) FROM game_nights WHERE season_id = ?), 0), 1), 0) AS attendance_rate
FROM players p
LEFT JOIN (
	SELECT DISTINCT rw.player_id, gr.game_night_id
	FROM round_winners rw
	JOIN game_rounds gr ON gr.id = rw.round_id
	JOIN game_nights gn ON gn.id = gr.game_night_id
	WHERE gn.season_id = ?
) wn ON wn.player_id = p.id
GROUP BY p.id, p.name
ORDER BY attendance_rate DESC`)
	if err != nil {
		return nil, fmt.Errorf("build attendance query: %w", err)
	}

	var rows []attendanceRowModel
	if err := r.store.db.SelectContext(ctx, &rows, query, seasonID, seasonID, seasonID); err != nil {
		return nil, fmt.Errorf("attendance: %w", err)
	}

	out := make([]report.AttendanceRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.AttendanceRow{
			PlayerID:       row.PlayerID,
			PlayerName:     row.PlayerName,
			NightsWon:      row.NightsWon,
			TotalNights:    row.TotalNights,
			AttendanceRate: row.AttendanceRate,
		})
	}
	return out, nil
}

func (r *ReportRepository) PenaltySummary(ctx context.Context, seasonID int64) ([]report.PenaltySummaryRow, error) {
	query, err := r.store.query(`SELECT p.id AS player_id, p.name AS player_name,
	COUNT(pen.id) AS penalty_count, SUM(pen.amount) AS total
FROM penalties pen
JOIN players p ON p.id = pen.player_id
JOIN game_nights gn ON gn.id = pen.game_night_id
WHERE gn.season_id = ?
GROUP BY p.id, p.name
ORDER BY total DESC`)
	if err != nil {
		return nil, fmt.Errorf("build penalty summary query: %w", err)
	}

	var rows []penaltySummaryRowModel
	if err := r.store.db.SelectContext(ctx, &rows, query, seasonID); err != nil {
		return nil, fmt.Errorf("penalty summary: %w", err)
	}

	out := make([]report.PenaltySummaryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.PenaltySummaryRow{
			PlayerID:     row.PlayerID,
			PlayerName:   row.PlayerName,
			PenaltyCount: row.PenaltyCount,
			Total:        row.Total,
		})
	}
	return out, nil
}

func (r *ReportRepository) GamePopularity(ctx context.Context, seasonID int64) ([]report.PopularityRow, error) {
	query, err := r.store.query(`SELECT g.id AS game_id, g.name AS game_name,
	COUNT(DISTINCT gr.id) AS times_played,
	COUNT(DISTINCT rw.player_id) AS winners
FROM game_rounds gr
JOIN games g ON g.id = gr.game_id
JOIN game_nights gn ON gn.id = gr.game_night_id
LEFT JOIN round_winners rw ON rw.round_id = gr.id
WHERE gn.season_id = ?
GROUP BY g.id, g.name
ORDER BY times_played DESC`)
	if err != nil {
		return nil, fmt.Errorf("build game popularity query: %w", err)
	}

	var rows []popularityRowModel
	if err := r.store.db.SelectContext(ctx, &rows, query, seasonID); err != nil {
		return nil, fmt.Errorf("game popularity: %w", err)
	}

	out := make([]report.PopularityRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.PopularityRow{
			GameID:      row.GameID,
			GameName:    row.GameName,
			TimesPlayed: row.TimesPlayed,
			Winners:     row.Winners,
		})
	}
	return out, nil
}

func (r *ReportRepository) WinDistribution(ctx context.Context, seasonID int64) ([]report.WinDistributionRow, error) {
	query, err := r.store.query(`SELECT p.id AS player_id, p.name AS player_name, COUNT(rw.id) AS wins
FROM round_winners rw
JOIN players p ON p.id = rw.player_id
JOIN game_rounds gr ON gr.id = rw.round_id
JOIN game_nights gn ON gn.id = gr.game_night_id
WHERE gn.season_id = ?
GROUP BY p.id, p.name
ORDER BY wins DESC`)
	if err != nil {
		return nil, fmt.Errorf("build win distribution query: %w", err)
	}

	var rows []winDistributionRowModel
	if err := r.store.db.SelectContext(ctx, &rows, query, seasonID); err != nil {
		return nil, fmt.Errorf("win distribution: %w", err)
	}

	out := make([]report.WinDistributionRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.WinDistributionRow{
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			Wins:       row.Wins,
		})
	}
	return out, nil
}

func (r *ReportRepository) NightScoreboard(ctx context.Context, nightID int64) ([]report.ScoreboardRow, error) {
	query, err := r.store.query(`SELECT p.id AS player_id, p.name AS player_name,
	COUNT(rw.id) AS wins, SUM(g.points_per_win) AS points
FROM round_winners rw
JOIN game_rounds gr ON gr.id = rw.round_id
JOIN games g ON g.id = gr.game_id
JOIN players p ON p.id = rw.player_id
WHERE gr.game_night_id = ?
GROUP BY p.id, p.name
ORDER BY points DESC`)
	if err != nil {
		return nil, fmt.Errorf("build night scoreboard query: %w", err)
	}

	var rows []scoreboardRowModel
	if err := r.store.db.SelectContext(ctx, &rows, query, nightID); err != nil {
		return nil, fmt.Errorf("night scoreboard: %w", err)
	}

	out := make([]report.ScoreboardRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.ScoreboardRow{
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			Wins:       row.Wins,
			Points:     row.Points,
		})
	}
	return out, nil
}

func (r *ReportRepository) Overview(ctx context.Context) (report.Overview, error) {
	query, err := r.store.query(`SELECT
	(SELECT COUNT(1) FROM players) AS players,
	(SELECT COUNT(1) FROM games) AS games,
	(SELECT COUNT(1) FROM seasons) AS seasons,
	(SELECT COUNT(1) FROM game_nights) AS nights,
	(SELECT COUNT(1) FROM game_rounds) AS rounds,
	(SELECT COUNT(1) FROM penalties) AS penalties`)
	if err != nil {
		return report.Overview{}, fmt.Errorf("build overview query: %w", err)
	}

	var row overviewModel
	if err := r.store.db.GetContext(ctx, &row, query); err != nil {
		return report.Overview{}, fmt.Errorf("overview: %w", err)
	}

	return report.Overview{
		Players:   row.Players,
		Games:     row.Games,
		Seasons:   row.Seasons,
		Nights:    row.Nights,
		Rounds:    row.Rounds,
		Penalties: row.Penalties,
	}, nil
}
