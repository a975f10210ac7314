package report

// Read models for the fixed report menu. Rows arrive pre-ordered from the
// storage layer; nothing here is written back.

// LeaderboardRow is one player's season standing. Players with no wins in
// the season appear with zero points and zero rounds.
type LeaderboardRow struct {
	PlayerID    int64
	PlayerName  string
	TotalPoints int
	RoundsWon   int
}

// DetailedRow extends the leaderboard with distinct-game, distinct-night,
// and penalty aggregates.
type DetailedRow struct {
	PlayerID     int64
	PlayerName   string
	TotalPoints  int
	RoundsWon    int
	GamesWon     int
	NightsWon    int
	PenaltyCount int
	PenaltyTotal float64
}

// ProgressionPoint is one win with the player's running season total at
// that moment, ordered by night date then round insertion.
type ProgressionPoint struct {
	PlayerID     int64
	PlayerName   string
	NightDate    string
	RoundID      int64
	Points       int
	RunningTotal int
}

// BestGameRow names a game a player has won most often. Ties produce one
// row per tied game.
type BestGameRow struct {
	PlayerID   int64
	PlayerName string
	GameID     int64
	GameName   string
	Wins       int
	Points     int
}

// AttendanceRow reports on how many of the season's nights a player won at
// least one round, as a percentage rounded to one decimal.
type AttendanceRow struct {
	PlayerID       int64
	PlayerName     string
	NightsWon      int
	TotalNights    int
	AttendanceRate float64
}

// PenaltySummaryRow totals a player's penalties within the season.
type PenaltySummaryRow struct {
	PlayerID     int64
	PlayerName   string
	PenaltyCount int
	Total        float64
}

// PopularityRow counts how often a game hit the table during the season.
type PopularityRow struct {
	GameID      int64
	GameName    string
	TimesPlayed int
	Winners     int
}

// WinDistributionRow is a player's raw win count within the season.
type WinDistributionRow struct {
	PlayerID   int64
	PlayerName string
	Wins       int
}

// ScoreboardRow is one player's wins and points within a single night.
type ScoreboardRow struct {
	PlayerID   int64
	PlayerName string
	Wins       int
	Points     int
}

// Overview carries the dashboard entity counts.
type Overview struct {
	Players   int
	Games     int
	Seasons   int
	Nights    int
	Rounds    int
	Penalties int
}

// SeasonSummary bundles the season's headline reports into one response.
type SeasonSummary struct {
	Leaderboard []LeaderboardRow
	BestGames   []BestGameRow
	Attendance  []AttendanceRow
	Penalties   []PenaltySummaryRow
	Popularity  []PopularityRow
}
