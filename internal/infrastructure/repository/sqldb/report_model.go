package sqldb

type leaderboardRowModel struct {
	PlayerID    int64  `db:"player_id"`
	PlayerName  string `db:"player_name"`
	TotalPoints int    `db:"total_points"`
	RoundsWon   int    `db:"rounds_won"`
}

type detailedRowModel struct {
	PlayerID     int64   `db:"player_id"`
	PlayerName   string  `db:"player_name"`
	TotalPoints  int     `db:"total_points"`
	RoundsWon    int     `db:"rounds_won"`
	GamesWon     int     `db:"games_won"`
	NightsWon    int     `db:"nights_won"`
	PenaltyCount int     `db:"penalty_count"`
	PenaltyTotal float64 `db:"penalty_total"`
}

type progressionPointModel struct {
	PlayerID     int64      `db:"player_id"`
	PlayerName   string     `db:"player_name"`
	NightDate    dateString `db:"night_date"`
	RoundID      int64      `db:"round_id"`
	Points       int        `db:"points"`
	RunningTotal int        `db:"running_total"`
}

type bestGameRowModel struct {
	PlayerID   int64  `db:"player_id"`
	PlayerName string `db:"player_name"`
	GameID     int64  `db:"game_id"`
	GameName   string `db:"game_name"`
	Wins       int    `db:"wins"`
	Points     int    `db:"points"`
}

type attendanceRowModel struct {
	PlayerID       int64   `db:"player_id"`
	PlayerName     string  `db:"player_name"`
	NightsWon      int     `db:"nights_won"`
	TotalNights    int     `db:"total_nights"`
	AttendanceRate float64 `db:"attendance_rate"`
}

type penaltySummaryRowModel struct {
	PlayerID     int64   `db:"player_id"`
	PlayerName   string  `db:"player_name"`
	PenaltyCount int     `db:"penalty_count"`
	Total        float64 `db:"total"`
}

type popularityRowModel struct {
	GameID      int64  `db:"game_id"`
	GameName    string `db:"game_name"`
	TimesPlayed int    `db:"times_played"`
	Winners     int    `db:"winners"`
}

type winDistributionRowModel struct {
	PlayerID   int64  `db:"player_id"`
	PlayerName string `db:"player_name"`
	Wins       int    `db:"wins"`
}

type scoreboardRowModel struct {
	PlayerID   int64  `db:"player_id"`
	PlayerName string `db:"player_name"`
	Wins       int    `db:"wins"`
	Points     int    `db:"points"`
}

type overviewModel struct {
	Players   int `db:"players"`
	Games     int `db:"games"`
	Seasons   int `db:"seasons"`
	Nights    int `db:"nights"`
	Rounds    int `db:"rounds"`
	Penalties int `db:"penalties"`
}
