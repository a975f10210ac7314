package report

import "context"

// Repository exposes the read-only report queries. Implementations must
// return identical numeric results on every supported backend.
type Repository interface {
	Leaderboard(ctx context.Context, seasonID int64) ([]LeaderboardRow, error)
	DetailedLeaderboard(ctx context.Context, seasonID int64) ([]DetailedRow, error)
	Progression(ctx context.Context, seasonID int64) ([]ProgressionPoint, error)
	BestGames(ctx context.Context, seasonID int64) ([]BestGameRow, error)
	Attendance(ctx context.Context, seasonID int64) ([]AttendanceRow, error)
	PenaltySummary(ctx context.Context, seasonID int64) ([]PenaltySummaryRow, error)
	GamePopularity(ctx context.Context, seasonID int64) ([]PopularityRow, error)
	WinDistribution(ctx context.Context, seasonID int64) ([]WinDistributionRow, error)
	NightScoreboard(ctx context.Context, nightID int64) ([]ScoreboardRow, error)
	Overview(ctx context.Context) (Overview, error)
}
