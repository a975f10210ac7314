package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/caballebrios/nightboard/internal/domain/night"
	"github.com/caballebrios/nightboard/internal/domain/report"
)

func TestReportService_LeaderboardRequiresSeason(t *testing.T) {
	t.Parallel()

	seasonRepo := newStubSeasonRepository()
	seasonRepo.seasons[1] = seasonSeed("Temporada 2", 1)
	reportRepo := &stubReportRepository{
		leaderboard: []report.LeaderboardRow{{PlayerID: 7, PlayerName: "Ana", TotalPoints: 5, RoundsWon: 1}},
	}
	service := NewReportService(reportRepo, seasonRepo, newStubNightRepository(), 2)

	rows, err := service.Leaderboard(context.Background(), 1)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(rows) != 1 || rows[0].PlayerName != "Ana" {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	if _, err := service.Leaderboard(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero id, got %v", err)
	}
	if _, err := service.Leaderboard(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing season, got %v", err)
	}
}

func TestReportService_SeasonSummaryAssemblesAllReports(t *testing.T) {
	t.Parallel()

	seasonRepo := newStubSeasonRepository()
	seasonRepo.seasons[1] = seasonSeed("Temporada 2", 1)
	reportRepo := &stubReportRepository{
		leaderboard: []report.LeaderboardRow{{PlayerID: 7, PlayerName: "Ana", TotalPoints: 5, RoundsWon: 1}},
		bestGames:   []report.BestGameRow{{PlayerID: 7, PlayerName: "Ana", GameID: 3, GameName: "Catan", Wins: 1, Points: 5}},
		attendance:  []report.AttendanceRow{{PlayerID: 7, PlayerName: "Ana", NightsWon: 1, TotalNights: 1, AttendanceRate: 100}},
		penalties:   []report.PenaltySummaryRow{{PlayerID: 7, PlayerName: "Ana", PenaltyCount: 1, Total: 10}},
		popularity:  []report.PopularityRow{{GameID: 3, GameName: "Catan", TimesPlayed: 1, Winners: 1}},
	}
	service := NewReportService(reportRepo, seasonRepo, newStubNightRepository(), 2)

	summary, err := service.SeasonSummary(context.Background(), 1)
	if err != nil {
		t.Fatalf("season summary: %v", err)
	}
	if len(summary.Leaderboard) != 1 || len(summary.BestGames) != 1 || len(summary.Attendance) != 1 {
		t.Fatalf("incomplete summary: %+v", summary)
	}
	if len(summary.Penalties) != 1 || len(summary.Popularity) != 1 {
		t.Fatalf("incomplete summary: %+v", summary)
	}
}

func TestReportService_SeasonSummaryPropagatesQueryFailure(t *testing.T) {
	t.Parallel()

	seasonRepo := newStubSeasonRepository()
	seasonRepo.seasons[1] = seasonSeed("Temporada 2", 1)
	wantErr := errors.New("attendance query exploded")
	reportRepo := &stubReportRepository{attendanceErr: wantErr}
	service := NewReportService(reportRepo, seasonRepo, newStubNightRepository(), 3)

	_, err := service.SeasonSummary(context.Background(), 1)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the query failure to surface, got %v", err)
	}
}

func TestReportService_Dashboard(t *testing.T) {
	t.Parallel()

	seasonRepo := newStubSeasonRepository()
	nightRepo := newStubNightRepository()
	reportRepo := &stubReportRepository{overview: report.Overview{Players: 3, Nights: 2}}
	service := NewReportService(reportRepo, seasonRepo, nightRepo, 2)

	dashboard, err := service.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dashboard.ActiveSeason != nil {
		t.Fatalf("expected no active season, got %+v", dashboard.ActiveSeason)
	}
	if dashboard.Overview.Players != 3 || len(dashboard.RecentNights) != 0 {
		t.Fatalf("unexpected dashboard: %+v", dashboard)
	}

	active := seasonSeed("Temporada 2", 1)
	active.IsActive = true
	seasonRepo.seasons[1] = active
	nightRepo.nights[1] = night.Night{ID: 1, SeasonID: 1, Date: "2026-02-05"}
	nightRepo.nights[2] = night.Night{ID: 2, SeasonID: 1, Date: "2026-02-12"}

	dashboard, err = service.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dashboard.ActiveSeason == nil || dashboard.ActiveSeason.ID != 1 {
		t.Fatalf("expected the active season, got %+v", dashboard.ActiveSeason)
	}
	if len(dashboard.RecentNights) != 2 || dashboard.RecentNights[0].Date != "2026-02-12" {
		t.Fatalf("unexpected recent nights: %+v", dashboard.RecentNights)
	}
}

func TestReportService_NightScoreboard(t *testing.T) {
	t.Parallel()

	nightRepo := newStubNightRepository()
	nightRepo.nights[1] = night.Night{ID: 1, SeasonID: 1, Date: "2026-02-05"}
	reportRepo := &stubReportRepository{
		scoreboard: []report.ScoreboardRow{{PlayerID: 7, PlayerName: "Ana", Wins: 2, Points: 4}},
	}
	service := NewReportService(reportRepo, newStubSeasonRepository(), nightRepo, 2)

	rows, err := service.NightScoreboard(context.Background(), 1)
	if err != nil {
		t.Fatalf("night scoreboard: %v", err)
	}
	if len(rows) != 1 || rows[0].Points != 4 {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	if _, err := service.NightScoreboard(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing night, got %v", err)
	}
}

type stubReportRepository struct {
	leaderboard   []report.LeaderboardRow
	detailed      []report.DetailedRow
	progression   []report.ProgressionPoint
	bestGames     []report.BestGameRow
	attendance    []report.AttendanceRow
	attendanceErr error
	penalties     []report.PenaltySummaryRow
	popularity    []report.PopularityRow
	wins          []report.WinDistributionRow
	scoreboard    []report.ScoreboardRow
	overview      report.Overview
}

func (s *stubReportRepository) Leaderboard(_ context.Context, _ int64) ([]report.LeaderboardRow, error) {
	return s.leaderboard, nil
}

func (s *stubReportRepository) DetailedLeaderboard(_ context.Context, _ int64) ([]report.DetailedRow, error) {
	return s.detailed, nil
}

func (s *stubReportRepository) Progression(_ context.Context, _ int64) ([]report.ProgressionPoint, error) {
	return s.progression, nil
}

func (s *stubReportRepository) BestGames(_ context.Context, _ int64) ([]report.BestGameRow, error) {
	return s.bestGames, nil
}

func (s *stubReportRepository) Attendance(_ context.Context, _ int64) ([]report.AttendanceRow, error) {
	if s.attendanceErr != nil {
		return nil, s.attendanceErr
	}
	return s.attendance, nil
}

func (s *stubReportRepository) PenaltySummary(_ context.Context, _ int64) ([]report.PenaltySummaryRow, error) {
	return s.penalties, nil
}

func (s *stubReportRepository) GamePopularity(_ context.Context, _ int64) ([]report.PopularityRow, error) {
	return s.popularity, nil
}

func (s *stubReportRepository) WinDistribution(_ context.Context, _ int64) ([]report.WinDistributionRow, error) {
	return s.wins, nil
}

func (s *stubReportRepository) NightScoreboard(_ context.Context, _ int64) ([]report.ScoreboardRow, error) {
	return s.scoreboard, nil
}

func (s *stubReportRepository) Overview(_ context.Context) (report.Overview, error) {
	return s.overview, nil
}
