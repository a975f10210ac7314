package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/caballebrios/nightboard/internal/domain/night"
	"github.com/caballebrios/nightboard/internal/domain/report"
	"github.com/caballebrios/nightboard/internal/domain/season"
	"github.com/caballebrios/nightboard/internal/platform/resilience"
)

const dashboardRecentNights = 5

type ReportService struct {
	reportRepo report.Repository
	seasonRepo season.Repository
	nightRepo  night.Repository

	// summaryWorkers bounds the season-summary fan-out pool.
	summaryWorkers int
	// flight coalesces concurrent summary requests for the same season.
	flight resilience.SingleFlight
}

func NewReportService(
	reportRepo report.Repository,
	seasonRepo season.Repository,
	nightRepo night.Repository,
	summaryWorkers int,
) *ReportService {
	if summaryWorkers < 1 {
		summaryWorkers = 1
	}
	return &ReportService{
		reportRepo:     reportRepo,
		seasonRepo:     seasonRepo,
		nightRepo:      nightRepo,
		summaryWorkers: summaryWorkers,
	}
}

func (s *ReportService) requireSeason(ctx context.Context, seasonID int64) error {
	if seasonID < 1 {
		return fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}

	return nil
}

func (s *ReportService) Leaderboard(ctx context.Context, seasonID int64) ([]report.LeaderboardRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Leaderboard")
	defer span.End()

	if err := s.requireSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.Leaderboard(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}

	return rows, nil
}

func (s *ReportService) DetailedLeaderboard(ctx context.Context, seasonID int64) ([]report.DetailedRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.DetailedLeaderboard")
	defer span.End()

	if err := s.requireSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.DetailedLeaderboard(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("detailed leaderboard: %w", err)
	}

	return rows, nil
}

func (s *ReportService) Progression(ctx context.Context, seasonID int64) ([]report.ProgressionPoint, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Progression")
	defer span.End()

	if err := s.requireSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	points, err := s.reportRepo.Progression(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("progression: %w", err)
	}

	return points, nil
}

func (s *ReportService) BestGames(ctx context.Context, seasonID int64) ([]report.BestGameRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.BestGames")
	defer span.End()

	if err := s.requireSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.BestGames(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("best games: %w", err)
	}

	return rows, nil
}

func (s *ReportService) Attendance(ctx context.Context, seasonID int64) ([]report.AttendanceRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Attendance")
	defer span.End()

	if err := s.requireSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.Attendance(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("attendance: %w", err)
	}

	return rows, nil
}

func (s *ReportService) PenaltySummary(ctx context.Context, seasonID int64) ([]report.PenaltySummaryRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.PenaltySummary")
	defer span.End()

	if err := s.requireSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.PenaltySummary(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("penalty summary: %w", err)
	}

	return rows, nil
}

func (s *ReportService) GamePopularity(ctx context.Context, seasonID int64) ([]report.PopularityRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.GamePopularity")
	defer span.End()

	if err := s.requireSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.GamePopularity(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("game popularity: %w", err)
	}

	return rows, nil
}

func (s *ReportService) WinDistribution(ctx context.Context, seasonID int64) ([]report.WinDistributionRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.WinDistribution")
	defer span.End()

	if err := s.requireSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.WinDistribution(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("win distribution: %w", err)
	}

	return rows, nil
}

func (s *ReportService) NightScoreboard(ctx context.Context, nightID int64) ([]report.ScoreboardRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.NightScoreboard")
	defer span.End()

	if nightID < 1 {
		return nil, fmt.Errorf("%w: night id is required", ErrInvalidInput)
	}
	_, exists, err := s.nightRepo.GetByID(ctx, nightID)
	if err != nil {
		return nil, fmt.Errorf("get night: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: night=%d", ErrNotFound, nightID)
	}

	rows, err := s.reportRepo.NightScoreboard(ctx, nightID)
	if err != nil {
		return nil, fmt.Errorf("night scoreboard: %w", err)
	}

	return rows, nil
}

// SeasonSummary fetches the season's headline reports concurrently and
// assembles them into one response. Concurrent requests for the same
// season share a single computation.
func (s *ReportService) SeasonSummary(ctx context.Context, seasonID int64) (report.SeasonSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.SeasonSummary")
	defer span.End()

	if err := s.requireSeason(ctx, seasonID); err != nil {
		return report.SeasonSummary{}, err
	}

	v, err, _ := s.flight.Do(fmt.Sprintf("season-summary:%d", seasonID), func() (any, error) {
		return s.buildSeasonSummary(ctx, seasonID)
	})
	if err != nil {
		return report.SeasonSummary{}, err
	}

	summary, _ := v.(report.SeasonSummary)
	return summary, nil
}

func (s *ReportService) buildSeasonSummary(ctx context.Context, seasonID int64) (report.SeasonSummary, error) {
	var summary report.SeasonSummary
	tasks := []struct {
		name string
		run  func(context.Context) error
	}{
		{name: "leaderboard", run: func(ctx context.Context) error {
			rows, err := s.reportRepo.Leaderboard(ctx, seasonID)
			summary.Leaderboard = rows
			return err
		}},
		{name: "best games", run: func(ctx context.Context) error {
			rows, err := s.reportRepo.BestGames(ctx, seasonID)
			summary.BestGames = rows
			return err
		}},
		{name: "attendance", run: func(ctx context.Context) error {
			rows, err := s.reportRepo.Attendance(ctx, seasonID)
			summary.Attendance = rows
			return err
		}},
		{name: "penalty summary", run: func(ctx context.Context) error {
			rows, err := s.reportRepo.PenaltySummary(ctx, seasonID)
			summary.Penalties = rows
			return err
		}},
		{name: "game popularity", run: func(ctx context.Context) error {
			rows, err := s.reportRepo.GamePopularity(ctx, seasonID)
			summary.Popularity = rows
			return err
		}},
	}

	workerCount := s.summaryWorkers
	if workerCount > len(tasks) {
		workerCount = len(tasks)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return report.SeasonSummary{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	errs := make(chan error, len(tasks))
	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if err := task.run(ctx); err != nil {
				errs <- fmt.Errorf("%s: %w", task.name, err)
			}
		}); err != nil {
			workers.Done()
			return report.SeasonSummary{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(errs)
	if err := <-errs; err != nil {
		return report.SeasonSummary{}, err
	}

	return summary, nil
}

func (s *ReportService) Overview(ctx context.Context) (report.Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Overview")
	defer span.End()

	overview, err := s.reportRepo.Overview(ctx)
	if err != nil {
		return report.Overview{}, fmt.Errorf("overview: %w", err)
	}

	return overview, nil
}

// Dashboard is the landing view: global counts plus the active season's
// latest nights. ActiveSeason is nil while no season is active.
type Dashboard struct {
	Overview     report.Overview
	ActiveSeason *season.Season
	RecentNights []night.Summary
}

func (s *ReportService) Dashboard(ctx context.Context) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Dashboard")
	defer span.End()

	overview, err := s.reportRepo.Overview(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("overview: %w", err)
	}

	dashboard := Dashboard{Overview: overview, RecentNights: []night.Summary{}}

	active, exists, err := s.seasonRepo.GetActive(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("get active season: %w", err)
	}
	if !exists {
		return dashboard, nil
	}

	dashboard.ActiveSeason = &active
	nights, err := s.nightRepo.ListRecentBySeason(ctx, active.ID, dashboardRecentNights)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list recent nights: %w", err)
	}
	dashboard.RecentNights = nights

	return dashboard, nil
}
