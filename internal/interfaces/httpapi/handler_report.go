package httpapi

import (
	"context"
	"net/http"

	"github.com/caballebrios/nightboard/internal/domain/report"
)

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.reportService.Leaderboard(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "leaderboard report failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leaderboardRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, leaderboardRowToDTO(ctx, row))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetDetailedLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDetailedLeaderboard")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.reportService.DetailedLeaderboard(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "detailed leaderboard report failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]detailedRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, detailedRowToDTO(ctx, row))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProgression")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	points, err := h.reportService.Progression(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "progression report failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]progressionPointDTO, 0, len(points))
	for _, point := range points {
		items = append(items, progressionPointToDTO(ctx, point))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetBestGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBestGames")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.reportService.BestGames(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "best games report failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]bestGameRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, bestGameRowToDTO(ctx, row))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAttendance")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.reportService.Attendance(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "attendance report failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]attendanceRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, attendanceRowToDTO(ctx, row))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPenaltySummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPenaltySummary")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.reportService.PenaltySummary(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "penalty summary report failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]penaltySummaryRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, penaltySummaryRowToDTO(ctx, row))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetGamePopularity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGamePopularity")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.reportService.GamePopularity(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "game popularity report failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]popularityRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, popularityRowToDTO(ctx, row))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetWinDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWinDistribution")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.reportService.WinDistribution(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "win distribution report failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]winDistributionRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, winDistributionRowToDTO(ctx, row))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetNightScoreboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNightScoreboard")
	defer span.End()

	nightID, err := pathID(r, "nightID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.reportService.NightScoreboard(ctx, nightID)
	if err != nil {
		h.logger.WarnContext(ctx, "night scoreboard failed", "night_id", nightID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scoreboardRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, scoreboardRowToDTO(ctx, row))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSeasonSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonSummary")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.reportService.SeasonSummary(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "season summary failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonSummaryToDTO(ctx, summary))
}

type leaderboardRowDTO struct {
	PlayerID    int64  `json:"playerId"`
	PlayerName  string `json:"playerName"`
	TotalPoints int    `json:"totalPoints"`
	RoundsWon   int    `json:"roundsWon"`
}

func leaderboardRowToDTO(ctx context.Context, v report.LeaderboardRow) leaderboardRowDTO {
	ctx, span := startSpan(ctx, "httpapi.leaderboardRowToDTO")
	defer span.End()

	return leaderboardRowDTO{
		PlayerID:    v.PlayerID,
		PlayerName:  v.PlayerName,
		TotalPoints: v.TotalPoints,
		RoundsWon:   v.RoundsWon,
	}
}

type detailedRowDTO struct {
	PlayerID     int64   `json:"playerId"`
	PlayerName   string  `json:"playerName"`
	TotalPoints  int     `json:"totalPoints"`
	RoundsWon    int     `json:"roundsWon"`
	GamesWon     int     `json:"gamesWon"`
	NightsWon    int     `json:"nightsWon"`
	PenaltyCount int     `json:"penaltyCount"`
	PenaltyTotal float64 `json:"penaltyTotal"`
}

func detailedRowToDTO(ctx context.Context, v report.DetailedRow) detailedRowDTO {
	ctx, span := startSpan(ctx, "httpapi.detailedRowToDTO")
	defer span.End()

	return detailedRowDTO{
		PlayerID:     v.PlayerID,
		PlayerName:   v.PlayerName,
		TotalPoints:  v.TotalPoints,
		RoundsWon:    v.RoundsWon,
		GamesWon:     v.GamesWon,
		NightsWon:    v.NightsWon,
		PenaltyCount: v.PenaltyCount,
		PenaltyTotal: v.PenaltyTotal,
	}
}

type progressionPointDTO struct {
	PlayerID     int64  `json:"playerId"`
	PlayerName   string `json:"playerName"`
	NightDate    string `json:"nightDate"`
	RoundID      int64  `json:"roundId"`
	Points       int    `json:"points"`
	RunningTotal int    `json:"runningTotal"`
}

func progressionPointToDTO(ctx context.Context, v report.ProgressionPoint) progressionPointDTO {
	ctx, span := startSpan(ctx, "httpapi.progressionPointToDTO")
	defer span.End()

	return progressionPointDTO{
		PlayerID:     v.PlayerID,
		PlayerName:   v.PlayerName,
		NightDate:    v.NightDate,
		RoundID:      v.RoundID,
		Points:       v.Points,
		RunningTotal: v.RunningTotal,
	}
}

type bestGameRowDTO struct {
	PlayerID   int64  `json:"playerId"`
	PlayerName string `json:"playerName"`
	GameID     int64  `json:"gameId"`
	GameName   string `json:"gameName"`
	Wins       int    `json:"wins"`
	Points     int    `json:"points"`
}

func bestGameRowToDTO(ctx context.Context, v report.BestGameRow) bestGameRowDTO {
	ctx, span := startSpan(ctx, "httpapi.bestGameRowToDTO")
	defer span.End()

	return bestGameRowDTO{
		PlayerID:   v.PlayerID,
		PlayerName: v.PlayerName,
		GameID:     v.GameID,
		GameName:   v.GameName,
		Wins:       v.Wins,
		Points:     v.Points,
	}
}

type attendanceRowDTO struct {
	PlayerID       int64   `json:"playerId"`
	PlayerName     string  `json:"playerName"`
	NightsWon      int     `json:"nightsWon"`
	TotalNights    int     `json:"totalNights"`
	AttendanceRate float64 `json:"attendanceRate"`
}

func attendanceRowToDTO(ctx context.Context, v report.AttendanceRow) attendanceRowDTO {
	ctx, span := startSpan(ctx, "httpapi.attendanceRowToDTO")
	defer span.End()

	return attendanceRowDTO{
		PlayerID:       v.PlayerID,
		PlayerName:     v.PlayerName,
		NightsWon:      v.NightsWon,
		TotalNights:    v.TotalNights,
		AttendanceRate: v.AttendanceRate,
	}
}

type penaltySummaryRowDTO struct {
	PlayerID     int64   `json:"playerId"`
	PlayerName   string  `json:"playerName"`
	PenaltyCount int     `json:"penaltyCount"`
	Total        float64 `json:"total"`
}

func penaltySummaryRowToDTO(ctx context.Context, v report.PenaltySummaryRow) penaltySummaryRowDTO {
	ctx, span := startSpan(ctx, "httpapi.penaltySummaryRowToDTO")
	defer span.End()

	return penaltySummaryRowDTO{
		PlayerID:     v.PlayerID,
		PlayerName:   v.PlayerName,
		PenaltyCount: v.PenaltyCount,
		Total:        v.Total,
	}
}

type popularityRowDTO struct {
	GameID      int64  `json:"gameId"`
	GameName    string `json:"gameName"`
	TimesPlayed int    `json:"timesPlayed"`
	Winners     int    `json:"winners"`
}

func popularityRowToDTO(ctx context.Context, v report.PopularityRow) popularityRowDTO {
	ctx, span := startSpan(ctx, "httpapi.popularityRowToDTO")
	defer span.End()

	return popularityRowDTO{
		GameID:      v.GameID,
		GameName:    v.GameName,
		TimesPlayed: v.TimesPlayed,
		Winners:     v.Winners,
	}
}

type winDistributionRowDTO struct {
	PlayerID   int64  `json:"playerId"`
	PlayerName string `json:"playerName"`
	Wins       int    `json:"wins"`
}

func winDistributionRowToDTO(ctx context.Context, v report.WinDistributionRow) winDistributionRowDTO {
	ctx, span := startSpan(ctx, "httpapi.winDistributionRowToDTO")
	defer span.End()

	return winDistributionRowDTO{
		PlayerID:   v.PlayerID,
		PlayerName: v.PlayerName,
		Wins:       v.Wins,
	}
}

type scoreboardRowDTO struct {
	PlayerID   int64  `json:"playerId"`
	PlayerName string `json:"playerName"`
	Wins       int    `json:"wins"`
	Points     int    `json:"points"`
}

func scoreboardRowToDTO(ctx context.Context, v report.ScoreboardRow) scoreboardRowDTO {
	ctx, span := startSpan(ctx, "httpapi.scoreboardRowToDTO")
	defer span.End()

	return scoreboardRowDTO{
		PlayerID:   v.PlayerID,
		PlayerName: v.PlayerName,
		Wins:       v.Wins,
		Points:     v.Points,
	}
}

type seasonSummaryDTO struct {
	Leaderboard []leaderboardRowDTO    `json:"leaderboard"`
	BestGames   []bestGameRowDTO       `json:"bestGames"`
	Attendance  []attendanceRowDTO     `json:"attendance"`
	Penalties   []penaltySummaryRowDTO `json:"penalties"`
	Popularity  []popularityRowDTO     `json:"popularity"`
}

func seasonSummaryToDTO(ctx context.Context, v report.SeasonSummary) seasonSummaryDTO {
	ctx, span := startSpan(ctx, "httpapi.seasonSummaryToDTO")
	defer span.End()

	out := seasonSummaryDTO{
		Leaderboard: make([]leaderboardRowDTO, 0, len(v.Leaderboard)),
		BestGames:   make([]bestGameRowDTO, 0, len(v.BestGames)),
		Attendance:  make([]attendanceRowDTO, 0, len(v.Attendance)),
		Penalties:   make([]penaltySummaryRowDTO, 0, len(v.Penalties)),
		Popularity:  make([]popularityRowDTO, 0, len(v.Popularity)),
	}
	for _, row := range v.Leaderboard {
		out.Leaderboard = append(out.Leaderboard, leaderboardRowToDTO(ctx, row))
	}
	for _, row := range v.BestGames {
		out.BestGames = append(out.BestGames, bestGameRowToDTO(ctx, row))
	}
	for _, row := range v.Attendance {
		out.Attendance = append(out.Attendance, attendanceRowToDTO(ctx, row))
	}
	for _, row := range v.Penalties {
		out.Penalties = append(out.Penalties, penaltySummaryRowToDTO(ctx, row))
	}
	for _, row := range v.Popularity {
		out.Popularity = append(out.Popularity, popularityRowToDTO(ctx, row))
	}

	return out
}
