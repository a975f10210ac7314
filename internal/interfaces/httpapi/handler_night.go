package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/caballebrios/nightboard/internal/domain/night"
	"github.com/caballebrios/nightboard/internal/usecase"
)

func (h *Handler) CreateNight(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateNight")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createNightRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.nightService.CreateNight(ctx, night.Night{
		SeasonID: seasonID,
		Date:     req.Date,
		Notes:    req.Notes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create night failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, nightToDTO(ctx, created))
}

// ListNightsBySeason returns the season's nights newest first. A limit query
// parameter caps the listing to the most recent nights.
func (h *Handler) ListNightsBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNightsBySeason")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var summaries []night.Summary
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		limit, convErr := strconv.Atoi(raw)
		if convErr != nil || limit <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be positive integer", usecase.ErrInvalidInput))
			return
		}
		summaries, err = h.nightService.ListRecentNights(ctx, seasonID, limit)
	} else {
		summaries, err = h.nightService.ListNightsBySeason(ctx, seasonID)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "list nights failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]nightSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, nightSummaryToDTO(ctx, s))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetNight(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNight")
	defer span.End()

	nightID, err := pathID(r, "nightID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.nightService.GetNight(ctx, nightID)
	if err != nil {
		h.logger.WarnContext(ctx, "get night failed", "night_id", nightID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nightToDTO(ctx, item))
}

func (h *Handler) DeleteNight(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteNight")
	defer span.End()

	nightID, err := pathID(r, "nightID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.nightService.DeleteNight(ctx, nightID); err != nil {
		h.logger.WarnContext(ctx, "delete night failed", "night_id", nightID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) AddRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddRound")
	defer span.End()

	nightID, err := pathID(r, "nightID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addRoundRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.nightService.AddRound(ctx, night.Round{
		NightID:     nightID,
		GameID:      req.GameID,
		RoundNumber: req.RoundNumber,
		Notes:       req.Notes,
		WinnerIDs:   req.WinnerIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add round failed", "night_id", nightID, "game_id", req.GameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, roundToDTO(ctx, created))
}

func (h *Handler) ListRounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRounds")
	defer span.End()

	nightID, err := pathID(r, "nightID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rounds, err := h.nightService.ListRounds(ctx, nightID)
	if err != nil {
		h.logger.WarnContext(ctx, "list rounds failed", "night_id", nightID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]roundDetailDTO, 0, len(rounds))
	for _, rd := range rounds {
		items = append(items, roundDetailToDTO(ctx, rd))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListSeasonRounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonRounds")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rounds, err := h.nightService.ListSeasonRounds(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list season rounds failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]roundDetailDTO, 0, len(rounds))
	for _, rd := range rounds {
		items = append(items, roundDetailToDTO(ctx, rd))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) DeleteRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteRound")
	defer span.End()

	roundID, err := pathID(r, "roundID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.nightService.DeleteRound(ctx, roundID); err != nil {
		h.logger.WarnContext(ctx, "delete round failed", "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

type createNightRequest struct {
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Notes string `json:"notes" validate:"max=500"`
}

type addRoundRequest struct {
	GameID int64 `json:"gameId" validate:"required,min=1"`
	// RoundNumber zero takes the next free position within the night.
	RoundNumber int     `json:"roundNumber" validate:"omitempty,min=1"`
	Notes       string  `json:"notes" validate:"max=500"`
	WinnerIDs   []int64 `json:"winnerIds" validate:"required,min=1,dive,min=1"`
}

type nightDTO struct {
	ID       int64  `json:"id"`
	SeasonID int64  `json:"seasonId"`
	Date     string `json:"date"`
	Notes    string `json:"notes,omitempty"`
}

func nightToDTO(ctx context.Context, v night.Night) nightDTO {
	ctx, span := startSpan(ctx, "httpapi.nightToDTO")
	defer span.End()

	return nightDTO{
		ID:       v.ID,
		SeasonID: v.SeasonID,
		Date:     v.Date,
		Notes:    v.Notes,
	}
}

type nightSummaryDTO struct {
	ID         int64  `json:"id"`
	SeasonID   int64  `json:"seasonId"`
	Date       string `json:"date"`
	Notes      string `json:"notes,omitempty"`
	RoundCount int    `json:"roundCount"`
	GameCount  int    `json:"gameCount"`
}

func nightSummaryToDTO(ctx context.Context, v night.Summary) nightSummaryDTO {
	ctx, span := startSpan(ctx, "httpapi.nightSummaryToDTO")
	defer span.End()

	return nightSummaryDTO{
		ID:         v.ID,
		SeasonID:   v.SeasonID,
		Date:       v.Date,
		Notes:      v.Notes,
		RoundCount: v.RoundCount,
		GameCount:  v.GameCount,
	}
}

type roundDTO struct {
	ID          int64   `json:"id"`
	NightID     int64   `json:"nightId"`
	GameID      int64   `json:"gameId"`
	RoundNumber int     `json:"roundNumber"`
	Notes       string  `json:"notes,omitempty"`
	WinnerIDs   []int64 `json:"winnerIds"`
}

func roundToDTO(ctx context.Context, v night.Round) roundDTO {
	ctx, span := startSpan(ctx, "httpapi.roundToDTO")
	defer span.End()

	return roundDTO{
		ID:          v.ID,
		NightID:     v.NightID,
		GameID:      v.GameID,
		RoundNumber: v.RoundNumber,
		Notes:       v.Notes,
		WinnerIDs:   v.WinnerIDs,
	}
}

type roundDetailDTO struct {
	ID          int64  `json:"id"`
	NightID     int64  `json:"nightId"`
	NightDate   string `json:"nightDate"`
	GameID      int64  `json:"gameId"`
	GameName    string `json:"gameName"`
	RoundNumber int    `json:"roundNumber"`
	Notes       string `json:"notes,omitempty"`
	Winners     string `json:"winners"`
}

func roundDetailToDTO(ctx context.Context, v night.RoundDetail) roundDetailDTO {
	ctx, span := startSpan(ctx, "httpapi.roundDetailToDTO")
	defer span.End()

	return roundDetailDTO{
		ID:          v.ID,
		NightID:     v.NightID,
		NightDate:   v.NightDate,
		GameID:      v.GameID,
		GameName:    v.GameName,
		RoundNumber: v.RoundNumber,
		Notes:       v.Notes,
		Winners:     v.Winners,
	}
}
