package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/caballebrios/nightboard/internal/domain/season"
	"github.com/caballebrios/nightboard/internal/usecase"
)

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeason")
	defer span.End()

	var req createSeasonRequest
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

	created, err := h.seasonService.CreateSeason(ctx, season.Season{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create season failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	if req.Activate {
		created, err = h.seasonService.ActivateSeason(ctx, created.ID)
		if err != nil {
			h.logger.WarnContext(ctx, "activate season failed", "season_id", created.ID, "error", err)
			writeError(ctx, w, err)
			return
		}
	}

	writeSuccess(ctx, w, http.StatusCreated, seasonToDTO(ctx, created))
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.seasonService.ListSeasons(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonDTO, 0, len(seasons))
	for _, s := range seasons {
		items = append(items, seasonToDTO(ctx, s))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeason")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasonService.GetSeason(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(ctx, item))
}

func (h *Handler) GetActiveSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetActiveSeason")
	defer span.End()

	item, err := h.seasonService.GetActiveSeason(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get active season failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(ctx, item))
}

func (h *Handler) UpdateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSeason")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateSeasonRequest
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

	updated, err := h.seasonService.UpdateSeason(ctx, season.Season{
		ID:        seasonID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(ctx, updated))
}

func (h *Handler) ActivateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ActivateSeason")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	activated, err := h.seasonService.ActivateSeason(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "activate season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(ctx, activated))
}

func (h *Handler) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSeason")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.seasonService.DeleteSeason(ctx, seasonID); err != nil {
		h.logger.WarnContext(ctx, "delete season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

type createSeasonRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	// Activate switches the club to this season as soon as it exists.
	Activate bool `json:"activate"`
}

type updateSeasonRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

type seasonDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	IsActive  bool   `json:"isActive"`
}

func seasonToDTO(ctx context.Context, v season.Season) seasonDTO {
	ctx, span := startSpan(ctx, "httpapi.seasonToDTO")
	defer span.End()

	return seasonDTO{
		ID:        v.ID,
		Name:      v.Name,
		StartDate: v.StartDate,
		EndDate:   v.EndDate,
		IsActive:  v.IsActive,
	}
}
