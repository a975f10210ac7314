package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/caballebrios/nightboard/internal/domain/penalty"
	"github.com/caballebrios/nightboard/internal/usecase"
)

func (h *Handler) AddPenalty(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPenalty")
	defer span.End()

	nightID, err := pathID(r, "nightID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addPenaltyRequest
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

	created, err := h.penaltyService.AddPenalty(ctx, usecase.PenaltyInput{
		NightID:  nightID,
		PlayerID: req.PlayerID,
		Type:     penalty.Type(req.Type),
		Amount:   req.Amount,
		Reason:   req.Reason,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add penalty failed", "night_id", nightID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, penaltyToDTO(ctx, created))
}

func (h *Handler) ListNightPenalties(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNightPenalties")
	defer span.End()

	nightID, err := pathID(r, "nightID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	penalties, err := h.penaltyService.ListNightPenalties(ctx, nightID)
	if err != nil {
		h.logger.WarnContext(ctx, "list night penalties failed", "night_id", nightID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]penaltyDetailDTO, 0, len(penalties))
	for _, p := range penalties {
		items = append(items, penaltyDetailToDTO(ctx, p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListAllPenalties(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllPenalties")
	defer span.End()

	penalties, err := h.penaltyService.ListAllPenalties(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list penalties failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]penaltyDetailDTO, 0, len(penalties))
	for _, p := range penalties {
		items = append(items, penaltyDetailToDTO(ctx, p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) UpdatePenalty(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePenalty")
	defer span.End()

	penaltyID, err := pathID(r, "penaltyID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updatePenaltyRequest
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

	updated, err := h.penaltyService.UpdatePenalty(ctx, penaltyID, req.Amount, req.Reason)
	if err != nil {
		h.logger.WarnContext(ctx, "update penalty failed", "penalty_id", penaltyID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, penaltyToDTO(ctx, updated))
}

func (h *Handler) DeletePenalty(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePenalty")
	defer span.End()

	penaltyID, err := pathID(r, "penaltyID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.penaltyService.DeletePenalty(ctx, penaltyID); err != nil {
		h.logger.WarnContext(ctx, "delete penalty failed", "penalty_id", penaltyID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

type addPenaltyRequest struct {
	PlayerID int64  `json:"playerId" validate:"required,min=1"`
	Type     string `json:"type" validate:"required,oneof=Ausencia Personalizada"`
	// Amount nil takes the club-wide default from settings.
	Amount *float64 `json:"amount" validate:"omitempty,min=0"`
	Reason string   `json:"reason" validate:"max=500"`
}

type updatePenaltyRequest struct {
	Amount float64 `json:"amount" validate:"min=0"`
	Reason string  `json:"reason" validate:"max=500"`
}

type penaltyDTO struct {
	ID       int64   `json:"id"`
	NightID  int64   `json:"nightId"`
	PlayerID int64   `json:"playerId"`
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Reason   string  `json:"reason,omitempty"`
}

func penaltyToDTO(ctx context.Context, v penalty.Penalty) penaltyDTO {
	ctx, span := startSpan(ctx, "httpapi.penaltyToDTO")
	defer span.End()

	return penaltyDTO{
		ID:       v.ID,
		NightID:  v.NightID,
		PlayerID: v.PlayerID,
		Type:     string(v.Type),
		Amount:   v.Amount,
		Reason:   v.Reason,
	}
}

type penaltyDetailDTO struct {
	ID         int64   `json:"id"`
	NightID    int64   `json:"nightId"`
	PlayerID   int64   `json:"playerId"`
	PlayerName string  `json:"playerName"`
	NightDate  string  `json:"nightDate"`
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Reason     string  `json:"reason,omitempty"`
}

func penaltyDetailToDTO(ctx context.Context, v penalty.Detail) penaltyDetailDTO {
	ctx, span := startSpan(ctx, "httpapi.penaltyDetailToDTO")
	defer span.End()

	return penaltyDetailDTO{
		ID:         v.ID,
		NightID:    v.NightID,
		PlayerID:   v.PlayerID,
		PlayerName: v.PlayerName,
		NightDate:  v.NightDate,
		Type:       string(v.Type),
		Amount:     v.Amount,
		Reason:     v.Reason,
	}
}
