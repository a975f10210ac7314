package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/caballebrios/nightboard/internal/domain/game"
	"github.com/caballebrios/nightboard/internal/usecase"
)

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGame")
	defer span.End()

	var req createGameRequest
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

	created, err := h.gameService.CreateGame(ctx, game.Game{
		Name:         req.Name,
		PointsPerWin: req.PointsPerWin,
		Description:  req.Description,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create game failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gameToDTO(ctx, created))
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	games, err := h.gameService.ListGames(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list games failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameDTO, 0, len(games))
	for _, g := range games {
		items = append(items, gameToDTO(ctx, g))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.gameService.GetGame(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(ctx, item))
}

func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGame")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateGameRequest
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

	updated, err := h.gameService.UpdateGame(ctx, game.Game{
		ID:           gameID,
		Name:         req.Name,
		PointsPerWin: req.PointsPerWin,
		Description:  req.Description,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(ctx, updated))
}

// DeleteGame reports how many recorded rounds went away with the game so the
// admin sees the blast radius.
func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGame")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	roundsRemoved, err := h.gameService.DeleteGame(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "delete game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deleteGameResponse{
		Deleted:       true,
		RoundsRemoved: roundsRemoved,
	})
}

type createGameRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	PointsPerWin int    `json:"pointsPerWin" validate:"required,min=1"`
	Description  string `json:"description" validate:"max=500"`
}

type updateGameRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	PointsPerWin int    `json:"pointsPerWin" validate:"required,min=1"`
	Description  string `json:"description" validate:"max=500"`
}

type deleteGameResponse struct {
	Deleted       bool  `json:"deleted"`
	RoundsRemoved int64 `json:"roundsRemoved"`
}

type gameDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PointsPerWin int    `json:"pointsPerWin"`
	Description  string `json:"description,omitempty"`
}

func gameToDTO(ctx context.Context, v game.Game) gameDTO {
	ctx, span := startSpan(ctx, "httpapi.gameToDTO")
	defer span.End()

	return gameDTO{
		ID:           v.ID,
		Name:         v.Name,
		PointsPerWin: v.PointsPerWin,
		Description:  v.Description,
	}
}
