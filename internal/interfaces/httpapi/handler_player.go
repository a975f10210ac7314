package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/caballebrios/nightboard/internal/domain/player"
	"github.com/caballebrios/nightboard/internal/usecase"
)

// maxPhotoBytes bounds profile picture uploads.
const maxPhotoBytes = 5 << 20

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
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

	created, err := h.playerService.CreatePlayer(ctx, req.Name, req.Photo)
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(ctx, created))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(ctx, p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, item))
}

func (h *Handler) RenamePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RenamePlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req renamePlayerRequest
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

	renamed, err := h.playerService.RenamePlayer(ctx, playerID, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "rename player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, renamed))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.playerService.DeletePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

// SetPlayerPhoto stores the raw request body as the player's picture.
func (h *Handler) SetPlayerPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetPlayerPhoto")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	photo, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPhotoBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(ctx, w, fmt.Errorf("%w: photo exceeds %d bytes", usecase.ErrInvalidInput, tooLarge.Limit))
			return
		}
		writeError(ctx, w, fmt.Errorf("%w: read photo payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.playerService.SetPlayerPhoto(ctx, playerID, photo); err != nil {
		h.logger.WarnContext(ctx, "set player photo failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"updated": true})
}

// GetPlayerPhoto serves the stored picture as raw image bytes, not the JSON
// envelope.
func (h *Handler) GetPlayerPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerPhoto")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	photo, err := h.playerService.GetPlayerPhoto(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player photo failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(photo))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(photo)
}

type createPlayerRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	// Photo arrives base64-encoded inside the JSON payload.
	Photo []byte `json:"photo,omitempty"`
}

type renamePlayerRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type playerDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func playerToDTO(ctx context.Context, v player.Player) playerDTO {
	ctx, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	return playerDTO{
		ID:   v.ID,
		Name: v.Name,
	}
}
