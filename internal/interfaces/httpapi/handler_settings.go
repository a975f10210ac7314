package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/caballebrios/nightboard/internal/domain/settings"
	"github.com/caballebrios/nightboard/internal/usecase"
)

func (h *Handler) GetSetting(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSetting")
	defer span.End()

	key := strings.TrimSpace(r.PathValue("key"))
	item, err := h.settingsService.GetSetting(ctx, key)
	if err != nil {
		h.logger.WarnContext(ctx, "get setting failed", "key", key, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, settingToDTO(ctx, item))
}

func (h *Handler) PutSetting(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PutSetting")
	defer span.End()

	key := strings.TrimSpace(r.PathValue("key"))

	var req putSettingRequest
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

	updated, err := h.settingsService.PutSetting(ctx, key, req.Value)
	if err != nil {
		h.logger.WarnContext(ctx, "put setting failed", "key", key, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, settingToDTO(ctx, updated))
}

type putSettingRequest struct {
	Value string `json:"value" validate:"required,max=200"`
}

type settingDTO struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func settingToDTO(ctx context.Context, v settings.Setting) settingDTO {
	ctx, span := startSpan(ctx, "httpapi.settingToDTO")
	defer span.End()

	return settingDTO{
		Key:   v.Key,
		Value: v.Value,
	}
}
