package httpapi

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/caballebrios/nightboard/internal/domain/admin"
	"github.com/caballebrios/nightboard/internal/usecase"
)

func (h *Handler) RunAdminQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAdminQuery")
	defer span.End()

	var req runQueryRequest
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

	result, err := h.adminService.RunConsoleQuery(ctx, req.Query)
	if err != nil {
		h.logger.WarnContext(ctx, "console query failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, queryResultToDTO(ctx, result))
}

// ExportAdminQuery runs a console query and streams the result as a CSV
// attachment instead of the JSON envelope.
func (h *Handler) ExportAdminQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportAdminQuery")
	defer span.End()

	var req runQueryRequest
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

	result, err := h.adminService.RunConsoleQuery(ctx, req.Query)
	if err != nil {
		h.logger.WarnContext(ctx, "console query export failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writer := csv.NewWriter(buf)
	_ = writer.Write(result.Columns)
	for _, row := range result.Rows {
		_ = writer.Write(row)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		writeError(ctx, w, fmt.Errorf("encode csv: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="query_result.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.B)
}

// DownloadBackup streams a copy of the embedded database file.
func (h *Handler) DownloadBackup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DownloadBackup")
	defer span.End()

	payload, filename, err := h.adminService.BackupDatabase(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "backup failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/x-sqlite3")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (h *Handler) GetDatabaseInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDatabaseInfo")
	defer span.End()

	info, err := h.adminService.DatabaseInfo(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "database info failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, databaseInfoToDTO(ctx, info))
}

func (h *Handler) ImportHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportHistory")
	defer span.End()

	result, err := h.adminService.ImportHistory(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "history import failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, importResultToDTO(ctx, result))
}

type runQueryRequest struct {
	Query string `json:"query" validate:"required"`
}

type queryResultDTO struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func queryResultToDTO(ctx context.Context, v admin.QueryResult) queryResultDTO {
	ctx, span := startSpan(ctx, "httpapi.queryResultToDTO")
	defer span.End()

	return queryResultDTO{
		Columns: v.Columns,
		Rows:    v.Rows,
	}
}

type databaseInfoDTO struct {
	Backend    string `json:"backend"`
	Path       string `json:"path,omitempty"`
	SizeBytes  int64  `json:"sizeBytes,omitempty"`
	TableCount int    `json:"tableCount"`
}

func databaseInfoToDTO(ctx context.Context, v admin.DatabaseInfo) databaseInfoDTO {
	ctx, span := startSpan(ctx, "httpapi.databaseInfoToDTO")
	defer span.End()

	return databaseInfoDTO{
		Backend:    v.Backend,
		Path:       v.Path,
		SizeBytes:  v.SizeBytes,
		TableCount: v.TableCount,
	}
}

type importResultDTO struct {
	SeasonName      string `json:"seasonName"`
	NightsImported  int    `json:"nightsImported"`
	RoundsImported  int    `json:"roundsImported"`
	AlreadyImported bool   `json:"alreadyImported"`
}

func importResultToDTO(ctx context.Context, v admin.ImportResult) importResultDTO {
	ctx, span := startSpan(ctx, "httpapi.importResultToDTO")
	defer span.End()

	return importResultDTO{
		SeasonName:      v.SeasonName,
		NightsImported:  v.NightsImported,
		RoundsImported:  v.RoundsImported,
		AlreadyImported: v.AlreadyImported,
	}
}
