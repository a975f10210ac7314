package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/caballebrios/nightboard/internal/platform/logging"
	"github.com/caballebrios/nightboard/internal/usecase"
)

type Handler struct {
	playerService   *usecase.PlayerService
	seasonService   *usecase.SeasonService
	gameService     *usecase.GameService
	nightService    *usecase.NightService
	penaltyService  *usecase.PenaltyService
	reportService   *usecase.ReportService
	settingsService *usecase.SettingsService
	adminService    *usecase.AdminService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	seasonService *usecase.SeasonService,
	gameService *usecase.GameService,
	nightService *usecase.NightService,
	penaltyService *usecase.PenaltyService,
	reportService *usecase.ReportService,
	settingsService *usecase.SettingsService,
	adminService *usecase.AdminService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:   playerService,
		seasonService:   seasonService,
		gameService:     gameService,
		nightService:    nightService,
		penaltyService:  penaltyService,
		reportService:   reportService,
		settingsService: settingsService,
		adminService:    adminService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetOverview serves the landing view: entity counts plus the active
// season's latest nights.
func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOverview")
	defer span.End()

	dashboard, err := h.reportService.Dashboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get overview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(ctx, dashboard))
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// pathID parses the named numeric path segment. Garbage and non-positive
// values both come back as input errors so services never see a bad id.
func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, name, raw)
	}

	return id, nil
}

type dashboardDTO struct {
	Overview overviewDTO `json:"overview"`
	// ActiveSeason is null while no season carries the active flag.
	ActiveSeason *seasonDTO        `json:"activeSeason"`
	RecentNights []nightSummaryDTO `json:"recentNights"`
}

type overviewDTO struct {
	Players   int `json:"players"`
	Games     int `json:"games"`
	Seasons   int `json:"seasons"`
	Nights    int `json:"nights"`
	Rounds    int `json:"rounds"`
	Penalties int `json:"penalties"`
}

func dashboardToDTO(ctx context.Context, v usecase.Dashboard) dashboardDTO {
	ctx, span := startSpan(ctx, "httpapi.dashboardToDTO")
	defer span.End()

	out := dashboardDTO{
		Overview: overviewDTO{
			Players:   v.Overview.Players,
			Games:     v.Overview.Games,
			Seasons:   v.Overview.Seasons,
			Nights:    v.Overview.Nights,
			Rounds:    v.Overview.Rounds,
			Penalties: v.Overview.Penalties,
		},
		RecentNights: make([]nightSummaryDTO, 0, len(v.RecentNights)),
	}
	if v.ActiveSeason != nil {
		active := seasonToDTO(ctx, *v.ActiveSeason)
		out.ActiveSeason = &active
	}
	for _, item := range v.RecentNights {
		out.RecentNights = append(out.RecentNights, nightSummaryToDTO(ctx, item))
	}

	return out
}
