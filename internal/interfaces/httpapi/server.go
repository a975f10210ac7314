package httpapi

import (
	"net/http"

	idgen "github.com/caballebrios/nightboard/internal/platform/id"
	"github.com/caballebrios/nightboard/internal/platform/logging"
)

func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	swaggerEnabled bool,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, swaggerEnabled)
	registerPlayerRoutes(mux, handler)
	registerSeasonRoutes(mux, handler)
	registerGameRoutes(mux, handler)
	registerNightRoutes(mux, handler)
	registerPenaltyRoutes(mux, handler)
	registerReportRoutes(mux, handler)
	registerSettingsRoutes(mux, handler)
	registerAdminRoutes(mux, handler)

	// RequestID sits inside tracing so generated ids land in the traced
	// context, and outside logging so access lines carry them.
	chain := recoverPanic(logger, mux)
	chain = CORS(corsAllowedOrigins, chain)
	chain = RequestLogging(logger, chain)
	chain = RequestID(idgen.NewRandomGenerator(), chain)
	return RequestTracing(chain)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
