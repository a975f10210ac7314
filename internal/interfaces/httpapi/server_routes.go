package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/overview", handler.GetOverview)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PUT /v1/players/{playerID}", handler.RenamePlayer)
	mux.HandleFunc("DELETE /v1/players/{playerID}", handler.DeletePlayer)
	mux.HandleFunc("PUT /v1/players/{playerID}/photo", handler.SetPlayerPhoto)
	mux.HandleFunc("GET /v1/players/{playerID}/photo", handler.GetPlayerPhoto)
}

func registerSeasonRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/seasons", handler.CreateSeason)
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/active", handler.GetActiveSeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}", handler.GetSeason)
	mux.HandleFunc("PUT /v1/seasons/{seasonID}", handler.UpdateSeason)
	mux.HandleFunc("POST /v1/seasons/{seasonID}/activate", handler.ActivateSeason)
	mux.HandleFunc("DELETE /v1/seasons/{seasonID}", handler.DeleteSeason)
}

func registerGameRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/games", handler.CreateGame)
	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("GET /v1/games/{gameID}", handler.GetGame)
	mux.HandleFunc("PUT /v1/games/{gameID}", handler.UpdateGame)
	mux.HandleFunc("DELETE /v1/games/{gameID}", handler.DeleteGame)
}

func registerNightRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/seasons/{seasonID}/nights", handler.CreateNight)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/nights", handler.ListNightsBySeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/rounds", handler.ListSeasonRounds)
	mux.HandleFunc("GET /v1/nights/{nightID}", handler.GetNight)
	mux.HandleFunc("DELETE /v1/nights/{nightID}", handler.DeleteNight)
	mux.HandleFunc("POST /v1/nights/{nightID}/rounds", handler.AddRound)
	mux.HandleFunc("GET /v1/nights/{nightID}/rounds", handler.ListRounds)
	mux.HandleFunc("GET /v1/nights/{nightID}/scoreboard", handler.GetNightScoreboard)
	mux.HandleFunc("DELETE /v1/rounds/{roundID}", handler.DeleteRound)
}

func registerPenaltyRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/nights/{nightID}/penalties", handler.AddPenalty)
	mux.HandleFunc("GET /v1/nights/{nightID}/penalties", handler.ListNightPenalties)
	mux.HandleFunc("GET /v1/penalties", handler.ListAllPenalties)
	mux.HandleFunc("PUT /v1/penalties/{penaltyID}", handler.UpdatePenalty)
	mux.HandleFunc("DELETE /v1/penalties/{penaltyID}", handler.DeletePenalty)
}

func registerReportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons/{seasonID}/reports/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/reports/leaderboard/detailed", handler.GetDetailedLeaderboard)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/reports/progression", handler.GetProgression)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/reports/best-games", handler.GetBestGames)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/reports/attendance", handler.GetAttendance)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/reports/penalties", handler.GetPenaltySummary)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/reports/popularity", handler.GetGamePopularity)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/reports/win-distribution", handler.GetWinDistribution)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/summary", handler.GetSeasonSummary)
}

func registerSettingsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/settings/{key}", handler.GetSetting)
	mux.HandleFunc("PUT /v1/settings/{key}", handler.PutSetting)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/admin/query", handler.RunAdminQuery)
	mux.HandleFunc("POST /v1/admin/query/export", handler.ExportAdminQuery)
	mux.HandleFunc("GET /v1/admin/backup", handler.DownloadBackup)
	mux.HandleFunc("GET /v1/admin/database", handler.GetDatabaseInfo)
	mux.HandleFunc("POST /v1/admin/import/history", handler.ImportHistory)
}
