package http

import (
	"net/http"

	"function-insights/internal/aggregators"
	"function-insights/internal/ingestors"
	"function-insights/internal/models"
	"function-insights/internal/registries"
	"function-insights/internal/shared/loggers"
	"function-insights/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	statsService aggregators.StatsService,
	registryService registries.RegistryService,
	ingestionService ingestors.IngestionService,
	defaultPeriod models.WindowPeriod,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Route("/api", func(api chi.Router) {
		api.Get("/stats", errorHandlingAdapter(NewCurrentStatsHandler(statsService, defaultPeriod)))
		api.Get("/stats/weekly", errorHandlingAdapter(NewWeeklyRollupHandler(statsService)))

		api.Get("/user", errorHandlingAdapter(NewListFunctionsHandler(registryService)))
		api.Post("/config", errorHandlingAdapter(NewRegisterFunctionHandler(registryService)))
		api.Patch("/config", errorHandlingAdapter(NewUpdateFunctionConfigHandler(registryService)))
		api.Delete("/config/delete", errorHandlingAdapter(NewDeleteFunctionHandler(registryService)))

		api.Post("/invocations", errorHandlingAdapter(NewIngestInvocationsHandler(ingestionService)))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
