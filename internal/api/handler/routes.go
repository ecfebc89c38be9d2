package handler

import (
	"net/http"

	"github.com/vfg2006/sales-performance-api/internal/api/handler/router"
	"github.com/vfg2006/sales-performance-api/internal/usecases/advising"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Analytics retorna as rotas das métricas por trimestre e da tendência mensal
func Analytics(service analyzing.Analyzer, defaultYear int) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service, defaultYear),
		},
		{
			Path:    "/v1/summary/trend",
			Method:  http.MethodGet,
			Handler: GetTrend(service),
		},
		{
			Path:    "/v1/drivers",
			Method:  http.MethodGet,
			Handler: GetDrivers(service, defaultYear),
		},
	}
}

// Advising retorna as rotas de fatores de risco e recomendações
func Advising(service advising.Advisor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/risk-factors",
			Method:  http.MethodGet,
			Handler: GetRiskFactors(service),
		},
		{
			Path:    "/v1/recommendations",
			Method:  http.MethodGet,
			Handler: GetRecommendations(service),
		},
	}
}
