package handler

import (
	"net/http"

	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

// GetSummary retorna a comparação entre meta e receita do trimestre
func GetSummary(service analyzing.Analyzer, defaultYear int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		quarter := domain.QuarterOrDefault(r.URL.Query().Get("quarter"))
		year := yearOrDefault(r.URL.Query().Get("year"), defaultYear)

		summary, err := service.Summary(r.Context(), quarter, year)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"quarter": quarter,
				"year":    year,
			}).Error("summary: erro ao calcular resumo do trimestre")
			respondInternalError(w)
			return
		}

		respondData(w, r, summary)
	})
}

// GetTrend retorna a receita mensal de negociações ganhas dos últimos meses
func GetTrend(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		trend, err := service.Trend(r.Context())
		if err != nil {
			logger.WithError(err).Error("trend: erro ao calcular tendência mensal")
			respondInternalError(w)
			return
		}

		respondData(w, r, trend)
	})
}
