package handler

import (
	"net/http"

	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

// GetDrivers retorna os indicadores do trimestre com comparação ao anterior
func GetDrivers(service analyzing.Analyzer, defaultYear int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		quarter := domain.QuarterOrDefault(r.URL.Query().Get("quarter"))
		year := yearOrDefault(r.URL.Query().Get("year"), defaultYear)

		drivers, err := service.Drivers(r.Context(), quarter, year)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"quarter": quarter,
				"year":    year,
			}).Error("drivers: erro ao calcular indicadores do trimestre")
			respondInternalError(w)
			return
		}

		respondData(w, r, drivers)
	})
}
