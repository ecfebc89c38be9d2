package handler

import (
	"net/http"

	"github.com/vfg2006/sales-performance-api/internal/usecases/advising"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

// GetRiskFactors retorna os sinais de risco do estado mais recente
func GetRiskFactors(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		risks, err := service.RiskFactors(r.Context())
		if err != nil {
			logger.WithError(err).Error("risk-factors: erro ao avaliar fatores de risco")
			respondInternalError(w)
			return
		}

		respondData(w, r, risks)
	})
}
