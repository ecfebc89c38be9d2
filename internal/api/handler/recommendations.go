package handler

import (
	"net/http"

	"github.com/vfg2006/sales-performance-api/internal/usecases/advising"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

// GetRecommendations retorna as sugestões acionáveis derivadas dos sinais
func GetRecommendations(service advising.Advisor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		recommendations, err := service.Recommendations(r.Context())
		if err != nil {
			logger.WithError(err).Error("recommendations: erro ao calcular recomendações")
			respondInternalError(w)
			return
		}

		respondData(w, r, recommendations)
	})
}
