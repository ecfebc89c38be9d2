package advising

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/cache"
	"golang.org/x/sync/errgroup"
)

// Service implementa a interface Advisor
type Service struct {
	cfg   *config.Config
	repo  repository.AnalyticsRepository
	cache *cache.Service
}

func NewService(
	cfg *config.Config,
	repo repository.AnalyticsRepository,
	cacheService *cache.Service,
) Advisor {
	return &Service{
		cfg:   cfg,
		repo:  repo,
		cache: cacheService,
	}
}

// RiskFactors consulta os três sinais de risco em paralelo e colapsa cada
// um em no máximo um fator. Sempre avalia o estado mais recente
func (s *Service) RiskFactors(ctx context.Context) ([]domain.RiskFactor, error) {
	found, err := s.collectFindings(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar sinais de risco")
	}

	risks := composeRiskFactors(found)

	logrus.WithField("risk_factors", len(risks)).Info("Fatores de risco avaliados")

	return risks, nil
}

// Recommendations consulta os quatro sinais em paralelo e compõe as
// sugestões acionáveis, com cache por tópico
func (s *Service) Recommendations(ctx context.Context) ([]domain.Recommendation, error) {
	key := cache.TopicKey("recommendations")
	if cached, ok := s.cache.Get(key); ok {
		if recommendations, ok := cached.([]domain.Recommendation); ok {
			logrus.Debug("Recomendações servidas do cache")
			return recommendations, nil
		}
	}

	found, err := s.collectFindings(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar sinais de recomendação")
	}

	recommendations := composeRecommendations(found)

	s.cache.Set(key, recommendations)

	logrus.WithField("recommendations", len(recommendations)).Info("Recomendações calculadas a partir do banco")

	return recommendations, nil
}

// collectFindings despacha as consultas de sinais de uma vez e espera o
// lote completo. O primeiro erro aborta o lote inteiro; nenhum resultado
// parcial é aproveitado
func (s *Service) collectFindings(ctx context.Context, includeLateStage bool) (findings, error) {
	group, ctx := errgroup.WithContext(ctx)

	var found findings

	group.Go(func() error {
		row, err := s.repo.StuckDealsBySegment(ctx, s.cfg.Analytics.StuckDealDays)
		if err != nil {
			return err
		}
		found.stuckDeals = row
		return nil
	})

	group.Go(func() error {
		row, err := s.repo.LowestWinRateRep(ctx, s.cfg.Analytics.MinDecidedDeals)
		if err != nil {
			return err
		}
		found.lowestWinRateRep = row
		return nil
	})

	group.Go(func() error {
		count, err := s.repo.InactiveAccountCount(ctx, s.cfg.Analytics.InactiveAccountDays)
		if err != nil {
			return err
		}
		found.inactiveAccounts = count
		return nil
	})

	if includeLateStage {
		group.Go(func() error {
			count, err := s.repo.LateStageInactiveDealCount(ctx, s.cfg.Analytics.LateStageInactiveDays)
			if err != nil {
				return err
			}
			found.lateStageInactive = count
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return findings{}, err
	}

	return found, nil
}
