package analyzing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/cache"
	"github.com/vfg2006/sales-performance-api/pkg/fanout"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

// Service implementa a interface Analyzer com cache de resultados por período
type Service struct {
	cfg   *config.Config
	repo  repository.AnalyticsRepository
	cache *cache.Service
}

// NewService cria o serviço de métricas. O cache é compartilhado entre
// todos os endpoints e injetado na construção
func NewService(
	cfg *config.Config,
	repo repository.AnalyticsRepository,
	cacheService *cache.Service,
) Analyzer {
	return &Service{
		cfg:   cfg,
		repo:  repo,
		cache: cacheService,
	}
}

// Summary compara a receita realizada do trimestre com a meta mensal somada
func (s *Service) Summary(ctx context.Context, quarter domain.Quarter, year int) (*domain.SummaryReport, error) {
	key := cache.PeriodKey("summary", year, quarter.String())
	if cached, ok := s.cache.Get(key); ok {
		if report, ok := cached.(*domain.SummaryReport); ok {
			logrus.WithFields(logrus.Fields{
				"quarter": quarter,
				"year":    year,
			}).Debug("Resumo do trimestre servido do cache")
			return report, nil
		}
	}

	// As metas têm granularidade de mês e as negociações de dia, então os
	// dois intervalos são resolvidos separadamente
	months := domain.ResolveMonthlyPeriod(quarter, year)
	periods := domain.ResolvePeriod(quarter, year)

	results, err := fanout.All(ctx,
		func(ctx context.Context) (float64, error) {
			return s.repo.QuarterlyTarget(ctx, months)
		},
		func(ctx context.Context) (float64, error) {
			return s.repo.WonRevenue(ctx, periods.Current)
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar agregados do resumo")
	}

	target, actual := results[0], results[1]

	report := &domain.SummaryReport{
		QuarterlyTarget:  target,
		QuarterlyRevenue: actual,
		Percentage:       utils.RoundWithTwoDecimalPlace(targetAttainment(actual, target)),
	}

	s.cache.Set(key, report)

	logrus.WithFields(logrus.Fields{
		"quarter": quarter,
		"year":    year,
	}).Info("Resumo do trimestre calculado a partir do banco")

	return report, nil
}

// Drivers calcula os indicadores do trimestre corrente e do anterior em um
// único lote concorrente e os combina nas métricas comparadas
func (s *Service) Drivers(ctx context.Context, quarter domain.Quarter, year int) (*domain.DriverMetrics, error) {
	key := cache.PeriodKey("drivers", year, quarter.String())
	if cached, ok := s.cache.Get(key); ok {
		if metrics, ok := cached.(*domain.DriverMetrics); ok {
			logrus.WithFields(logrus.Fields{
				"quarter": quarter,
				"year":    year,
			}).Debug("Indicadores do trimestre servidos do cache")
			return metrics, nil
		}
	}

	periods := domain.ResolvePeriod(quarter, year)

	// Dez leituras independentes: cinco para cada período, despachadas de
	// uma vez. A posição de cada resultado segue a ordem das tasks
	tasks := append(s.aggregateTasks(periods.Current), s.aggregateTasks(periods.Previous)...)
	results, err := fanout.All(ctx, tasks...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar agregados dos indicadores")
	}

	current := toPeriodAggregates(results[:5])
	previous := toPeriodAggregates(results[5:])

	metrics := foldDrivers(current, previous, periods)

	s.cache.Set(key, metrics)

	logrus.WithFields(logrus.Fields{
		"quarter": quarter,
		"year":    year,
	}).Info("Indicadores do trimestre calculados a partir do banco")

	return metrics, nil
}

// Trend retorna a receita de negociações ganhas dos últimos meses
func (s *Service) Trend(ctx context.Context) ([]domain.TrendPoint, error) {
	key := cache.TopicKey("trend")
	if cached, ok := s.cache.Get(key); ok {
		if points, ok := cached.([]domain.TrendPoint); ok {
			logrus.Debug("Tendência mensal servida do cache")
			return points, nil
		}
	}

	points, err := s.repo.MonthlyWonRevenue(ctx, s.cfg.Analytics.TrendMonths)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar receita mensal")
	}

	s.cache.Set(key, points)

	logrus.WithField("months", s.cfg.Analytics.TrendMonths).Info("Tendência mensal calculada a partir do banco")

	return points, nil
}

// aggregateTasks monta as cinco leituras agregadas de um período, na ordem
// esperada por toPeriodAggregates
func (s *Service) aggregateTasks(period domain.Period) []fanout.Task[float64] {
	return []fanout.Task[float64]{
		func(ctx context.Context) (float64, error) {
			count, err := s.repo.DealCountByStage(ctx, domain.StageWon, period)
			return float64(count), err
		},
		func(ctx context.Context) (float64, error) {
			count, err := s.repo.DealCountByStage(ctx, domain.StageLost, period)
			return float64(count), err
		},
		func(ctx context.Context) (float64, error) {
			return s.repo.AvgWonDealSize(ctx, period)
		},
		func(ctx context.Context) (float64, error) {
			return s.repo.AvgSalesCycleDays(ctx, period)
		},
		func(ctx context.Context) (float64, error) {
			return s.repo.PipelineValue(ctx, period.End)
		},
	}
}

func toPeriodAggregates(values []float64) periodAggregates {
	return periodAggregates{
		wonCount:      int(values[0]),
		lostCount:     int(values[1]),
		avgDealSize:   values[2],
		avgSalesCycle: values[3],
		pipelineValue: values[4],
	}
}
