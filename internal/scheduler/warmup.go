// Package scheduler contém o serviço de aquecimento periódico do cache
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/advising"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
)

type CacheWarmupConfig struct {
	CronSchedule string
	Enabled      bool
}

// CacheWarmupService recalcula periodicamente os relatórios do trimestre
// corrente para que as requisições encontrem o cache sempre quente
type CacheWarmupService struct {
	scheduler          *gocron.Scheduler
	analyticsService   analyzing.Analyzer
	advisingService    advising.Advisor
	config             CacheWarmupConfig
	warmupRunning      bool
	warmupMutex        sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

func NewCacheWarmupService(
	analyticsService analyzing.Analyzer,
	advisingService advising.Advisor,
	cfg *config.Config,
) *CacheWarmupService {
	warmupConfig := CacheWarmupConfig{
		CronSchedule: cfg.Warmup.CronSchedule, // Default: a cada 10 minutos
		Enabled:      cfg.Warmup.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
	}).Info("Configuração do agendador de aquecimento de cache carregada")

	return &CacheWarmupService{
		scheduler:        scheduler,
		analyticsService: analyticsService,
		advisingService:  advisingService,
		config:           warmupConfig,
	}
}

func (s *CacheWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de aquecimento de cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de aquecimento de cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.WarmupCurrentQuarter(ctx); err != nil {
			logrus.WithError(err).Error("Erro no aquecimento do cache de relatórios")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de cache: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de aquecimento de cache")
		s.scheduler.Stop()
	}()

	return nil
}

// WarmupCurrentQuarter recalcula os relatórios do trimestre corrente. As
// próprias consultas preenchem o cache, então basta executá-las
func (s *CacheWarmupService) WarmupCurrentQuarter(ctx context.Context) error {
	s.warmupMutex.Lock()
	defer s.warmupMutex.Unlock()

	if s.warmupRunning {
		logrus.Warn("Aquecimento de cache já está em execução")
		return nil
	}

	s.warmupRunning = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.warmupRunning = false
		s.lastRunCompletedAt = time.Now()
	}()

	now := time.Now()
	quarter := domain.QuarterOf(now.Month())
	year := now.Year()

	logrus.WithFields(logrus.Fields{
		"quarter": quarter,
		"year":    year,
	}).Info("Iniciando aquecimento do cache de relatórios")

	if _, err := s.analyticsService.Summary(ctx, quarter, year); err != nil {
		return fmt.Errorf("erro ao aquecer o resumo do trimestre: %w", err)
	}

	if _, err := s.analyticsService.Drivers(ctx, quarter, year); err != nil {
		return fmt.Errorf("erro ao aquecer os indicadores do trimestre: %w", err)
	}

	if _, err := s.analyticsService.Trend(ctx); err != nil {
		return fmt.Errorf("erro ao aquecer a tendência mensal: %w", err)
	}

	if _, err := s.advisingService.Recommendations(ctx); err != nil {
		return fmt.Errorf("erro ao aquecer as recomendações: %w", err)
	}

	logrus.Info("Aquecimento do cache de relatórios concluído")

	return nil
}
