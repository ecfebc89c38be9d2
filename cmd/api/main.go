package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/api"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/scheduler"
	"github.com/vfg2006/sales-performance-api/internal/usecases/advising"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-performance-api/pkg/cache"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	analyticsRepo := repository.NewAnalyticsRepository(pgConn)

	// Cache compartilhado entre todos os relatórios
	cacheService := cache.NewService(time.Duration(cfg.Analytics.CacheTTLSeconds) * time.Second)

	analyticsService := analyzing.NewService(cfg, analyticsRepo, cacheService)
	advisingService := advising.NewService(cfg, analyticsRepo, cacheService)

	// Agendador de aquecimento do cache do trimestre corrente
	warmupService := scheduler.NewCacheWarmupService(analyticsService, advisingService, cfg)

	if err := warmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento de cache")
	} else {
		logrus.Info("Agendador de aquecimento de cache iniciado com sucesso")
	}

	server, err := api.New(cfg, analyticsService, advisingService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
