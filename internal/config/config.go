package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Analytics Analytics `mapstructure:",squash"`
	Warmup    Warmup    `mapstructure:",squash"`
	RateLimit RateLimit `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Analytics struct {
	CacheTTLSeconds       int `mapstructure:"analytics_cache_ttl_seconds"`
	StuckDealDays         int `mapstructure:"analytics_stuck_deal_days"`
	InactiveAccountDays   int `mapstructure:"analytics_inactive_account_days"`
	LateStageInactiveDays int `mapstructure:"analytics_late_stage_inactive_days"`
	MinDecidedDeals       int `mapstructure:"analytics_min_decided_deals"`
	TrendMonths           int `mapstructure:"analytics_trend_months"`
	DefaultYear           int `mapstructure:"analytics_default_year"`
}

type Warmup struct {
	CronSchedule string `mapstructure:"warmup_cron"`
	Enabled      bool   `mapstructure:"warmup_enabled"`
}

type RateLimit struct {
	RequestsPerMinute int `mapstructure:"rate_limit_requests_per_minute"`
	Burst             int `mapstructure:"rate_limit_burst"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Defaults das regras de analytics. Os limiares de dias espelham as
	// regras de negócio do dashboard (30 dias parado, 14 dias sem atividade)
	viper.SetDefault("ANALYTICS_CACHE_TTL_SECONDS", 600)
	viper.SetDefault("ANALYTICS_STUCK_DEAL_DAYS", 30)
	viper.SetDefault("ANALYTICS_INACTIVE_ACCOUNT_DAYS", 30)
	viper.SetDefault("ANALYTICS_LATE_STAGE_INACTIVE_DAYS", 14)
	viper.SetDefault("ANALYTICS_MIN_DECIDED_DEALS", 5)
	viper.SetDefault("ANALYTICS_TREND_MONTHS", 6)
	viper.SetDefault("ANALYTICS_DEFAULT_YEAR", 2025)

	// Defaults do aquecimento de cache
	viper.SetDefault("WARMUP_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("WARMUP_ENABLED", false)

	viper.SetDefault("RATE_LIMIT_REQUESTS_PER_MINUTE", 100)
	viper.SetDefault("RATE_LIMIT_BURST", 20)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
