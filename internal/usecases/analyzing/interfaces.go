package analyzing

import (
	"context"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// Analyzer calcula as métricas de desempenho de vendas por trimestre
type Analyzer interface {
	// Summary compara a receita realizada do trimestre com a meta mensal somada
	Summary(ctx context.Context, quarter domain.Quarter, year int) (*domain.SummaryReport, error)

	// Drivers calcula os indicadores do trimestre com comparação ao trimestre anterior
	Drivers(ctx context.Context, quarter domain.Quarter, year int) (*domain.DriverMetrics, error)

	// Trend retorna a receita de negociações ganhas dos últimos meses, por mês
	Trend(ctx context.Context) ([]domain.TrendPoint, error)
}
