package analyzing

import (
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

// periodAggregates reúne os agregados brutos de um período, na ordem em
// que as consultas são despachadas
type periodAggregates struct {
	wonCount      int
	lostCount     int
	avgDealSize   float64
	avgSalesCycle float64
	pipelineValue float64
}

// winRate calcula a taxa de conversão em percentual. Zero quando não há
// negociações decididas no período
func winRate(won, lost int) float64 {
	total := won + lost
	if total == 0 {
		return 0
	}
	return float64(won) / float64(total) * 100
}

// percentChange calcula a variação percentual entre períodos. Zero quando
// o período anterior é zero, para evitar divisão por zero
func percentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// targetAttainment calcula o percentual de atingimento da meta. Zero
// quando não há meta cadastrada para o período
func targetAttainment(actual, target float64) float64 {
	if target == 0 {
		return 0
	}
	return (actual - target) / target * 100
}

// foldDrivers combina os agregados dos dois períodos nas métricas nomeadas.
// O arredondamento acontece uma única vez aqui, na saída; os valores
// intermediários seguem sem arredondar. O ciclo de vendas é a exceção da
// comparação: variação absoluta em dias, não percentual
func foldDrivers(current, previous periodAggregates, meta domain.QuarterPeriods) *domain.DriverMetrics {
	currentWinRate := winRate(current.wonCount, current.lostCount)
	previousWinRate := winRate(previous.wonCount, previous.lostCount)

	return &domain.DriverMetrics{
		WinRate: domain.Metric{
			Value:  utils.RoundWithTwoDecimalPlace(currentWinRate),
			Change: utils.RoundWithTwoDecimalPlace(percentChange(currentWinRate, previousWinRate)),
		},
		AvgDealSize: domain.Metric{
			Value:  utils.RoundWithTwoDecimalPlace(current.avgDealSize),
			Change: utils.RoundWithTwoDecimalPlace(percentChange(current.avgDealSize, previous.avgDealSize)),
		},
		AvgSalesCycle: domain.Metric{
			Value:  utils.RoundWithOneDecimalPlace(current.avgSalesCycle),
			Change: utils.RoundWithOneDecimalPlace(current.avgSalesCycle - previous.avgSalesCycle),
		},
		PipelineValue: domain.Metric{
			Value:  utils.RoundWithTwoDecimalPlace(current.pipelineValue),
			Change: utils.RoundWithTwoDecimalPlace(percentChange(current.pipelineValue, previous.pipelineValue)),
		},
		Meta: meta,
	}
}
