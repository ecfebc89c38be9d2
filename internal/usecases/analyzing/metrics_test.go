package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func TestWinRate(t *testing.T) {
	tests := []struct {
		name     string
		won      int
		lost     int
		expected float64
	}{
		{name: "Metade das negociações ganhas", won: 5, lost: 5, expected: 50},
		{name: "Todas ganhas", won: 4, lost: 0, expected: 100},
		{name: "Nenhuma decidida retorna zero", won: 0, lost: 0, expected: 0},
		{name: "Todas perdidas", won: 0, lost: 3, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, winRate(tt.won, tt.lost))
		})
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected float64
	}{
		{name: "Crescimento", current: 150, previous: 100, expected: 50},
		{name: "Queda total", current: 0, previous: 100, expected: -100},
		{name: "Período anterior zerado retorna zero", current: 200, previous: 0, expected: 0},
		{name: "Sem variação", current: 100, previous: 100, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, percentChange(tt.current, tt.previous))
		})
	}
}

func TestTargetAttainment(t *testing.T) {
	tests := []struct {
		name     string
		actual   float64
		target   float64
		expected float64
	}{
		{name: "Meta superada", actual: 10000, target: 9000, expected: 100.0 / 9.0},
		{name: "Meta não atingida", actual: 4500, target: 9000, expected: -50},
		{name: "Sem meta cadastrada retorna zero", actual: 10000, target: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, targetAttainment(tt.actual, tt.target), 1e-9)
		})
	}
}

func TestFoldDrivers(t *testing.T) {
	periods := domain.ResolvePeriod(domain.Q2, 2025)

	current := periodAggregates{
		wonCount:      3,
		lostCount:     3,
		avgDealSize:   1000,
		avgSalesCycle: 20.37,
		pipelineValue: 5000,
	}
	previous := periodAggregates{
		wonCount:      1,
		lostCount:     3,
		avgDealSize:   800,
		avgSalesCycle: 25.91,
		pipelineValue: 4000,
	}

	metrics := foldDrivers(current, previous, periods)

	// 50% contra 25% de conversão: variação de 100%
	assert.Equal(t, 50.0, metrics.WinRate.Value)
	assert.Equal(t, 100.0, metrics.WinRate.Change)

	assert.Equal(t, 1000.0, metrics.AvgDealSize.Value)
	assert.Equal(t, 25.0, metrics.AvgDealSize.Change)

	// Ciclo de vendas compara em dias, com uma casa decimal
	assert.Equal(t, 20.4, metrics.AvgSalesCycle.Value)
	assert.Equal(t, -5.5, metrics.AvgSalesCycle.Change)

	assert.Equal(t, 5000.0, metrics.PipelineValue.Value)
	assert.Equal(t, 25.0, metrics.PipelineValue.Change)

	assert.Equal(t, periods, metrics.Meta)
}

func TestFoldDriversPeriodoAnteriorVazio(t *testing.T) {
	periods := domain.ResolvePeriod(domain.Q1, 2025)

	current := periodAggregates{
		wonCount:      2,
		lostCount:     2,
		avgDealSize:   500,
		avgSalesCycle: 10,
		pipelineValue: 1000,
	}

	metrics := foldDrivers(current, periodAggregates{}, periods)

	// Sem dados no período anterior, todas as variações percentuais zeram
	assert.Equal(t, 0.0, metrics.WinRate.Change)
	assert.Equal(t, 0.0, metrics.AvgDealSize.Change)
	assert.Equal(t, 0.0, metrics.PipelineValue.Change)

	// O ciclo de vendas é variação absoluta, então mantém os dias correntes
	assert.Equal(t, 10.0, metrics.AvgSalesCycle.Change)
}
