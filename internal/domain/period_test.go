package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuarterOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Quarter
	}{
		{name: "Trimestre válido", raw: "2", expected: Q2},
		{name: "Parâmetro ausente cai no padrão", raw: "", expected: Q4},
		{name: "Parâmetro inválido cai no padrão", raw: "5", expected: Q4},
		{name: "Texto não numérico cai no padrão", raw: "abc", expected: Q4},
		{name: "Número negativo cai no padrão", raw: "-1", expected: Q4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuarterOrDefault(tt.raw))
		})
	}
}

func TestResolvePeriod(t *testing.T) {
	tests := []struct {
		name             string
		quarter          Quarter
		year             int
		expectedCurrent  Period
		expectedPrevious Period
	}{
		{
			name:             "Q2 compara com Q1 do mesmo ano",
			quarter:          Q2,
			year:             2025,
			expectedCurrent:  Period{Start: "2025-04-01", End: "2025-06-30"},
			expectedPrevious: Period{Start: "2025-01-01", End: "2025-03-31"},
		},
		{
			name:             "Q1 compara com Q4 do ano anterior",
			quarter:          Q1,
			year:             2025,
			expectedCurrent:  Period{Start: "2025-01-01", End: "2025-03-31"},
			expectedPrevious: Period{Start: "2024-10-01", End: "2024-12-31"},
		},
		{
			name:             "Q4 compara com Q3 do mesmo ano",
			quarter:          Q4,
			year:             2025,
			expectedCurrent:  Period{Start: "2025-10-01", End: "2025-12-31"},
			expectedPrevious: Period{Start: "2025-07-01", End: "2025-09-30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods := ResolvePeriod(tt.quarter, tt.year)

			assert.Equal(t, tt.expectedCurrent, periods.Current)
			assert.Equal(t, tt.expectedPrevious, periods.Previous)
		})
	}
}

func TestResolveMonthlyPeriod(t *testing.T) {
	months := ResolveMonthlyPeriod(Q2, 2025)

	assert.Equal(t, MonthRange{Start: "2025-04", End: "2025-06"}, months)
}

func TestQuarterOf(t *testing.T) {
	tests := []struct {
		month    time.Month
		expected Quarter
	}{
		{month: time.January, expected: Q1},
		{month: time.March, expected: Q1},
		{month: time.April, expected: Q2},
		{month: time.September, expected: Q3},
		{month: time.December, expected: Q4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, QuarterOf(tt.month), "mês %s", tt.month)
	}
}

func TestSegmentName(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected string
	}{
		{name: "SMB", code: 1, expected: "SMB"},
		{name: "Mid-Market", code: 2, expected: "Mid-Market"},
		{name: "Enterprise", code: 3, expected: "Enterprise"},
		{name: "Código desconhecido", code: 99, expected: "Unknown"},
		{name: "Código zero", code: 0, expected: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SegmentName(tt.code))
		})
	}
}
