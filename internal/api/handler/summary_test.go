package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// fakeAnalyzer registra os parâmetros recebidos e devolve respostas fixas
type fakeAnalyzer struct {
	quarter domain.Quarter
	year    int
	summary *domain.SummaryReport
	err     error
}

func (f *fakeAnalyzer) Summary(ctx context.Context, quarter domain.Quarter, year int) (*domain.SummaryReport, error) {
	f.quarter = quarter
	f.year = year
	return f.summary, f.err
}

func (f *fakeAnalyzer) Drivers(ctx context.Context, quarter domain.Quarter, year int) (*domain.DriverMetrics, error) {
	f.quarter = quarter
	f.year = year
	return &domain.DriverMetrics{}, f.err
}

func (f *fakeAnalyzer) Trend(ctx context.Context) ([]domain.TrendPoint, error) {
	return nil, f.err
}

func TestGetSummary(t *testing.T) {
	service := &fakeAnalyzer{
		summary: &domain.SummaryReport{
			QuarterlyTarget:  9000,
			QuarterlyRevenue: 10000,
			Percentage:       11.11,
		},
	}

	request := httptest.NewRequest(http.MethodGet, "/v1/summary?quarter=2&year=2025", nil)
	recorder := httptest.NewRecorder()

	GetSummary(service, 2025).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, domain.Q2, service.quarter)
	assert.Equal(t, 2025, service.year)

	var body struct {
		Success bool                 `json:"success"`
		Data    domain.SummaryReport `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 11.11, body.Data.Percentage)
}

func TestGetSummaryParametrosInvalidos(t *testing.T) {
	service := &fakeAnalyzer{summary: &domain.SummaryReport{}}

	// Parâmetros inválidos caem nos padrões em vez de falhar
	request := httptest.NewRequest(http.MethodGet, "/v1/summary?quarter=9&year=abc", nil)
	recorder := httptest.NewRecorder()

	GetSummary(service, 2025).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, domain.Q4, service.quarter)
	assert.Equal(t, 2025, service.year)
}

func TestGetSummaryErroInterno(t *testing.T) {
	service := &fakeAnalyzer{err: assert.AnError}

	request := httptest.NewRequest(http.MethodGet, "/v1/summary", nil)
	recorder := httptest.NewRecorder()

	GetSummary(service, 2025).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Internal server error", body.Message)
}
