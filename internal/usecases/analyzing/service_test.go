package analyzing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/cache"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Analytics: config.Analytics{
			CacheTTLSeconds: 600,
			TrendMonths:     6,
			DefaultYear:     2025,
		},
	}
}

func TestSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(testConfig(), mockRepo, cache.NewService(time.Minute))

	months := domain.MonthRange{Start: "2025-04", End: "2025-06"}
	period := domain.Period{Start: "2025-04-01", End: "2025-06-30"}

	// Cada consulta acontece uma única vez; a segunda chamada sai do cache
	mockRepo.EXPECT().
		QuarterlyTarget(gomock.Any(), months).
		Return(9000.0, nil).
		Times(1)
	mockRepo.EXPECT().
		WonRevenue(gomock.Any(), period).
		Return(10000.0, nil).
		Times(1)

	report, err := service.Summary(context.Background(), domain.Q2, 2025)

	assert.NoError(t, err)
	assert.Equal(t, 9000.0, report.QuarterlyTarget)
	assert.Equal(t, 10000.0, report.QuarterlyRevenue)
	assert.Equal(t, 11.11, report.Percentage)

	cached, err := service.Summary(context.Background(), domain.Q2, 2025)

	assert.NoError(t, err)
	assert.Equal(t, report, cached)
}

func TestSummaryErroDoBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(testConfig(), mockRepo, cache.NewService(time.Minute))

	mockRepo.EXPECT().
		QuarterlyTarget(gomock.Any(), gomock.Any()).
		Return(0.0, assert.AnError)
	mockRepo.EXPECT().
		WonRevenue(gomock.Any(), gomock.Any()).
		Return(10000.0, nil).
		AnyTimes()

	report, err := service.Summary(context.Background(), domain.Q2, 2025)

	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestDrivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(testConfig(), mockRepo, cache.NewService(time.Minute))

	current := domain.Period{Start: "2025-04-01", End: "2025-06-30"}
	previous := domain.Period{Start: "2025-01-01", End: "2025-03-31"}

	// Trimestre corrente: 3 ganhas, 3 perdidas
	mockRepo.EXPECT().DealCountByStage(gomock.Any(), domain.StageWon, current).Return(3, nil)
	mockRepo.EXPECT().DealCountByStage(gomock.Any(), domain.StageLost, current).Return(3, nil)
	mockRepo.EXPECT().AvgWonDealSize(gomock.Any(), current).Return(1000.0, nil)
	mockRepo.EXPECT().AvgSalesCycleDays(gomock.Any(), current).Return(20.0, nil)
	mockRepo.EXPECT().PipelineValue(gomock.Any(), current.End).Return(5000.0, nil)

	// Trimestre anterior: 1 ganha, 3 perdidas
	mockRepo.EXPECT().DealCountByStage(gomock.Any(), domain.StageWon, previous).Return(1, nil)
	mockRepo.EXPECT().DealCountByStage(gomock.Any(), domain.StageLost, previous).Return(3, nil)
	mockRepo.EXPECT().AvgWonDealSize(gomock.Any(), previous).Return(800.0, nil)
	mockRepo.EXPECT().AvgSalesCycleDays(gomock.Any(), previous).Return(25.0, nil)
	mockRepo.EXPECT().PipelineValue(gomock.Any(), previous.End).Return(4000.0, nil)

	metrics, err := service.Drivers(context.Background(), domain.Q2, 2025)

	assert.NoError(t, err)
	assert.Equal(t, 50.0, metrics.WinRate.Value)
	assert.Equal(t, 100.0, metrics.WinRate.Change)
	assert.Equal(t, 1000.0, metrics.AvgDealSize.Value)
	assert.Equal(t, 25.0, metrics.AvgDealSize.Change)
	assert.Equal(t, 20.0, metrics.AvgSalesCycle.Value)
	assert.Equal(t, -5.0, metrics.AvgSalesCycle.Change)
	assert.Equal(t, 5000.0, metrics.PipelineValue.Value)
	assert.Equal(t, 25.0, metrics.PipelineValue.Change)
	assert.Equal(t, current, metrics.Meta.Current)
	assert.Equal(t, previous, metrics.Meta.Previous)

	// Segunda chamada sai do cache sem novas consultas
	cached, err := service.Drivers(context.Background(), domain.Q2, 2025)

	assert.NoError(t, err)
	assert.Equal(t, metrics, cached)
}

func TestDriversErroDoBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(testConfig(), mockRepo, cache.NewService(time.Minute))

	mockRepo.EXPECT().DealCountByStage(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, assert.AnError).AnyTimes()
	mockRepo.EXPECT().AvgWonDealSize(gomock.Any(), gomock.Any()).Return(0.0, nil).AnyTimes()
	mockRepo.EXPECT().AvgSalesCycleDays(gomock.Any(), gomock.Any()).Return(0.0, nil).AnyTimes()
	mockRepo.EXPECT().PipelineValue(gomock.Any(), gomock.Any()).Return(0.0, nil).AnyTimes()

	metrics, err := service.Drivers(context.Background(), domain.Q2, 2025)

	assert.Error(t, err)
	assert.Nil(t, metrics)
}

func TestTrend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(testConfig(), mockRepo, cache.NewService(time.Minute))

	points := []domain.TrendPoint{
		{Month: "2025-03", Revenue: 1200},
		{Month: "2025-04", Revenue: 3400},
	}

	mockRepo.EXPECT().
		MonthlyWonRevenue(gomock.Any(), 6).
		Return(points, nil).
		Times(1)

	trend, err := service.Trend(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, points, trend)

	cached, err := service.Trend(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, points, cached)
}
