package advising

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
			StuckDealDays:         30,
			InactiveAccountDays:   30,
			LateStageInactiveDays: 14,
			MinDecidedDeals:       5,
		},
	}
}

func TestRiskFactors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(testConfig(), mockRepo, cache.NewService(time.Minute))

	mockRepo.EXPECT().
		StuckDealsBySegment(gomock.Any(), 30).
		Return(&domain.SegmentDealCount{Count: 4, Segment: domain.SegmentMidMarket}, nil)
	mockRepo.EXPECT().
		LowestWinRateRep(gomock.Any(), 5).
		Return(&domain.RepWinRate{Name: "Alice", WinRate: 25}, nil)
	mockRepo.EXPECT().
		InactiveAccountCount(gomock.Any(), 30).
		Return(6, nil)

	risks, err := service.RiskFactors(context.Background())

	assert.NoError(t, err)
	assert.Len(t, risks, 3)
	assert.Equal(t, "4 Mid-Market deals stuck over 30 days", risks[0].Text)
	assert.Equal(t, "Rep Alice - Win Rate: 25%", risks[1].Text)
	assert.Equal(t, "6 Accounts with no recent activity", risks[2].Text)
}

func TestRiskFactorsSemCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(testConfig(), mockRepo, cache.NewService(time.Minute))

	// Fatores de risco sempre avaliam o estado mais recente: duas
	// chamadas consultam o banco duas vezes
	mockRepo.EXPECT().StuckDealsBySegment(gomock.Any(), 30).Return(nil, nil).Times(2)
	mockRepo.EXPECT().LowestWinRateRep(gomock.Any(), 5).Return(nil, nil).Times(2)
	mockRepo.EXPECT().InactiveAccountCount(gomock.Any(), 30).Return(0, nil).Times(2)

	_, err := service.RiskFactors(context.Background())
	assert.NoError(t, err)

	risks, err := service.RiskFactors(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, risks)
}

func TestRiskFactorsErroDoBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(testConfig(), mockRepo, cache.NewService(time.Minute))

	mockRepo.EXPECT().StuckDealsBySegment(gomock.Any(), 30).Return(nil, assert.AnError)
	mockRepo.EXPECT().LowestWinRateRep(gomock.Any(), 5).Return(nil, nil).AnyTimes()
	mockRepo.EXPECT().InactiveAccountCount(gomock.Any(), 30).Return(0, nil).AnyTimes()

	risks, err := service.RiskFactors(context.Background())

	assert.Error(t, err)
	assert.Nil(t, risks)
}

func TestRecommendations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(testConfig(), mockRepo, cache.NewService(time.Minute))

	// A segunda chamada sai do cache, então cada consulta roda uma vez
	mockRepo.EXPECT().
		StuckDealsBySegment(gomock.Any(), 30).
		Return(&domain.SegmentDealCount{Count: 3, Segment: domain.SegmentEnterprise}, nil).
		Times(1)
	mockRepo.EXPECT().
		LowestWinRateRep(gomock.Any(), 5).
		Return(nil, nil).
		Times(1)
	mockRepo.EXPECT().
		InactiveAccountCount(gomock.Any(), 30).
		Return(0, nil).
		Times(1)
	mockRepo.EXPECT().
		LateStageInactiveDealCount(gomock.Any(), 14).
		Return(2, nil).
		Times(1)

	recommendations, err := service.Recommendations(context.Background())

	assert.NoError(t, err)
	assert.Len(t, recommendations, 2)
	assert.Equal(t, "aging_deals", recommendations[0].ID)
	assert.Equal(t, "late_stage_inactive", recommendations[1].ID)

	cached, err := service.Recommendations(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, recommendations, cached)
}

func TestRecommendationsFallbackGenerico(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(testConfig(), mockRepo, cache.NewService(time.Minute))

	mockRepo.EXPECT().StuckDealsBySegment(gomock.Any(), 30).Return(nil, nil)
	mockRepo.EXPECT().LowestWinRateRep(gomock.Any(), 5).Return(nil, nil)
	mockRepo.EXPECT().InactiveAccountCount(gomock.Any(), 30).Return(0, nil)
	mockRepo.EXPECT().LateStageInactiveDealCount(gomock.Any(), 14).Return(0, nil)

	recommendations, err := service.Recommendations(context.Background())

	assert.NoError(t, err)
	assert.Len(t, recommendations, 3)
	assert.Equal(t, "pipeline_review", recommendations[0].ID)
}
