package advising

import (
	"fmt"
	"math"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

const (
	maxRiskFactors     = 3
	maxRecommendations = 5
)

// findings reúne as linhas brutas das consultas de sinais. Campos nil ou
// zero indicam ausência do sinal correspondente
type findings struct {
	stuckDeals        *domain.SegmentDealCount
	lowestWinRateRep  *domain.RepWinRate
	inactiveAccounts  int
	lateStageInactive int
}

// composeRiskFactors colapsa os sinais encontrados em até três fatores de
// risco, um por categoria. Sem sinais, a lista sai vazia
func composeRiskFactors(f findings) []domain.RiskFactor {
	risks := make([]domain.RiskFactor, 0, maxRiskFactors)

	if f.stuckDeals != nil {
		risks = append(risks, domain.RiskFactor{
			Type: "stuck_deals",
			Text: fmt.Sprintf("%d %s deals stuck over 30 days", f.stuckDeals.Count, domain.SegmentName(f.stuckDeals.Segment)),
			Data: f.stuckDeals,
		})
	}

	if f.lowestWinRateRep != nil {
		risks = append(risks, domain.RiskFactor{
			Type: "low_win_rate",
			Text: fmt.Sprintf("Rep %s - Win Rate: %d%%", f.lowestWinRateRep.Name, roundPercent(f.lowestWinRateRep.WinRate)),
			Data: f.lowestWinRateRep,
		})
	}

	if f.inactiveAccounts > 0 {
		risks = append(risks, domain.RiskFactor{
			Type: "inactive_accounts",
			Text: fmt.Sprintf("%d Accounts with no recent activity", f.inactiveAccounts),
			Data: map[string]int{"count": f.inactiveAccounts},
		})
	}

	if len(risks) > maxRiskFactors {
		risks = risks[:maxRiskFactors]
	}

	return risks
}

// composeRecommendations colapsa os sinais em até cinco recomendações, uma
// por categoria. A lista nunca sai vazia: sem sinais, entra o conjunto
// fixo de sugestões genéricas
func composeRecommendations(f findings) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0, maxRecommendations)

	if f.stuckDeals != nil && f.stuckDeals.Count > 0 {
		recommendations = append(recommendations, domain.Recommendation{
			ID: "aging_deals",
			Text: fmt.Sprintf(
				"Focus on aging deals in %s segment (%d open > 30 days)",
				domain.SegmentName(f.stuckDeals.Segment), f.stuckDeals.Count,
			),
			Data: f.stuckDeals,
		})
	}

	if f.lowestWinRateRep != nil {
		recommendations = append(recommendations, domain.Recommendation{
			ID:   "coach_rep",
			Text: fmt.Sprintf("Coach %s to improve win rate (%d%%)", f.lowestWinRateRep.Name, roundPercent(f.lowestWinRateRep.WinRate)),
			Data: f.lowestWinRateRep,
		})
	}

	if f.inactiveAccounts > 0 {
		recommendations = append(recommendations, domain.Recommendation{
			ID:   "inactive_accounts",
			Text: fmt.Sprintf("Increase outreach to %d inactive accounts (no activity in 30 days)", f.inactiveAccounts),
			Data: map[string]int{"count": f.inactiveAccounts},
		})
	}

	if f.lateStageInactive > 0 {
		recommendations = append(recommendations, domain.Recommendation{
			ID:   "late_stage_inactive",
			Text: fmt.Sprintf("Re-engage %d late-stage deals with no activity in 14 days", f.lateStageInactive),
			Data: map[string]int{"count": f.lateStageInactive},
		})
	}

	if len(recommendations) == 0 {
		return genericRecommendations()
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	return recommendations
}

// genericRecommendations é o conteúdo determinístico de fallback para que
// o dashboard nunca receba uma lista de ações vazia
func genericRecommendations() []domain.Recommendation {
	return []domain.Recommendation{
		{ID: "pipeline_review", Text: "Review pipeline coverage by segment to spot gaps"},
		{ID: "rep_coaching", Text: "Run a quick win/loss review and share best practices"},
		{ID: "activity_push", Text: "Increase outreach on accounts without recent touchpoints"},
	}
}

func roundPercent(value float64) int {
	return int(math.Round(value))
}
