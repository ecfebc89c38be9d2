package advising

import (
	"context"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// Advisor deriva sinais de risco e recomendações acionáveis do registro
// transacional de negociações, contas e atividades
type Advisor interface {
	// RiskFactors avalia o estado mais recente e retorna até três sinais de
	// risco. Não usa cache: cada chamada consulta o banco
	RiskFactors(ctx context.Context) ([]domain.RiskFactor, error)

	// Recommendations retorna até cinco sugestões acionáveis. Quando nenhum
	// sinal é encontrado, retorna o conjunto fixo de sugestões genéricas
	Recommendations(ctx context.Context) ([]domain.Recommendation, error)
}
