package domain

// Estágios de negociação (deals). Os códigos intermediários 3 e 4
// representam negociações abertas em estágio avançado (proposta/negociação)
const (
	StageWon         = 1
	StageLost        = 2
	StageProposal    = 3
	StageNegotiation = 4
)

// LateStages são os estágios considerados avançados para a heurística
// de negociações paradas em fase final
var LateStages = []int{StageProposal, StageNegotiation}

// Códigos de segmento de conta
const (
	SegmentSMB        = 1
	SegmentMidMarket  = 2
	SegmentEnterprise = 3
)

var segmentNames = map[int]string{
	SegmentSMB:        "SMB",
	SegmentMidMarket:  "Mid-Market",
	SegmentEnterprise: "Enterprise",
}

// SegmentName mapeia o código numérico do segmento para o nome exibido.
// O mapeamento é total: qualquer código fora da tabela vira "Unknown"
func SegmentName(code int) string {
	if name, ok := segmentNames[code]; ok {
		return name
	}
	return "Unknown"
}

// Metric é uma estatística do período corrente acompanhada da variação
// em relação ao período anterior. Para métricas percentuais Change é a
// variação percentual; para o ciclo de vendas é a variação absoluta em dias
type Metric struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}

// SummaryReport compara a receita realizada do trimestre com a meta
type SummaryReport struct {
	QuarterlyTarget  float64 `json:"quarterlyTarget"`
	QuarterlyRevenue float64 `json:"quarterlyRevenue"`
	Percentage       float64 `json:"percentage"`
}

// DriverMetrics reúne os indicadores de desempenho do trimestre
type DriverMetrics struct {
	WinRate       Metric         `json:"winRate"`
	AvgDealSize   Metric         `json:"avgDealSize"`
	AvgSalesCycle Metric         `json:"avgSalesCycle"`
	PipelineValue Metric         `json:"pipelineValue"`
	Meta          QuarterPeriods `json:"meta"`
}

// TrendPoint é a receita de negociações ganhas agrupada por mês
type TrendPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// RiskFactor é um sinal de risco derivado dos dados transacionais
type RiskFactor struct {
	Type string `json:"type"`
	Text string `json:"text"`
	Data any    `json:"data"`
}

// Recommendation é uma sugestão acionável derivada dos mesmos sinais
type Recommendation struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Data any    `json:"data,omitempty"`
}

// SegmentDealCount é a linha agregada da consulta de negociações paradas:
// quantidade de deals abertos há mais de 30 dias no segmento mais afetado
type SegmentDealCount struct {
	Count   int `json:"count"`
	Segment int `json:"segment"`
}

// RepWinRate é a linha agregada da consulta de taxa de conversão por
// vendedor (apenas vendedores com amostra mínima de deals decididos)
type RepWinRate struct {
	Name    string  `json:"name"`
	WinRate float64 `json:"win_rate"`
}
