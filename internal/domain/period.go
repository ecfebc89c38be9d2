package domain

import (
	"fmt"
	"time"
)

// Quarter representa um trimestre do calendário (sem offset de ano fiscal)
type Quarter int

const (
	Q1 Quarter = iota + 1
	Q2
	Q3
	Q4
)

// DefaultQuarter é o trimestre assumido quando o parâmetro é inválido ou ausente.
// A política de entrada é leniente: o chamador recebe o Q4 em vez de um erro.
const DefaultQuarter = Q4

// ParseQuarter converte o parâmetro textual ("1".."4") para Quarter
func ParseQuarter(raw string) (Quarter, bool) {
	switch raw {
	case "1":
		return Q1, true
	case "2":
		return Q2, true
	case "3":
		return Q3, true
	case "4":
		return Q4, true
	}
	return 0, false
}

// QuarterOrDefault aplica a política leniente de entrada: valores
// inválidos ou ausentes caem no DefaultQuarter
func QuarterOrDefault(raw string) Quarter {
	if q, ok := ParseQuarter(raw); ok {
		return q
	}
	return DefaultQuarter
}

// QuarterOf retorna o trimestre do calendário ao qual o mês pertence
func QuarterOf(month time.Month) Quarter {
	return Quarter((int(month)-1)/3 + 1)
}

func (q Quarter) String() string {
	return fmt.Sprintf("%d", int(q))
}

// Period é um intervalo de datas (formato YYYY-MM-DD, inclusivo)
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MonthRange é um intervalo em granularidade de mês (formato YYYY-MM),
// usado para consultar metas mensais
type MonthRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// QuarterPeriods agrupa o período corrente e o período de comparação
type QuarterPeriods struct {
	Current  Period `json:"currentPeriod"`
	Previous Period `json:"prevPeriod"`
}

// limites de cada trimestre no calendário
var quarterBounds = map[Quarter]struct {
	startMonth, endMonth string
	endDay               string
}{
	Q1: {"01", "03", "31"},
	Q2: {"04", "06", "30"},
	Q3: {"07", "09", "30"},
	Q4: {"10", "12", "31"},
}

// ResolvePeriod calcula o período de um trimestre e o período
// imediatamente anterior. O trimestre anterior ao Q1 é o Q4 do ano anterior.
func ResolvePeriod(q Quarter, year int) QuarterPeriods {
	prevQuarter := q - 1
	prevYear := year
	if q == Q1 {
		prevQuarter = Q4
		prevYear = year - 1
	}

	return QuarterPeriods{
		Current:  quarterPeriod(q, year),
		Previous: quarterPeriod(prevQuarter, prevYear),
	}
}

// ResolveMonthlyPeriod calcula o intervalo de meses de um trimestre.
// As metas são armazenadas por mês, não por dia, então a consulta de
// metas usa essa granularidade
func ResolveMonthlyPeriod(q Quarter, year int) MonthRange {
	bounds := quarterBounds[q]
	return MonthRange{
		Start: fmt.Sprintf("%04d-%s", year, bounds.startMonth),
		End:   fmt.Sprintf("%04d-%s", year, bounds.endMonth),
	}
}

func quarterPeriod(q Quarter, year int) Period {
	bounds := quarterBounds[q]
	return Period{
		Start: fmt.Sprintf("%04d-%s-01", year, bounds.startMonth),
		End:   fmt.Sprintf("%04d-%s-%s", year, bounds.endMonth, bounds.endDay),
	}
}
