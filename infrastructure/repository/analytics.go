package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

const (
	dealsTable          = "deals d"
	accountsTable       = "accounts a"
	repsTable           = "reps r"
	activitiesTable     = "activities act"
	monthlyTargetsTable = "monthly_targets"
)

// AnalyticsRepository executa as consultas agregadas de leitura usadas
// pelo dashboard. Nenhum método escreve no banco
type AnalyticsRepository interface {
	QuarterlyTarget(ctx context.Context, months domain.MonthRange) (float64, error)
	WonRevenue(ctx context.Context, period domain.Period) (float64, error)
	DealCountByStage(ctx context.Context, stage int, period domain.Period) (int, error)
	AvgWonDealSize(ctx context.Context, period domain.Period) (float64, error)
	AvgSalesCycleDays(ctx context.Context, period domain.Period) (float64, error)
	PipelineValue(ctx context.Context, asOf string) (float64, error)
	StuckDealsBySegment(ctx context.Context, olderThanDays int) (*domain.SegmentDealCount, error)
	LowestWinRateRep(ctx context.Context, minDecidedDeals int) (*domain.RepWinRate, error)
	InactiveAccountCount(ctx context.Context, inactiveDays int) (int, error)
	LateStageInactiveDealCount(ctx context.Context, inactiveDays int) (int, error)
	MonthlyWonRevenue(ctx context.Context, trailingMonths int) ([]domain.TrendPoint, error)
}

type analyticsRepository struct {
	conn postgres.Queryer
}

func NewAnalyticsRepository(conn postgres.Queryer) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

// QuarterlyTarget soma as metas mensais dentro do intervalo de meses.
// As metas são armazenadas com granularidade de mês (YYYY-MM)
func (r *analyticsRepository) QuarterlyTarget(ctx context.Context, months domain.MonthRange) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(target), 0) AS quarterly_target").
		From(monthlyTargetsTable).
		Where(squirrel.GtOrEq{"month": months.Start}).
		Where(squirrel.LtOrEq{"month": months.End}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanFloat(ctx, query, args)
}

// WonRevenue soma o valor das negociações ganhas fechadas dentro do período
func (r *analyticsRepository) WonRevenue(ctx context.Context, period domain.Period) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(amount), 0) AS quarterly_revenue").
		From(dealsTable).
		Where(squirrel.Eq{"d.stage": domain.StageWon}).
		Where(squirrel.GtOrEq{"d.closed_at": period.Start}).
		Where(squirrel.LtOrEq{"d.closed_at": period.End}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanFloat(ctx, query, args)
}

// DealCountByStage conta as negociações de um estágio fechadas dentro do período
func (r *analyticsRepository) DealCountByStage(ctx context.Context, stage int, period domain.Period) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*) AS count").
		From(dealsTable).
		Where(squirrel.Eq{"d.stage": stage}).
		Where(squirrel.GtOrEq{"d.closed_at": period.Start}).
		Where(squirrel.LtOrEq{"d.closed_at": period.End}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanInt(ctx, query, args)
}

// AvgWonDealSize calcula o valor médio das negociações ganhas no período
func (r *analyticsRepository) AvgWonDealSize(ctx context.Context, period domain.Period) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(AVG(amount), 0) AS avg_size").
		From(dealsTable).
		Where(squirrel.Eq{"d.stage": domain.StageWon}).
		Where(squirrel.GtOrEq{"d.closed_at": period.Start}).
		Where(squirrel.LtOrEq{"d.closed_at": period.End}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanFloat(ctx, query, args)
}

// AvgSalesCycleDays calcula a duração média, em dias, entre a criação e o
// fechamento das negociações fechadas no período, independente do estágio
func (r *analyticsRepository) AvgSalesCycleDays(ctx context.Context, period domain.Period) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(AVG(EXTRACT(EPOCH FROM (closed_at::timestamp - created_at)) / 86400), 0) AS avg_days").
		From(dealsTable).
		Where(squirrel.GtOrEq{"d.closed_at": period.Start}).
		Where(squirrel.LtOrEq{"d.closed_at": period.End}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanFloat(ctx, query, args)
}

// PipelineValue soma o valor das negociações ainda em andamento na data de
// corte: criadas até a data e sem fechamento, ou fechadas depois dela
func (r *analyticsRepository) PipelineValue(ctx context.Context, asOf string) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(amount), 0) AS pipeline_value").
		From(dealsTable).
		Where(squirrel.LtOrEq{"d.created_at": asOf}).
		Where(squirrel.Or{
			squirrel.Eq{"d.closed_at": nil},
			squirrel.Gt{"d.closed_at": asOf},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanFloat(ctx, query, args)
}

// StuckDealsBySegment retorna o segmento com mais negociações abertas há
// mais de olderThanDays dias. Retorna nil quando não há negociações paradas
func (r *analyticsRepository) StuckDealsBySegment(ctx context.Context, olderThanDays int) (*domain.SegmentDealCount, error) {
	query, args, err := squirrel.
		Select("COUNT(*)::int AS count", "a.segment").
		From(dealsTable).
		InnerJoin("accounts a ON a.account_id = d.account_id").
		Where(squirrel.Eq{"d.closed_at": nil}).
		Where(squirrel.Expr("d.created_at < NOW() - make_interval(days => ?)", olderThanDays)).
		GroupBy("a.segment").
		OrderBy("count DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)

	result := &domain.SegmentDealCount{}
	if err := row.Scan(&result.Count, &result.Segment); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear negociações paradas: %w", err)
	}

	return result, nil
}

// LowestWinRateRep retorna o vendedor com a menor taxa de conversão entre
// os que têm ao menos minDecidedDeals negociações decididas (ganhas ou
// perdidas). Vendedores abaixo da amostra mínima são excluídos.
// Retorna nil quando nenhum vendedor atinge a amostra
func (r *analyticsRepository) LowestWinRateRep(ctx context.Context, minDecidedDeals int) (*domain.RepWinRate, error) {
	query, args, err := squirrel.
		Select(
			"r.name",
			fmt.Sprintf(
				"CAST(COUNT(CASE WHEN d.stage = %d THEN 1 END) AS FLOAT) / NULLIF(COUNT(CASE WHEN d.stage IN (%d, %d) THEN 1 END), 0) * 100 AS win_rate",
				domain.StageWon, domain.StageWon, domain.StageLost,
			),
		).
		From(repsTable).
		Join("deals d ON r.rep_id = d.rep_id").
		GroupBy("r.name").
		Having(
			fmt.Sprintf("COUNT(CASE WHEN d.stage IN (%d, %d) THEN 1 END) >= ?", domain.StageWon, domain.StageLost),
			minDecidedDeals,
		).
		OrderBy("win_rate ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)

	result := &domain.RepWinRate{}
	if err := row.Scan(&result.Name, &result.WinRate); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear taxa de conversão por vendedor: %w", err)
	}

	return result, nil
}

// InactiveAccountCount conta as contas cuja atividade mais recente
// (através das suas negociações) é mais antiga que inactiveDays dias.
// Contas sem nenhuma negociação ou sem nenhuma atividade também contam
// como inativas: MAX(act.timestamp) é NULL para ambas
func (r *analyticsRepository) InactiveAccountCount(ctx context.Context, inactiveDays int) (int, error) {
	inactive := squirrel.
		Select("a.account_id").
		From(accountsTable).
		LeftJoin("deals d ON a.account_id = d.account_id").
		LeftJoin("activities act ON d.deal_id = act.deal_id").
		GroupBy("a.account_id").
		Having("MAX(act.timestamp) < NOW() - make_interval(days => ?) OR MAX(act.timestamp) IS NULL", inactiveDays)

	query, args, err := squirrel.
		Select("COUNT(*)::int AS count").
		FromSelect(inactive, "inactive_accounts").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanInt(ctx, query, args)
}

// LateStageInactiveDealCount conta as negociações abertas em estágio
// avançado sem atividade nos últimos inactiveDays dias (ou sem nenhuma)
func (r *analyticsRepository) LateStageInactiveDealCount(ctx context.Context, inactiveDays int) (int, error) {
	inactive := squirrel.
		Select("d.deal_id").
		From(dealsTable).
		LeftJoin("activities act ON d.deal_id = act.deal_id").
		Where(squirrel.Eq{"d.stage": domain.LateStages}).
		Where(squirrel.Eq{"d.closed_at": nil}).
		GroupBy("d.deal_id").
		Having("MAX(act.timestamp) < NOW() - make_interval(days => ?) OR MAX(act.timestamp) IS NULL", inactiveDays)

	query, args, err := squirrel.
		Select("COUNT(*)::int AS count").
		FromSelect(inactive, "inactive_late_stage").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanInt(ctx, query, args)
}

// MonthlyWonRevenue agrupa a receita das negociações ganhas por mês de
// fechamento nos últimos trailingMonths meses, em ordem cronológica
func (r *analyticsRepository) MonthlyWonRevenue(ctx context.Context, trailingMonths int) ([]domain.TrendPoint, error) {
	query, args, err := squirrel.
		Select(
			"to_char(closed_at, 'YYYY-MM') AS month",
			"COALESCE(SUM(amount), 0) AS revenue",
		).
		From(dealsTable).
		Where(squirrel.Eq{"d.stage": domain.StageWon}).
		Where(squirrel.Expr("d.closed_at >= NOW() - make_interval(months => ?)", trailingMonths)).
		GroupBy("to_char(closed_at, 'YYYY-MM')").
		OrderBy("month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	points := make([]domain.TrendPoint, 0)
	for rows.Next() {
		var point domain.TrendPoint
		if err := rows.Scan(&point.Month, &point.Revenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear receita mensal: %w", err)
		}
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

func (r *analyticsRepository) scanFloat(ctx context.Context, query string, args []interface{}) (float64, error) {
	var value float64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}
	return value, nil
}

func (r *analyticsRepository) scanInt(ctx context.Context, query string, args []interface{}) (int, error) {
	var value int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}
	return value, nil
}
