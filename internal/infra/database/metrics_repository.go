package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/xavierca1/growthx-admin/internal/entity"
)

type MetricsRepository struct {
	DB *sql.DB
}

func NewMetricsRepository(db *sql.DB) *MetricsRepository {
	return &MetricsRepository{DB: db}
}

func (r *MetricsRepository) Upsert(ctx context.Context, m *entity.BacktestMetrics) error {
	if r.DB == nil {
		log.Println("⚠️ [MetricsRepo] No database configured, dropping metrics")
		return nil
	}

	query := `
		INSERT INTO backtesting_metrics (id, symbol, initial_capital, net_profit, net_profit_percent,
		                                 total_trades, win_rate, avg_pnl, profit_factor, max_drawdown,
		                                 monthly_return_percent, quarterly_return_percent,
		                                 annual_return_percent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		ON CONFLICT (symbol)
		DO UPDATE SET
			initial_capital          = EXCLUDED.initial_capital,
			net_profit               = EXCLUDED.net_profit,
			net_profit_percent       = EXCLUDED.net_profit_percent,
			total_trades             = EXCLUDED.total_trades,
			win_rate                 = EXCLUDED.win_rate,
			avg_pnl                  = EXCLUDED.avg_pnl,
			profit_factor            = EXCLUDED.profit_factor,
			max_drawdown             = EXCLUDED.max_drawdown,
			monthly_return_percent   = EXCLUDED.monthly_return_percent,
			quarterly_return_percent = EXCLUDED.quarterly_return_percent,
			annual_return_percent    = EXCLUDED.annual_return_percent
	`

	_, err := r.DB.ExecContext(ctx, query,
		m.ID,
		m.Symbol,
		m.InitialCapital,
		m.NetProfit,
		m.NetProfitPercent,
		m.TotalTrades,
		m.WinRate,
		m.AvgPnL,
		m.ProfitFactor,
		m.MaxDrawdown,
		m.MonthlyReturnPercent,
		m.QuarterlyReturnPercent,
		m.AnnualReturnPercent,
	)
	return err
}

func (r *MetricsRepository) FindBySymbol(ctx context.Context, symbol string) (*entity.BacktestMetrics, error) {
	if r.DB == nil {
		return nil, nil
	}

	query := `
		SELECT id, symbol, initial_capital, net_profit, net_profit_percent, total_trades,
		       win_rate, avg_pnl, profit_factor, max_drawdown, monthly_return_percent,
		       quarterly_return_percent, annual_return_percent, created_at
		FROM backtesting_metrics
		WHERE symbol = $1
	`

	var m entity.BacktestMetrics
	err := r.DB.QueryRowContext(ctx, query, symbol).Scan(
		&m.ID,
		&m.Symbol,
		&m.InitialCapital,
		&m.NetProfit,
		&m.NetProfitPercent,
		&m.TotalTrades,
		&m.WinRate,
		&m.AvgPnL,
		&m.ProfitFactor,
		&m.MaxDrawdown,
		&m.MonthlyReturnPercent,
		&m.QuarterlyReturnPercent,
		&m.AnnualReturnPercent,
		&m.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
