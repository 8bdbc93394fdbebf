package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/xavierca1/growthx-admin/internal/entity"
)

type TradeRepository struct {
	DB *sql.DB
}

func NewTradeRepository(db *sql.DB) *TradeRepository {
	return &TradeRepository{DB: db}
}

// Upsert is keyed by the feed's trade_id: the external strategy sends
// the same trade again when it closes.
func (r *TradeRepository) Upsert(ctx context.Context, t *entity.LiveTrade) error {
	if r.DB == nil {
		log.Println("⚠️ [TradeRepo] No database configured, dropping trade")
		return nil
	}

	query := `
		INSERT INTO live_trades (id, trade_id, type, entry_price, exit_price, quantity,
		                         entry_time, exit_time, pnl, pnl_percent, status, signal,
		                         created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		ON CONFLICT (trade_id)
		DO UPDATE SET
			exit_price  = EXCLUDED.exit_price,
			exit_time   = EXCLUDED.exit_time,
			pnl         = EXCLUDED.pnl,
			pnl_percent = EXCLUDED.pnl_percent,
			status      = EXCLUDED.status,
			updated_at  = NOW()
	`

	_, err := r.DB.ExecContext(ctx, query,
		t.ID,
		t.TradeID,
		t.Type,
		t.EntryPrice,
		t.ExitPrice,
		t.Quantity,
		t.EntryTime,
		t.ExitTime,
		t.PnL,
		t.PnLPercent,
		t.Status,
		t.Signal,
	)
	return err
}

const tradeColumns = `
	id, trade_id, type, entry_price, COALESCE(exit_price, ''), quantity,
	entry_time, exit_time, COALESCE(pnl, ''), COALESCE(pnl_percent, ''),
	status, COALESCE(signal, ''), created_at, updated_at
`

func (r *TradeRepository) FindAll(ctx context.Context) ([]*entity.LiveTrade, error) {
	if r.DB == nil {
		return []*entity.LiveTrade{}, nil
	}

	query := `SELECT ` + tradeColumns + ` FROM live_trades ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTrades(rows)
}

func (r *TradeRepository) FindOpen(ctx context.Context) ([]*entity.LiveTrade, error) {
	if r.DB == nil {
		return []*entity.LiveTrade{}, nil
	}

	query := `SELECT ` + tradeColumns + ` FROM live_trades WHERE status = 'OPEN' ORDER BY entry_time DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTrades(rows)
}

func scanTrades(rows *sql.Rows) ([]*entity.LiveTrade, error) {
	var trades []*entity.LiveTrade
	for rows.Next() {
		var t entity.LiveTrade
		if err := rows.Scan(
			&t.ID,
			&t.TradeID,
			&t.Type,
			&t.EntryPrice,
			&t.ExitPrice,
			&t.Quantity,
			&t.EntryTime,
			&t.ExitTime,
			&t.PnL,
			&t.PnLPercent,
			&t.Status,
			&t.Signal,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		trades = append(trades, &t)
	}
	return trades, rows.Err()
}
