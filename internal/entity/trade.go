package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	TradeStatusOpen   = "OPEN"
	TradeStatusClosed = "CLOSED"
)

// LiveTrade rows are supplied by the external strategy feed. The
// dashboard only reads them; there is no execution here.
type LiveTrade struct {
	ID         string     `json:"id"`
	TradeID    string     `json:"trade_id"`
	Type       string     `json:"type"` // LONG, SHORT
	EntryPrice string     `json:"entry_price"`
	ExitPrice  string     `json:"exit_price,omitempty"`
	Quantity   string     `json:"quantity"`
	EntryTime  time.Time  `json:"entry_time"`
	ExitTime   *time.Time `json:"exit_time,omitempty"`
	PnL        string     `json:"pnl,omitempty"`
	PnLPercent string     `json:"pnl_percent,omitempty"`
	Status     string     `json:"status"` // OPEN, CLOSED
	Signal     string     `json:"signal,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewLiveTrade(tradeID, tradeType, entryPrice, quantity string, entryTime time.Time) *LiveTrade {
	return &LiveTrade{
		ID:         uuid.New().String(),
		TradeID:    tradeID,
		Type:       tradeType,
		EntryPrice: entryPrice,
		Quantity:   quantity,
		EntryTime:  entryTime,
		Status:     TradeStatusOpen,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

// BacktestMetrics is the marketing stat block shown on the public
// dashboard, keyed by symbol.
type BacktestMetrics struct {
	ID                     string    `json:"id"`
	Symbol                 string    `json:"symbol"`
	InitialCapital         int       `json:"initial_capital"`
	NetProfit              int       `json:"net_profit"`
	NetProfitPercent       string    `json:"net_profit_percent"`
	TotalTrades            int       `json:"total_trades"`
	WinRate                string    `json:"win_rate"`
	AvgPnL                 string    `json:"avg_pnl"`
	ProfitFactor           string    `json:"profit_factor"`
	MaxDrawdown            string    `json:"max_drawdown"`
	MonthlyReturnPercent   string    `json:"monthly_return_percent"`
	QuarterlyReturnPercent string    `json:"quarterly_return_percent"`
	AnnualReturnPercent    string    `json:"annual_return_percent"`
	CreatedAt              time.Time `json:"created_at"`
}

type TradeRepositoryInterface interface {
	Upsert(ctx context.Context, t *LiveTrade) error
	FindAll(ctx context.Context) ([]*LiveTrade, error)
	FindOpen(ctx context.Context) ([]*LiveTrade, error)
}

type MetricsRepositoryInterface interface {
	Upsert(ctx context.Context, m *BacktestMetrics) error
	FindBySymbol(ctx context.Context, symbol string) (*BacktestMetrics, error)
}
