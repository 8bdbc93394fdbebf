package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Signal is the audit row recorded for every message delivered to a
// paying user, whether from the TradingView webhook or a manual
// admin broadcast.
type Signal struct {
	ID         string    `json:"id"`
	TelegramID string    `json:"telegram_id"`
	SignalText string    `json:"signal_text"`
	EntryPrice string    `json:"entry_price,omitempty"`
	ExitPrice  string    `json:"exit_price,omitempty"`
	StopLoss   string    `json:"stop_loss,omitempty"`
	TakeProfit string    `json:"take_profit,omitempty"`
	Type       string    `json:"type,omitempty"` // buy, sell, close
	CreatedAt  time.Time `json:"created_at"`
}

func NewSignal(telegramID, text string) *Signal {
	return &Signal{
		ID:         uuid.New().String(),
		TelegramID: telegramID,
		SignalText: text,
		CreatedAt:  time.Now(),
	}
}

type SignalRepositoryInterface interface {
	Create(ctx context.Context, s *Signal) error
	FindAll(ctx context.Context) ([]*Signal, error)
	FindByTelegramID(ctx context.Context, telegramID string) ([]*Signal, error)
}
