package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusConfirmed = "confirmed"
	PaymentStatusFailed    = "failed"
)

type Payment struct {
	ID          string     `json:"id"`
	TelegramID  string     `json:"telegram_id"`
	Plan        string     `json:"plan"`   // monthly, quarterly, yearly, lifetime
	Amount      float64    `json:"amount"` // dollars, trust-based
	Method      string     `json:"method"` // crypto, card, bank
	Status      string     `json:"status"` // pending, confirmed, failed
	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
}

// NewPayment always creates a fresh pending row. Repeated attempts from
// the same lead are never merged.
func NewPayment(telegramID, plan string, amount float64, method string) (*Payment, error) {
	p := &Payment{
		ID:         uuid.New().String(),
		TelegramID: telegramID,
		Plan:       plan,
		Amount:     amount,
		Method:     method,
		Status:     PaymentStatusPending,
		CreatedAt:  time.Now(),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Payment) Validate() error {
	if p.TelegramID == "" {
		return errors.New("telegram_id is required")
	}
	if p.Plan == "" {
		return errors.New("plan is required")
	}
	if p.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}

type RevenueStats struct {
	Confirmed float64 `json:"confirmed"`
	Pending   float64 `json:"pending"`
	Total     float64 `json:"total"`
}

type PaymentRepositoryInterface interface {
	Create(ctx context.Context, p *Payment) error
	FindAll(ctx context.Context) ([]*Payment, error)
	FindByTelegramID(ctx context.Context, telegramID string) ([]*Payment, error)
	// FindLastPending returns the most recently created pending payment
	// of the lead, or nil when there is none.
	FindLastPending(ctx context.Context, telegramID string) (*Payment, error)
	// Confirm flips the payment to confirmed. confirmed_at is only set on
	// the first confirmation and never regresses afterwards.
	Confirm(ctx context.Context, paymentID string, at time.Time) error
	RevenueStats(ctx context.Context) (*RevenueStats, error)
	CountConfirmedByTelegramID(ctx context.Context, telegramID string) (int, error)
}
