package entity

import (
	"context"
	"errors"
	"time"
)

const (
	LeadStatusLead     = "lead"
	LeadStatusPaid     = "paid"
	LeadStatusInactive = "inactive"
)

type Lead struct {
	ID         string    `json:"id"`
	TelegramID string    `json:"telegram_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name,omitempty"`
	Username   string    `json:"username,omitempty"`
	Email      string    `json:"email,omitempty"`
	Status     string    `json:"status"` // lead, paid, inactive
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (l *Lead) Validate() error {
	if l.TelegramID == "" {
		return errors.New("telegram_id is required")
	}
	if l.FirstName == "" {
		return errors.New("first_name is required")
	}
	return nil
}

// DisplayName is the name injected into follow-up templates
func (l *Lead) DisplayName() string {
	if l.FirstName != "" {
		return l.FirstName
	}
	return "Trader"
}

type LeadStats struct {
	TotalLeads int `json:"totalLeads"`
	PaidUsers  int `json:"paidUsers"`
	Inactive   int `json:"inactive"`
}

type LeadRepositoryInterface interface {
	Upsert(ctx context.Context, lead *Lead) error
	FindByTelegramID(ctx context.Context, telegramID string) (*Lead, error)
	FindAll(ctx context.Context) ([]*Lead, error)
	UpdateStatus(ctx context.Context, telegramID, status string) error
	Stats(ctx context.Context) (*LeadStats, error)
}
