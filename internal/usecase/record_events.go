package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/growthx-admin/internal/entity"
)

// RecordLeadUseCase upserts a lead on first (or repeated) bot contact.
type RecordLeadUseCase struct {
	Leads entity.LeadRepositoryInterface
}

func NewRecordLeadUseCase(leads entity.LeadRepositoryInterface) *RecordLeadUseCase {
	return &RecordLeadUseCase{Leads: leads}
}

func (uc *RecordLeadUseCase) Execute(ctx context.Context, input RecordLeadInput) error {
	lead := &entity.Lead{
		ID:         uuid.New().String(),
		TelegramID: input.TelegramID,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Username:   input.Username,
		Email:      input.Email,
		Status:     entity.LeadStatusLead,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := lead.Validate(); err != nil {
		return &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Leads.Upsert(ctx, lead); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to upsert lead: " + err.Error()}
	}
	return nil
}

// RecordPaymentUseCase always inserts a fresh pending payment row.
// Retries from the same user are never merged.
type RecordPaymentUseCase struct {
	Payments entity.PaymentRepositoryInterface
}

func NewRecordPaymentUseCase(payments entity.PaymentRepositoryInterface) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{Payments: payments}
}

func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) error {
	if errs := ValidateRecordPaymentInput(input); len(errs) > 0 {
		return validationDomainError(errs)
	}

	payment, err := entity.NewPayment(input.TelegramID, input.Plan, input.Amount, input.Method)
	if err != nil {
		return &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Payments.Create(ctx, payment); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to record payment: " + err.Error()}
	}
	return nil
}

// RecordFollowupUseCase opens an escalation campaign for a lead that
// walked away from checkout. The reason is kept for the dashboard.
type RecordFollowupUseCase struct {
	Followups entity.FollowupRepositoryInterface
}

func NewRecordFollowupUseCase(followups entity.FollowupRepositoryInterface) *RecordFollowupUseCase {
	return &RecordFollowupUseCase{Followups: followups}
}

func (uc *RecordFollowupUseCase) Execute(ctx context.Context, input RecordFollowupInput) error {
	followup, err := entity.NewFollowup(input.TelegramID, input.Plan, input.Reason)
	if err != nil {
		return &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Followups.Create(ctx, followup); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to create followup: " + err.Error()}
	}
	return nil
}
