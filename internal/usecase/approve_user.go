package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xavierca1/growthx-admin/internal/entity"
)

// ApproveUserUseCase confirms a lead's pending payment and activates the
// subscription in the external bot. Confirm-then-notify: the local state
// commits first and a failed activation never rolls it back — the output
// carries both outcomes so the operator can reconcile by hand.
type ApproveUserUseCase struct {
	Payments entity.PaymentRepositoryInterface
	Leads    entity.LeadRepositoryInterface
	Bot      BotGatewayInterface
}

func NewApproveUserUseCase(
	payments entity.PaymentRepositoryInterface,
	leads entity.LeadRepositoryInterface,
	bot BotGatewayInterface,
) *ApproveUserUseCase {
	return &ApproveUserUseCase{Payments: payments, Leads: leads, Bot: bot}
}

func (uc *ApproveUserUseCase) Execute(ctx context.Context, input ApproveUserInput) (*ApproveUserOutput, error) {
	if errs := ValidateApproveUserInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	log.Printf("🔄 [Approve] Confirming payment for telegram_id=%s (%s/%s)", input.TelegramID, input.Tier, input.Plan)

	// 1. Most recent pending payment. A lead without one can still be
	// approved; only the payment step is skipped.
	payment, err := uc.Payments.FindLastPending(ctx, input.TelegramID)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to look up pending payment: " + err.Error()}
	}

	now := time.Now()
	if payment != nil {
		if err := uc.Payments.Confirm(ctx, payment.ID, now); err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to confirm payment: " + err.Error()}
		}
	}

	// 2. Flip the lead to paid. Confirming twice leaves it paid.
	if err := uc.Leads.UpdateStatus(ctx, input.TelegramID, entity.LeadStatusPaid); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to update lead status: " + err.Error()}
	}

	// 3. Best-effort entitlement activation. Local state is already
	// committed at this point.
	if uc.Bot == nil || !uc.Bot.Configured() {
		return &ApproveUserOutput{
			Success: true,
			Message: "Payment confirmed. Activate manually in bot with /activate command.",
		}, nil
	}

	if err := uc.Bot.ActivateSubscription(ctx, input.TelegramID, input.Tier, input.Plan); err != nil {
		log.Printf("⚠️ [Approve] Payment confirmed but bot activation failed for %s: %v", input.TelegramID, err)
		return &ApproveUserOutput{
			Success: false,
			Error:   fmt.Sprintf("Payment confirmed in dashboard, but bot activation failed: %v", err),
		}, nil
	}

	log.Printf("🚀 [Approve] User %s approved and activated (%s/%s)", input.TelegramID, input.Tier, input.Plan)
	return &ApproveUserOutput{
		Success: true,
		Message: "User approved and subscription activated in bot",
	}, nil
}
