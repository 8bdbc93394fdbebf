package usecase

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	validTiers   = map[string]bool{"basic": true, "pro": true, "vip": true, "premium": true}
	validPlans   = map[string]bool{"monthly": true, "quarterly": true, "yearly": true, "lifetime": true}
	validActions = map[string]bool{"buy": true, "sell": true, "close": true}
)

func ValidateApproveUserInput(input ApproveUserInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.TelegramID) == "" {
		errs = append(errs, ValidationError{"telegramId", "is required"})
	}
	if !validTiers[input.Tier] {
		errs = append(errs, ValidationError{"tier", "must be basic, pro, vip or premium"})
	}
	if !validPlans[input.Plan] {
		errs = append(errs, ValidationError{"plan", "must be monthly, quarterly, yearly or lifetime"})
	}

	return errs
}

func ValidateTradingViewSignal(input TradingViewSignal) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Symbol) == "" {
		errs = append(errs, ValidationError{"symbol", "is required"})
	}
	if !validActions[input.Action] {
		errs = append(errs, ValidationError{"action", "must be buy, sell or close"})
	}

	return errs
}

func ValidateRecordPaymentInput(input RecordPaymentInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.TelegramID) == "" {
		errs = append(errs, ValidationError{"telegramId", "is required"})
	}
	if strings.TrimSpace(input.Plan) == "" {
		errs = append(errs, ValidationError{"plan", "is required"})
	}
	if input.Amount <= 0 {
		errs = append(errs, ValidationError{"amount", "must be positive"})
	}

	return errs
}

func validationDomainError(errs []ValidationError) *DomainError {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: "validation failed: " + strings.Join(msgs, ", "),
	}
}
