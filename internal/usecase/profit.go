package usecase

import (
	"math"
)

// ProfitProjection is one row of the marketing calculator: projected
// account value after Month months at the backtested monthly return.
type ProfitProjection struct {
	Month  int     `json:"month"`
	Profit float64 `json:"profit"`
	Total  float64 `json:"total"`
}

const maxProjectionMonths = 120

// ProjectProfit compounds the principal monthly: value(m) = P × (1+r)^m.
// rate is a fraction (0.1299 for 12.99%). Presentation-only arithmetic;
// nothing here is persisted.
func ProjectProfit(principal, monthlyRate float64, months int) ([]ProfitProjection, error) {
	if principal < 0 || math.IsNaN(principal) || math.IsInf(principal, 0) {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "principal must be a non-negative number"}
	}
	if math.IsNaN(monthlyRate) || math.IsInf(monthlyRate, 0) {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "rate must be a finite number"}
	}
	if months <= 0 || months > maxProjectionMonths {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "months must be between 1 and 120"}
	}

	projections := make([]ProfitProjection, 0, months)
	for m := 1; m <= months; m++ {
		total := principal * math.Pow(1+monthlyRate, float64(m))
		projections = append(projections, ProfitProjection{
			Month:  m,
			Profit: total - principal,
			Total:  total,
		})
	}
	return projections, nil
}
