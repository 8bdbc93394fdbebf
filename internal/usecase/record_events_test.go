package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/growthx-admin/internal/entity"
	"github.com/xavierca1/growthx-admin/internal/usecase"
)

func TestRecordLeadUpserts(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.TelegramID == "u1" && l.Status == entity.LeadStatusLead && l.ID != ""
	})).Return(nil)

	uc := usecase.NewRecordLeadUseCase(leadRepo)
	err := uc.Execute(context.Background(), usecase.RecordLeadInput{
		TelegramID: "u1",
		FirstName:  "Ana",
		Username:   "ana_trades",
	})

	assert.NoError(t, err)
	leadRepo.AssertExpectations(t)
}

func TestRecordLeadValidation(t *testing.T) {
	uc := usecase.NewRecordLeadUseCase(new(MockLeadRepository))

	err := uc.Execute(context.Background(), usecase.RecordLeadInput{TelegramID: "", FirstName: "Ana"})
	assert.True(t, usecase.IsDomainError(err))

	err = uc.Execute(context.Background(), usecase.RecordLeadInput{TelegramID: "u1", FirstName: ""})
	assert.True(t, usecase.IsDomainError(err))
}

// Repeated payment attempts never merge: each Execute inserts a fresh
// pending row.
func TestRecordPaymentAlwaysCreatesPendingRow(t *testing.T) {
	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Payment) bool {
		return p.Status == entity.PaymentStatusPending && p.ConfirmedAt == nil
	})).Return(nil)

	uc := usecase.NewRecordPaymentUseCase(paymentRepo)
	input := usecase.RecordPaymentInput{TelegramID: "u1", Plan: "monthly", Amount: 100, Method: "crypto"}

	assert.NoError(t, uc.Execute(context.Background(), input))
	assert.NoError(t, uc.Execute(context.Background(), input))

	paymentRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestRecordPaymentValidation(t *testing.T) {
	uc := usecase.NewRecordPaymentUseCase(new(MockPaymentRepository))

	cases := []usecase.RecordPaymentInput{
		{TelegramID: "", Plan: "monthly", Amount: 100},
		{TelegramID: "u1", Plan: "", Amount: 100},
		{TelegramID: "u1", Plan: "monthly", Amount: 0},
		{TelegramID: "u1", Plan: "monthly", Amount: -5},
	}

	for _, input := range cases {
		err := uc.Execute(context.Background(), input)
		assert.True(t, usecase.IsDomainError(err), "input %+v", input)
	}
}

func TestRecordFollowupOpensCampaign(t *testing.T) {
	followupRepo := new(MockFollowupRepository)
	followupRepo.On("Create", mock.Anything, mock.MatchedBy(func(f *entity.Followup) bool {
		return f.TelegramID == "u1" && f.Status == entity.FollowupStatusPending && f.FollowupCount == 0
	})).Return(nil)

	uc := usecase.NewRecordFollowupUseCase(followupRepo)
	err := uc.Execute(context.Background(), usecase.RecordFollowupInput{
		TelegramID: "u1",
		Plan:       "monthly",
		Reason:     "abandoned checkout",
	})

	assert.NoError(t, err)
	followupRepo.AssertExpectations(t)
}
