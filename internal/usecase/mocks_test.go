package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/growthx-admin/internal/entity"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByTelegramID(ctx context.Context, telegramID string) (*entity.Lead, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, telegramID, status string) error {
	args := m.Called(ctx, telegramID, status)
	return args.Error(0)
}

func (m *MockLeadRepository) Stats(ctx context.Context) (*entity.LeadStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LeadStats), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByTelegramID(ctx context.Context, telegramID string) ([]*entity.Payment, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindLastPending(ctx context.Context, telegramID string) (*entity.Payment, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Confirm(ctx context.Context, paymentID string, at time.Time) error {
	args := m.Called(ctx, paymentID, at)
	return args.Error(0)
}

func (m *MockPaymentRepository) RevenueStats(ctx context.Context) (*entity.RevenueStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RevenueStats), args.Error(1)
}

func (m *MockPaymentRepository) CountConfirmedByTelegramID(ctx context.Context, telegramID string) (int, error) {
	args := m.Called(ctx, telegramID)
	return args.Int(0), args.Error(1)
}

type MockFollowupRepository struct {
	mock.Mock
}

func (m *MockFollowupRepository) Create(ctx context.Context, f *entity.Followup) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFollowupRepository) FindPending(ctx context.Context) ([]*entity.Followup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Followup), args.Error(1)
}

func (m *MockFollowupRepository) FindByTelegramID(ctx context.Context, telegramID string) ([]*entity.Followup, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Followup), args.Error(1)
}

func (m *MockFollowupRepository) MarkSent(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockFollowupRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockSignalRepository struct {
	mock.Mock
}

func (m *MockSignalRepository) Create(ctx context.Context, s *entity.Signal) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSignalRepository) FindAll(ctx context.Context) ([]*entity.Signal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Signal), args.Error(1)
}

func (m *MockSignalRepository) FindByTelegramID(ctx context.Context, telegramID string) ([]*entity.Signal, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Signal), args.Error(1)
}

type MockChatSender struct {
	mock.Mock
}

func (m *MockChatSender) SendMessage(ctx context.Context, chatID, text string) error {
	args := m.Called(ctx, chatID, text)
	return args.Error(0)
}

func (m *MockChatSender) SendFollowup(ctx context.Context, chatID, name string, level entity.FollowupLevel) error {
	args := m.Called(ctx, chatID, name, level)
	return args.Error(0)
}

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockEmailSender) SendFollowup(to, name string, level entity.FollowupLevel) error {
	args := m.Called(to, name, level)
	return args.Error(0)
}

type MockBotGateway struct {
	mock.Mock
}

func (m *MockBotGateway) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockBotGateway) ActivateSubscription(ctx context.Context, telegramID, tier, plan string) error {
	args := m.Called(ctx, telegramID, tier, plan)
	return args.Error(0)
}

type MockSignalDeduper struct {
	mock.Mock
}

func (m *MockSignalDeduper) SeenRecently(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
