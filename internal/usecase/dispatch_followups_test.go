package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/growthx-admin/internal/entity"
	"github.com/xavierca1/growthx-admin/internal/usecase"
)

func pendingFollowup(id, telegramID string, createdAgo time.Duration, now time.Time) *entity.Followup {
	return &entity.Followup{
		ID:         id,
		TelegramID: telegramID,
		Plan:       "monthly",
		Status:     entity.FollowupStatusPending,
		CreatedAt:  now.Add(-createdAgo),
	}
}

// Five due followups, two delivery failures: the report counts partial
// success and only the delivered three advance.
func TestDispatchPartialSuccess(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	followupRepo := new(MockFollowupRepository)
	leadRepo := new(MockLeadRepository)
	chat := new(MockChatSender)

	var pending []*entity.Followup
	for _, id := range []string{"f1", "f2", "f3", "f4", "f5"} {
		pending = append(pending, pendingFollowup(id, "u-"+id, 25*time.Hour, now))
	}
	followupRepo.On("FindPending", mock.Anything).Return(pending, nil)

	for _, f := range pending {
		leadRepo.On("FindByTelegramID", mock.Anything, f.TelegramID).Return(
			&entity.Lead{TelegramID: f.TelegramID, FirstName: "T", Status: entity.LeadStatusLead}, nil,
		)
	}

	chat.On("SendFollowup", mock.Anything, "u-f1", "T", entity.Level1).Return(nil)
	chat.On("SendFollowup", mock.Anything, "u-f2", "T", entity.Level1).Return(errors.New("blocked by user"))
	chat.On("SendFollowup", mock.Anything, "u-f3", "T", entity.Level1).Return(nil)
	chat.On("SendFollowup", mock.Anything, "u-f4", "T", entity.Level1).Return(errors.New("timeout"))
	chat.On("SendFollowup", mock.Anything, "u-f5", "T", entity.Level1).Return(nil)

	followupRepo.On("MarkSent", mock.Anything, "f1", now).Return(nil)
	followupRepo.On("MarkSent", mock.Anything, "f3", now).Return(nil)
	followupRepo.On("MarkSent", mock.Anything, "f5", now).Return(nil)

	uc := usecase.NewDispatchFollowupsUseCase(followupRepo, leadRepo, chat, nil)
	report, err := uc.Execute(context.Background(), now, usecase.ChannelTelegram)

	assert.NoError(t, err)
	assert.Equal(t, 3, report.Sent)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, 5, report.Total)

	// Failed sends must not advance: exactly three MarkSent calls.
	followupRepo.AssertNumberOfCalls(t, "MarkSent", 3)
	followupRepo.AssertNotCalled(t, "MarkSent", mock.Anything, "f2", mock.Anything)
	followupRepo.AssertNotCalled(t, "MarkSent", mock.Anything, "f4", mock.Anything)
}

func TestDispatchEmailChannelDisabled(t *testing.T) {
	email := new(MockEmailSender)
	email.On("Enabled").Return(false)

	uc := usecase.NewDispatchFollowupsUseCase(new(MockFollowupRepository), new(MockLeadRepository), new(MockChatSender), email)
	_, err := uc.Execute(context.Background(), time.Now(), usecase.ChannelEmail)

	assert.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
}

func TestDispatchConvertsPaidLeadInsteadOfSending(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	followupRepo := new(MockFollowupRepository)
	leadRepo := new(MockLeadRepository)
	chat := new(MockChatSender)

	followupRepo.On("FindPending", mock.Anything).Return(
		[]*entity.Followup{pendingFollowup("f1", "u1", 25*time.Hour, now)}, nil,
	)
	leadRepo.On("FindByTelegramID", mock.Anything, "u1").Return(
		&entity.Lead{TelegramID: "u1", FirstName: "Ana", Status: entity.LeadStatusPaid}, nil,
	)
	followupRepo.On("UpdateStatus", mock.Anything, "f1", entity.FollowupStatusConverted).Return(nil)

	uc := usecase.NewDispatchFollowupsUseCase(followupRepo, leadRepo, chat, nil)
	report, err := uc.Execute(context.Background(), now, usecase.ChannelTelegram)

	assert.NoError(t, err)
	assert.Equal(t, 0, report.Sent)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 1, report.Total)

	chat.AssertNotCalled(t, "SendFollowup", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	followupRepo.AssertCalled(t, "UpdateStatus", mock.Anything, "f1", entity.FollowupStatusConverted)
}

func TestDispatchSkipsMissingLead(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	followupRepo := new(MockFollowupRepository)
	leadRepo := new(MockLeadRepository)
	chat := new(MockChatSender)

	followupRepo.On("FindPending", mock.Anything).Return(
		[]*entity.Followup{pendingFollowup("f1", "ghost", 25*time.Hour, now)}, nil,
	)
	leadRepo.On("FindByTelegramID", mock.Anything, "ghost").Return(nil, nil)

	uc := usecase.NewDispatchFollowupsUseCase(followupRepo, leadRepo, chat, nil)
	report, err := uc.Execute(context.Background(), now, usecase.ChannelTelegram)

	assert.NoError(t, err)
	assert.Equal(t, 0, report.Sent)
	assert.Equal(t, 0, report.Failed)
	chat.AssertNotCalled(t, "SendFollowup", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchEmailSkipsLeadWithoutAddress(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	followupRepo := new(MockFollowupRepository)
	leadRepo := new(MockLeadRepository)
	email := new(MockEmailSender)

	email.On("Enabled").Return(true)
	followupRepo.On("FindPending", mock.Anything).Return(
		[]*entity.Followup{
			pendingFollowup("f1", "u1", 25*time.Hour, now),
			pendingFollowup("f2", "u2", 25*time.Hour, now),
		}, nil,
	)
	leadRepo.On("FindByTelegramID", mock.Anything, "u1").Return(
		&entity.Lead{TelegramID: "u1", FirstName: "Ana", Email: "", Status: entity.LeadStatusLead}, nil,
	)
	leadRepo.On("FindByTelegramID", mock.Anything, "u2").Return(
		&entity.Lead{TelegramID: "u2", FirstName: "Bo", Email: "bo@example.com", Status: entity.LeadStatusLead}, nil,
	)
	email.On("SendFollowup", "bo@example.com", "Bo", entity.Level1).Return(nil)
	followupRepo.On("MarkSent", mock.Anything, "f2", now).Return(nil)

	uc := usecase.NewDispatchFollowupsUseCase(followupRepo, leadRepo, new(MockChatSender), email)
	report, err := uc.Execute(context.Background(), now, usecase.ChannelEmail)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 2, report.Total)

	// The skipped record stays eligible for the next cycle.
	followupRepo.AssertNotCalled(t, "MarkSent", mock.Anything, "f1", mock.Anything)
}

func TestDispatchFailedMarkSentCountsAsFailure(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	followupRepo := new(MockFollowupRepository)
	leadRepo := new(MockLeadRepository)
	chat := new(MockChatSender)

	followupRepo.On("FindPending", mock.Anything).Return(
		[]*entity.Followup{pendingFollowup("f1", "u1", 25*time.Hour, now)}, nil,
	)
	leadRepo.On("FindByTelegramID", mock.Anything, "u1").Return(
		&entity.Lead{TelegramID: "u1", FirstName: "Ana", Status: entity.LeadStatusLead}, nil,
	)
	chat.On("SendFollowup", mock.Anything, "u1", "Ana", entity.Level1).Return(nil)
	followupRepo.On("MarkSent", mock.Anything, "f1", now).Return(errors.New("db down"))

	uc := usecase.NewDispatchFollowupsUseCase(followupRepo, leadRepo, chat, nil)
	report, err := uc.Execute(context.Background(), now, usecase.ChannelTelegram)

	assert.NoError(t, err)
	assert.Equal(t, 0, report.Sent)
	assert.Equal(t, 1, report.Failed)
}
