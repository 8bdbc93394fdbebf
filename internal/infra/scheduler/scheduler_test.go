package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/growthx-admin/internal/entity"
	"github.com/xavierca1/growthx-admin/internal/usecase"
)

// blockingFollowupRepo parks FindPending until released, simulating a
// cycle that outlives the next tick.
type blockingFollowupRepo struct {
	started chan struct{}
	release chan struct{}
	calls   int
}

func (r *blockingFollowupRepo) Create(ctx context.Context, f *entity.Followup) error { return nil }
func (r *blockingFollowupRepo) FindPending(ctx context.Context) ([]*entity.Followup, error) {
	r.calls++
	r.started <- struct{}{}
	<-r.release
	return nil, nil
}
func (r *blockingFollowupRepo) FindByTelegramID(ctx context.Context, telegramID string) ([]*entity.Followup, error) {
	return nil, nil
}
func (r *blockingFollowupRepo) MarkSent(ctx context.Context, id string, at time.Time) error {
	return nil
}
func (r *blockingFollowupRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return nil
}

type noopLeadRepo struct{}

func (noopLeadRepo) Upsert(ctx context.Context, lead *entity.Lead) error { return nil }
func (noopLeadRepo) FindByTelegramID(ctx context.Context, telegramID string) (*entity.Lead, error) {
	return nil, nil
}
func (noopLeadRepo) FindAll(ctx context.Context) ([]*entity.Lead, error) { return nil, nil }
func (noopLeadRepo) UpdateStatus(ctx context.Context, telegramID, status string) error {
	return nil
}
func (noopLeadRepo) Stats(ctx context.Context) (*entity.LeadStats, error) {
	return &entity.LeadStats{}, nil
}

type noopChatSender struct{}

func (noopChatSender) SendMessage(ctx context.Context, chatID, text string) error { return nil }
func (noopChatSender) SendFollowup(ctx context.Context, chatID, name string, level entity.FollowupLevel) error {
	return nil
}

func TestRunOnceSkipsOverlappingCycle(t *testing.T) {
	repo := &blockingFollowupRepo{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	dispatch := usecase.NewDispatchFollowupsUseCase(repo, noopLeadRepo{}, noopChatSender{}, nil)
	s := New(dispatch, time.Hour, usecase.ChannelTelegram)

	done := make(chan struct{})
	go func() {
		s.runOnce(context.Background())
		close(done)
	}()
	<-repo.started // first cycle is now inside the dispatch

	// A tick arriving mid-cycle must return immediately without running
	// a second dispatch.
	s.runOnce(context.Background())
	assert.Equal(t, 1, repo.calls, "overlapping cycle must be skipped, not stacked")

	close(repo.release)
	<-done

	// With the first cycle finished the next tick runs again.
	repo.release = make(chan struct{})
	go func() { <-repo.started; close(repo.release) }()
	s.runOnce(context.Background())
	assert.Equal(t, 2, repo.calls)
}

func TestNewDefaultsInterval(t *testing.T) {
	dispatch := usecase.NewDispatchFollowupsUseCase(nil, nil, nil, nil)

	s := New(dispatch, 0, usecase.ChannelTelegram)
	assert.Equal(t, 6*time.Hour, s.Interval)

	s = New(dispatch, 2*time.Hour, usecase.ChannelEmail)
	assert.Equal(t, 2*time.Hour, s.Interval)
	assert.Equal(t, usecase.ChannelEmail, s.Channel)
}

func TestStopIsIdempotent(t *testing.T) {
	dispatch := usecase.NewDispatchFollowupsUseCase(nil, nil, nil, nil)
	s := New(dispatch, time.Hour, usecase.ChannelTelegram)

	go s.Start(context.Background())
	s.Stop()
	s.Stop() // second call must not panic
}
