package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	FollowupStatusPending   = "pending"
	FollowupStatusSent      = "sent"
	FollowupStatusConverted = "converted"
)

// Escalation windows. The first message goes out a day after the
// followup is created; later levels are measured from the last send.
const (
	FirstFollowupDelay  = 24 * time.Hour
	SecondFollowupDelay = 3 * 24 * time.Hour
	ThirdFollowupDelay  = 7 * 24 * time.Hour

	MaxFollowups = 3
)

type Followup struct {
	ID             string     `json:"id"`
	TelegramID     string     `json:"telegram_id"`
	Plan           string     `json:"plan"`
	Reason         string     `json:"reason,omitempty"`
	Status         string     `json:"status"` // pending, sent, converted
	FollowupCount  int        `json:"followup_count"`
	CreatedAt      time.Time  `json:"created_at"`
	LastFollowupAt *time.Time `json:"last_followup_at,omitempty"`
	NextFollowupAt *time.Time `json:"next_followup_at,omitempty"`
}

func NewFollowup(telegramID, plan, reason string) (*Followup, error) {
	f := &Followup{
		ID:         uuid.New().String(),
		TelegramID: telegramID,
		Plan:       plan,
		Reason:     reason,
		Status:     FollowupStatusPending,
		CreatedAt:  time.Now(),
	}
	if f.TelegramID == "" {
		return nil, errors.New("telegram_id is required")
	}
	return f, nil
}

// FollowupLevel is recomputed from FollowupCount on every evaluation.
// It is never persisted, so the counter is the single source of truth.
type FollowupLevel int

const (
	LevelExhausted FollowupLevel = 0
	Level1         FollowupLevel = 1
	Level2         FollowupLevel = 2
	Level3         FollowupLevel = 3
)

func (f *Followup) Level() FollowupLevel {
	switch {
	case f.FollowupCount >= MaxFollowups:
		return LevelExhausted
	case f.FollowupCount >= 2:
		return Level3
	case f.FollowupCount == 1:
		return Level2
	default:
		return Level1
	}
}

// IsDueAt reports whether the next escalation message should go out.
// Level 1 counts from creation; levels 2 and 3 count from the last send
// (next_followup_at is stamped with the send time by the dispatcher).
func (f *Followup) IsDueAt(now time.Time) bool {
	switch f.Level() {
	case LevelExhausted:
		return false
	case Level1:
		return now.Sub(f.CreatedAt) >= FirstFollowupDelay
	case Level2:
		return now.Sub(f.windowBase()) >= SecondFollowupDelay
	default:
		return now.Sub(f.windowBase()) >= ThirdFollowupDelay
	}
}

func (f *Followup) windowBase() time.Time {
	if f.NextFollowupAt != nil {
		return *f.NextFollowupAt
	}
	return f.CreatedAt
}

type DueItem struct {
	Followup *Followup
	Level    FollowupLevel
}

// SelectDue returns every followup that is due for its next escalation
// message, paired with the level to send. Pure function of stored state
// and the clock: calling it twice with the same inputs yields the same
// selection. Dispatch is the effectful step, not selection.
func SelectDue(now time.Time, followups []*Followup) []DueItem {
	var due []DueItem
	for _, f := range followups {
		if f == nil || !f.IsDueAt(now) {
			continue
		}
		due = append(due, DueItem{Followup: f, Level: f.Level()})
	}
	return due
}

type FollowupRepositoryInterface interface {
	Create(ctx context.Context, f *Followup) error
	FindPending(ctx context.Context) ([]*Followup, error)
	FindByTelegramID(ctx context.Context, telegramID string) ([]*Followup, error)
	// MarkSent atomically advances the record after a successful send:
	// followup_count+1, last_followup_at and next_followup_at stamped
	// with the send time, status flipped to sent.
	MarkSent(ctx context.Context, id string, at time.Time) error
	UpdateStatus(ctx context.Context, id, status string) error
}
