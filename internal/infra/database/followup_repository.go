package database

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/xavierca1/growthx-admin/internal/entity"
)

type FollowupRepository struct {
	DB *sql.DB
}

func NewFollowupRepository(db *sql.DB) *FollowupRepository {
	return &FollowupRepository{DB: db}
}

func (r *FollowupRepository) Create(ctx context.Context, f *entity.Followup) error {
	if r.DB == nil {
		log.Println("⚠️ [FollowupRepo] No database configured, dropping followup")
		return nil
	}

	query := `
		INSERT INTO followups (id, telegram_id, plan, reason, status, followup_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		f.ID,
		f.TelegramID,
		f.Plan,
		f.Reason,
		f.Status,
		f.FollowupCount,
		f.CreatedAt,
	)
	return err
}

const followupColumns = `
	id, telegram_id, COALESCE(plan, ''), COALESCE(reason, ''), status,
	followup_count, created_at, last_followup_at, next_followup_at
`

// FindPending returns every campaign that could still escalate. The
// cadence engine decides which of them are actually due.
func (r *FollowupRepository) FindPending(ctx context.Context) ([]*entity.Followup, error) {
	if r.DB == nil {
		return []*entity.Followup{}, nil
	}

	query := `
		SELECT ` + followupColumns + `
		FROM followups
		WHERE status IN ('pending', 'sent') AND followup_count < $1
		ORDER BY created_at ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, entity.MaxFollowups)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFollowups(rows)
}

func (r *FollowupRepository) FindByTelegramID(ctx context.Context, telegramID string) ([]*entity.Followup, error) {
	if r.DB == nil {
		return []*entity.Followup{}, nil
	}

	query := `SELECT ` + followupColumns + ` FROM followups WHERE telegram_id = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, telegramID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFollowups(rows)
}

// MarkSent advances the campaign in a single statement so a crashed
// dispatcher can never half-apply it.
func (r *FollowupRepository) MarkSent(ctx context.Context, id string, at time.Time) error {
	if r.DB == nil {
		log.Println("⚠️ [FollowupRepo] No database configured, dropping mark-sent")
		return nil
	}

	query := `
		UPDATE followups
		SET followup_count = followup_count + 1,
		    last_followup_at = $2,
		    next_followup_at = $2,
		    status = 'sent'
		WHERE id = $1
	`

	_, err := r.DB.ExecContext(ctx, query, id, at)
	return err
}

func (r *FollowupRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if r.DB == nil {
		return nil
	}

	query := `UPDATE followups SET status = $1 WHERE id = $2`
	_, err := r.DB.ExecContext(ctx, query, status, id)
	return err
}

func scanFollowups(rows *sql.Rows) ([]*entity.Followup, error) {
	var followups []*entity.Followup
	for rows.Next() {
		var f entity.Followup
		if err := rows.Scan(
			&f.ID,
			&f.TelegramID,
			&f.Plan,
			&f.Reason,
			&f.Status,
			&f.FollowupCount,
			&f.CreatedAt,
			&f.LastFollowupAt,
			&f.NextFollowupAt,
		); err != nil {
			return nil, err
		}
		followups = append(followups, &f)
	}
	return followups, rows.Err()
}
