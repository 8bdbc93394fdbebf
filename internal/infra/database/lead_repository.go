package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/xavierca1/growthx-admin/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	if r.DB == nil {
		log.Println("⚠️ [LeadRepo] No database configured, dropping upsert")
		return nil
	}

	query := `
		INSERT INTO leads (id, telegram_id, first_name, last_name, username, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (telegram_id)
		DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name  = COALESCE(NULLIF(EXCLUDED.last_name, ''), leads.last_name),
			username   = COALESCE(NULLIF(EXCLUDED.username, ''), leads.username),
			email      = COALESCE(NULLIF(EXCLUDED.email, ''), leads.email),
			updated_at = NOW()
		RETURNING id, status, created_at, updated_at
	`

	return r.DB.QueryRowContext(ctx, query,
		lead.ID,
		lead.TelegramID,
		lead.FirstName,
		lead.LastName,
		lead.Username,
		lead.Email,
		lead.Status,
	).Scan(&lead.ID, &lead.Status, &lead.CreatedAt, &lead.UpdatedAt)
}

func (r *LeadRepository) FindByTelegramID(ctx context.Context, telegramID string) (*entity.Lead, error) {
	if r.DB == nil {
		return nil, nil
	}

	query := `
		SELECT id, telegram_id, first_name, COALESCE(last_name, ''), COALESCE(username, ''),
		       COALESCE(email, ''), status, created_at, updated_at
		FROM leads
		WHERE telegram_id = $1
	`

	var lead entity.Lead
	err := r.DB.QueryRowContext(ctx, query, telegramID).Scan(
		&lead.ID,
		&lead.TelegramID,
		&lead.FirstName,
		&lead.LastName,
		&lead.Username,
		&lead.Email,
		&lead.Status,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	if r.DB == nil {
		return []*entity.Lead{}, nil
	}

	query := `
		SELECT id, telegram_id, first_name, COALESCE(last_name, ''), COALESCE(username, ''),
		       COALESCE(email, ''), status, created_at, updated_at
		FROM leads
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		var lead entity.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.TelegramID,
			&lead.FirstName,
			&lead.LastName,
			&lead.Username,
			&lead.Email,
			&lead.Status,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, &lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, telegramID, status string) error {
	if r.DB == nil {
		log.Println("⚠️ [LeadRepo] No database configured, dropping status update")
		return nil
	}

	query := `UPDATE leads SET status = $1, updated_at = NOW() WHERE telegram_id = $2`
	_, err := r.DB.ExecContext(ctx, query, status, telegramID)
	return err
}

func (r *LeadRepository) Stats(ctx context.Context) (*entity.LeadStats, error) {
	if r.DB == nil {
		return &entity.LeadStats{}, nil
	}

	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'paid'),
		       COUNT(*) FILTER (WHERE status = 'inactive')
		FROM leads
	`

	var stats entity.LeadStats
	err := r.DB.QueryRowContext(ctx, query).Scan(&stats.TotalLeads, &stats.PaidUsers, &stats.Inactive)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
