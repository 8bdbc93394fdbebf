package database

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/xavierca1/growthx-admin/internal/entity"
)

type PaymentRepository struct {
	DB *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	if r.DB == nil {
		log.Println("⚠️ [PaymentRepo] No database configured, dropping payment")
		return nil
	}

	query := `
		INSERT INTO payments (id, telegram_id, plan, amount, method, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		p.ID,
		p.TelegramID,
		p.Plan,
		p.Amount,
		p.Method,
		p.Status,
		p.CreatedAt,
	)
	return err
}

const paymentColumns = `
	id, telegram_id, plan, amount, COALESCE(method, ''), status, created_at, confirmed_at
`

func (r *PaymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	if r.DB == nil {
		return []*entity.Payment{}, nil
	}

	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func (r *PaymentRepository) FindByTelegramID(ctx context.Context, telegramID string) ([]*entity.Payment, error) {
	if r.DB == nil {
		return []*entity.Payment{}, nil
	}

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE telegram_id = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, telegramID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

// FindLastPending: if the lead somehow holds several pending rows, the
// most recently created one wins.
func (r *PaymentRepository) FindLastPending(ctx context.Context, telegramID string) (*entity.Payment, error) {
	if r.DB == nil {
		return nil, nil
	}

	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE telegram_id = $1 AND status = 'pending'
		ORDER BY created_at DESC
		LIMIT 1
	`

	var p entity.Payment
	err := r.DB.QueryRowContext(ctx, query, telegramID).Scan(
		&p.ID, &p.TelegramID, &p.Plan, &p.Amount, &p.Method, &p.Status, &p.CreatedAt, &p.ConfirmedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Confirm is idempotent in effect: COALESCE keeps the first
// confirmed_at, so re-confirming never regresses the timestamp.
func (r *PaymentRepository) Confirm(ctx context.Context, paymentID string, at time.Time) error {
	if r.DB == nil {
		log.Println("⚠️ [PaymentRepo] No database configured, dropping confirmation")
		return nil
	}

	query := `
		UPDATE payments
		SET status = 'confirmed', confirmed_at = COALESCE(confirmed_at, $2)
		WHERE id = $1
	`

	_, err := r.DB.ExecContext(ctx, query, paymentID, at)
	return err
}

func (r *PaymentRepository) RevenueStats(ctx context.Context) (*entity.RevenueStats, error) {
	if r.DB == nil {
		return &entity.RevenueStats{}, nil
	}

	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE status = 'confirmed'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0),
		       COALESCE(SUM(amount), 0)
		FROM payments
	`

	var stats entity.RevenueStats
	err := r.DB.QueryRowContext(ctx, query).Scan(&stats.Confirmed, &stats.Pending, &stats.Total)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *PaymentRepository) CountConfirmedByTelegramID(ctx context.Context, telegramID string) (int, error) {
	if r.DB == nil {
		return 0, nil
	}

	query := `SELECT COUNT(*) FROM payments WHERE telegram_id = $1 AND status = 'confirmed'`

	var count int
	err := r.DB.QueryRowContext(ctx, query, telegramID).Scan(&count)
	return count, err
}

func scanPayments(rows *sql.Rows) ([]*entity.Payment, error) {
	var payments []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(
			&p.ID, &p.TelegramID, &p.Plan, &p.Amount, &p.Method, &p.Status, &p.CreatedAt, &p.ConfirmedAt,
		); err != nil {
			return nil, err
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}
