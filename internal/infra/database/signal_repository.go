package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/xavierca1/growthx-admin/internal/entity"
)

type SignalRepository struct {
	DB *sql.DB
}

func NewSignalRepository(db *sql.DB) *SignalRepository {
	return &SignalRepository{DB: db}
}

func (r *SignalRepository) Create(ctx context.Context, s *entity.Signal) error {
	if r.DB == nil {
		log.Println("⚠️ [SignalRepo] No database configured, dropping signal record")
		return nil
	}

	query := `
		INSERT INTO signals (id, telegram_id, signal_text, entry_price, exit_price, stop_loss, take_profit, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		s.ID,
		s.TelegramID,
		s.SignalText,
		s.EntryPrice,
		s.ExitPrice,
		s.StopLoss,
		s.TakeProfit,
		s.Type,
		s.CreatedAt,
	)
	return err
}

const signalColumns = `
	id, telegram_id, signal_text, COALESCE(entry_price, ''), COALESCE(exit_price, ''),
	COALESCE(stop_loss, ''), COALESCE(take_profit, ''), COALESCE(type, ''), created_at
`

func (r *SignalRepository) FindAll(ctx context.Context) ([]*entity.Signal, error) {
	if r.DB == nil {
		return []*entity.Signal{}, nil
	}

	query := `SELECT ` + signalColumns + ` FROM signals ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSignals(rows)
}

func (r *SignalRepository) FindByTelegramID(ctx context.Context, telegramID string) ([]*entity.Signal, error) {
	if r.DB == nil {
		return []*entity.Signal{}, nil
	}

	query := `SELECT ` + signalColumns + ` FROM signals WHERE telegram_id = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, telegramID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSignals(rows)
}

func scanSignals(rows *sql.Rows) ([]*entity.Signal, error) {
	var signals []*entity.Signal
	for rows.Next() {
		var s entity.Signal
		if err := rows.Scan(
			&s.ID,
			&s.TelegramID,
			&s.SignalText,
			&s.EntryPrice,
			&s.ExitPrice,
			&s.StopLoss,
			&s.TakeProfit,
			&s.Type,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		signals = append(signals, &s)
	}
	return signals, rows.Err()
}
