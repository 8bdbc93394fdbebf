package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/growthx-admin/internal/infra/database"
)

func TestRevenueStatsSumsByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	// 100 + 30 confirmed, 50 pending.
	mock.ExpectQuery("SELECT COALESCE").WillReturnRows(
		sqlmock.NewRows([]string{"confirmed", "pending", "total"}).AddRow(130.0, 50.0, 180.0),
	)

	repo := database.NewPaymentRepository(db)
	stats, err := repo.RevenueStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 130.0, stats.Confirmed)
	assert.Equal(t, 50.0, stats.Pending)
	assert.Equal(t, 180.0, stats.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmKeepsFirstConfirmedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	// COALESCE(confirmed_at, $2) in the statement is what makes a
	// repeated confirmation keep the original timestamp.
	mock.ExpectExec("UPDATE payments").
		WithArgs("p1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := database.NewPaymentRepository(db)
	assert.NoError(t, repo.Confirm(context.Background(), "p1", at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindLastPendingReturnsNilWhenNone(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT").WithArgs("u1").WillReturnRows(
		sqlmock.NewRows([]string{"id", "telegram_id", "plan", "amount", "method", "status", "created_at", "confirmed_at"}),
	)

	repo := database.NewPaymentRepository(db)
	payment, err := repo.FindLastPending(context.Background(), "u1")

	assert.NoError(t, err)
	assert.Nil(t, payment)
}

// Without a configured database the repository degrades to empty data
// instead of erroring, so the server can boot without persistence.
func TestPaymentRepositoryWithoutDatabase(t *testing.T) {
	repo := database.NewPaymentRepository(nil)
	ctx := context.Background()

	payments, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Empty(t, payments)

	pending, err := repo.FindLastPending(ctx, "u1")
	assert.NoError(t, err)
	assert.Nil(t, pending)

	stats, err := repo.RevenueStats(ctx)
	assert.NoError(t, err)
	assert.Zero(t, stats.Total)

	assert.NoError(t, repo.Confirm(ctx, "p1", time.Now()))
}
