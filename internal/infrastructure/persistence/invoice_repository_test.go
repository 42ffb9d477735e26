package persistence

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/invoicehub/backend/internal/domain/billing"
	"github.com/invoicehub/backend/internal/domain/shared"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestGormInvoiceRepository_Insert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormInvoiceRepository(db)

	invoice := billing.NewInvoice(&billing.InvoiceInput{
		CustomerID: uuid.NewString(),
		Amount:     decimal.NewFromFloat(3.99),
		Status:     billing.InvoiceStatusPending,
	})

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "invoices"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), invoice)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormInvoiceRepository_Update_NeverTouchesDate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormInvoiceRepository(db)

	id := uuid.New()
	input := &billing.InvoiceInput{
		CustomerID: uuid.NewString(),
		Amount:     decimal.NewFromInt(50),
		Status:     billing.InvoiceStatusPaid,
	}

	// Map updates produce SET clauses in alphabetical key order; the date
	// column must never appear among them.
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "invoices" SET "amount"=$1,"customer_id"=$2,"status"=$3,"updated_at"=$4 WHERE id = $5`)).
		WithArgs(int64(5000), input.CustomerID, billing.InvoiceStatusPaid, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), id, input)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormInvoiceRepository_Update_ZeroRowsIsNotAnError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormInvoiceRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "invoices"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), uuid.New(), &billing.InvoiceInput{
		CustomerID: uuid.NewString(),
		Amount:     decimal.NewFromInt(1),
		Status:     billing.InvoiceStatusPending,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormInvoiceRepository_Delete_ZeroRowsIsNotAnError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormInvoiceRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "invoices" WHERE id = $1`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormInvoiceRepository_FindByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormInvoiceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "invoices" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	invoice, err := repo.FindByID(context.Background(), uuid.New())

	assert.Nil(t, invoice)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormInvoiceRepository_List_JoinsCustomers(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormInvoiceRepository(db)

	id := uuid.New()
	customerID := uuid.NewString()
	rows := sqlmock.NewRows([]string{
		"id", "customer_id", "customer_name", "customer_email", "image_url", "amount", "status", "date",
	}).AddRow(id, customerID, "Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png", int64(8945), "paid", "2023-06-05")

	mock.ExpectQuery(`JOIN customers ON customers\.id = invoices\.customer_id`).
		WillReturnRows(rows)

	result, err := repo.List(context.Background(), shared.Filter{Page: 1, PageSize: 6})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, id, result[0].ID)
	assert.Equal(t, "Delba de Oliveira", result[0].CustomerName)
	assert.Equal(t, int64(8945), result[0].Amount)
	assert.Equal(t, "2023-06-05", result[0].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormInvoiceRepository_Count_WithSearch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormInvoiceRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "invoices" JOIN customers`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.Count(context.Background(), shared.Filter{Search: "delba"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
