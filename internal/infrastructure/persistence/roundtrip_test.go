package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/invoicehub/backend/internal/domain/billing"
	"github.com/invoicehub/backend/internal/domain/identity"
	"github.com/invoicehub/backend/internal/domain/partner"
	"github.com/invoicehub/backend/internal/domain/shared"
)

func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&partner.Customer{}, &identity.User{}, &billing.Invoice{}))
	return db
}

func TestInvoiceLifecycle(t *testing.T) {
	db := setupSQLiteDB(t)
	customers := NewGormCustomerRepository(db)
	invoices := NewGormInvoiceRepository(db)
	ctx := context.Background()

	customer, err := partner.NewCustomer("Lee Robinson", "lee@robinson.com", "/customers/lee-robinson.png")
	require.NoError(t, err)
	require.NoError(t, customers.Save(ctx, customer))

	created := billing.NewInvoice(&billing.InvoiceInput{
		CustomerID: customer.ID.String(),
		Amount:     decimal.NewFromFloat(89.45),
		Status:     billing.InvoiceStatusPending,
	})
	require.NoError(t, invoices.Insert(ctx, created))

	found, err := invoices.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8945), found.Amount)
	assert.Equal(t, billing.InvoiceStatusPending, found.Status)
	assert.Equal(t, time.Now().Format(billing.DateLayout), found.Date)

	err = invoices.Update(ctx, created.ID, &billing.InvoiceInput{
		CustomerID: customer.ID.String(),
		Amount:     decimal.NewFromInt(100),
		Status:     billing.InvoiceStatusPaid,
	})
	require.NoError(t, err)

	updated, err := invoices.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), updated.Amount)
	assert.Equal(t, billing.InvoiceStatusPaid, updated.Status)
	assert.Equal(t, created.Date, updated.Date, "date must survive updates unchanged")

	require.NoError(t, invoices.Delete(ctx, created.ID))

	_, err = invoices.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestUserRepositoryRoundTrip(t *testing.T) {
	db := setupSQLiteDB(t)
	users := NewGormUserRepository(db)
	ctx := context.Background()

	user, err := identity.NewUser("User", "user@nextmail.com", "123456")
	require.NoError(t, err)
	require.NoError(t, users.Save(ctx, user))

	found, err := users.FindByEmail(ctx, "user@nextmail.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.True(t, found.VerifyPassword("123456"))
	assert.False(t, found.VerifyPassword("wrong"))

	_, err = users.FindByEmail(ctx, "missing@nextmail.com")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCustomerRepositoryOrdersByName(t *testing.T) {
	db := setupSQLiteDB(t)
	customers := NewGormCustomerRepository(db)
	ctx := context.Background()

	for _, c := range []struct{ name, email string }{
		{"Michael Novotny", "michael@novotny.com"},
		{"Amy Burns", "amy@burns.com"},
		{"Evil Rabbit", "evil@rabbit.com"},
	} {
		customer, err := partner.NewCustomer(c.name, c.email, "/customers/"+c.email+".png")
		require.NoError(t, err)
		require.NoError(t, customers.Save(ctx, customer))
	}

	all, err := customers.FindAll(ctx, shared.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Amy Burns", all[0].Name)
	assert.Equal(t, "Evil Rabbit", all[1].Name)
	assert.Equal(t, "Michael Novotny", all[2].Name)

	count, err := customers.Count(ctx, shared.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
