package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/invoicehub/backend/internal/domain/billing"
	"github.com/invoicehub/backend/internal/domain/shared"
)

// GormInvoiceRepository implements billing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GORM-based invoice repository
func NewGormInvoiceRepository(db *gorm.DB) billing.InvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	var invoice billing.Invoice
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// List returns invoices joined with their customers, newest first
func (r *GormInvoiceRepository) List(ctx context.Context, filter shared.Filter) ([]billing.InvoiceListRow, error) {
	rows := []billing.InvoiceListRow{}
	query := r.listQuery(ctx, filter).
		Select("invoices.id, invoices.customer_id, customers.name AS customer_name, customers.email AS customer_email, customers.image_url, invoices.amount, invoices.status, invoices.date").
		Order("invoices.date DESC, invoices.created_at DESC")

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize).Offset(filter.Offset())
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count counts invoices matching the filter, ignoring pagination
func (r *GormInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.listQuery(ctx, filter).Count(&count).Error
	return count, err
}

func (r *GormInvoiceRepository) listQuery(ctx context.Context, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&billing.Invoice{}).
		Joins("JOIN customers ON customers.id = invoices.customer_id")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"customers.name ILIKE ? OR customers.email ILIKE ? OR invoices.status ILIKE ? OR invoices.amount::text ILIKE ? OR invoices.date::text ILIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("invoices.status = ?", status)
	}

	return query
}

// Insert persists a newly created invoice
func (r *GormInvoiceRepository) Insert(ctx context.Context, invoice *billing.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

// Update writes the mutable columns of the matching row. The date column is
// stamped at creation and never updated. Zero matched rows is not an error.
func (r *GormInvoiceRepository) Update(ctx context.Context, id uuid.UUID, input *billing.InvoiceInput) error {
	return r.db.WithContext(ctx).
		Model(&billing.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"customer_id": input.CustomerID,
			"amount":      input.AmountInCents(),
			"status":      input.Status,
			"updated_at":  time.Now(),
		}).Error
}

// Delete removes the matching row. Zero matched rows is not an error.
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&billing.Invoice{}).Error
}
