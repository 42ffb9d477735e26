package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/invoicehub/backend/internal/domain/shared"
)

// InvoiceListRow is the read model for the invoice listing: one invoice
// joined with the customer it bills.
type InvoiceListRow struct {
	ID            uuid.UUID     `json:"id"`
	CustomerID    string        `json:"customer_id"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	ImageURL      string        `json:"image_url"`
	Amount        int64         `json:"amount"`
	Status        InvoiceStatus `json:"status"`
	Date          string        `json:"date"`
}

// InvoiceRepository defines the persistence contract for invoices.
//
// Update and Delete deliberately do not report how many rows were touched:
// a mutation against an identifier that no longer exists is a no-op, not a
// failure.
type InvoiceRepository interface {
	// FindByID finds an invoice by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// List returns invoices joined with their customers, filtered and paginated
	List(ctx context.Context, filter shared.Filter) ([]InvoiceListRow, error)

	// Count counts invoices matching the filter (ignoring pagination)
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Insert persists a newly created invoice
	Insert(ctx context.Context, invoice *Invoice) error

	// Update writes the mutable columns (customer_id, amount, status) of the
	// row matching id. The date column is never part of the statement.
	Update(ctx context.Context, id uuid.UUID, input *InvoiceInput) error

	// Delete removes the row matching id
	Delete(ctx context.Context, id uuid.UUID) error
}
