package billing

import (
	"github.com/invoicehub/backend/internal/domain/billing"
)

// MutationResult is the outcome of an invoice mutation. Exactly one of
// three shapes is produced: field errors (validation failed, nothing
// persisted), a message (the store rejected the write), or success with the
// caches invalidated and, for create/update, a redirect target.
type MutationResult struct {
	FieldErrors billing.FieldErrors `json:"error,omitempty"`
	Message     string              `json:"message,omitempty"`
	RedirectTo  string              `json:"redirect_to,omitempty"`
	Invalidated []string            `json:"invalidated,omitempty"`
}

// OK reports whether the mutation succeeded
func (r MutationResult) OK() bool {
	return len(r.FieldErrors) == 0 && r.Message == ""
}

// ListFilter holds listing query options from the dashboard
type ListFilter struct {
	Query    string
	Page     int
	PageSize int
}

// InvoiceListing is the paginated listing payload
type InvoiceListing struct {
	Invoices   []billing.InvoiceListRow `json:"invoices"`
	Total      int64                    `json:"total"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
	TotalPages int                      `json:"total_pages"`
}

// InvoiceResponse is the single-invoice payload that feeds the edit form.
// Amount is in cents, as stored.
type InvoiceResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}
