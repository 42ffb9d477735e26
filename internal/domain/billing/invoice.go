package billing

import (
	"time"

	"github.com/invoicehub/backend/internal/domain/shared"
)

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// DateLayout is the storage format for invoice dates
const DateLayout = "2006-01-02"

// Invoice represents an invoice in the billing context.
// Amount is held in minor units (cents); the major-unit value entered by the
// user is converted exactly once, at write time, and never converted back.
type Invoice struct {
	shared.BaseEntity
	CustomerID string        `gorm:"type:uuid;not null;index"`
	Amount     int64         `gorm:"not null"`
	Status     InvoiceStatus `gorm:"type:varchar(20);not null"`
	Date       string        `gorm:"type:date;not null"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoice creates a new invoice from a validated form input.
// The date is stamped here, at creation time; it is never user-supplied
// and never modified afterwards.
func NewInvoice(input *InvoiceInput) *Invoice {
	return &Invoice{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: input.CustomerID,
		Amount:     input.AmountInCents(),
		Status:     input.Status,
		Date:       time.Now().Format(DateLayout),
	}
}

// IsPaid returns true if the invoice has been paid
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// IsPending returns true if the invoice is awaiting payment
func (i *Invoice) IsPending() bool {
	return i.Status == InvoiceStatusPending
}

// ValidStatus reports whether s is one of the two persistable statuses
func ValidStatus(s InvoiceStatus) bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}
