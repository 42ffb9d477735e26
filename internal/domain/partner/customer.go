package partner

import (
	"regexp"

	"github.com/invoicehub/backend/internal/domain/shared"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Customer represents a customer that invoices are billed against.
// Invoices reference customers by ID; the store's foreign key enforces the
// reference, the billing core never checks it up front.
type Customer struct {
	shared.BaseEntity
	Name     string `gorm:"type:varchar(200);not null"`
	Email    string `gorm:"type:varchar(200);not null;uniqueIndex"`
	ImageURL string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with required fields
func NewCustomer(name, email, imageURL string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		ImageURL:   imageURL,
	}, nil
}
