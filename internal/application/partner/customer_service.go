package partner

import (
	"context"

	"go.uber.org/zap"

	"github.com/invoicehub/backend/internal/domain/partner"
	"github.com/invoicehub/backend/internal/domain/shared"
)

// CustomerOption is the dropdown entry for the invoice form
type CustomerOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerResponse is the full customer payload for listings
type CustomerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// CustomerService serves the customer data behind the dashboard
type CustomerService struct {
	customers partner.CustomerRepository
	logger    *zap.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(customers partner.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{customers: customers, logger: logger}
}

// ListCustomers returns every customer as a dropdown option, ordered by name
func (s *CustomerService) ListCustomers(ctx context.Context) ([]CustomerOption, error) {
	customers, err := s.customers.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}

	options := make([]CustomerOption, 0, len(customers))
	for _, c := range customers {
		options = append(options, CustomerOption{ID: c.ID.String(), Name: c.Name})
	}
	return options, nil
}

// SearchCustomers returns full customer details matching the query
func (s *CustomerService) SearchCustomers(ctx context.Context, query string) ([]CustomerResponse, error) {
	customers, err := s.customers.FindAll(ctx, shared.Filter{Search: query})
	if err != nil {
		return nil, err
	}

	result := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		result = append(result, CustomerResponse{
			ID:       c.ID.String(),
			Name:     c.Name,
			Email:    c.Email,
			ImageURL: c.ImageURL,
		})
	}
	return result, nil
}
