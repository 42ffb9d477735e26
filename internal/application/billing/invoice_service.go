package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/invoicehub/backend/internal/domain/billing"
	"github.com/invoicehub/backend/internal/domain/shared"
)

// InvoiceListingRoute is the dashboard route whose cached listings every
// successful invoice mutation invalidates, and the redirect target after
// create and update.
const InvoiceListingRoute = "/dashboard/invoices"

// Store rejection messages. Field-level detail is never attached to these:
// by the time the store runs, the input has already validated.
const (
	msgCreateFailed = "Database Error: Failed to Create Invoice."
	msgUpdateFailed = "Database Error: Failed to Update Invoice."
	msgDeleteFailed = "Database Error: Failed to Delete Invoice."
)

// ListingCache is the cache consumed by the listing query and invalidated
// by mutations.
type ListingCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, route string) error
}

// InvoiceService implements the invoice mutation pipeline and the listing
// queries behind the dashboard.
type InvoiceService struct {
	invoices   billing.InvoiceRepository
	cache      ListingCache
	listingTTL time.Duration
	logger     *zap.Logger
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoices billing.InvoiceRepository, cache ListingCache, listingTTL time.Duration, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		invoices:   invoices,
		cache:      cache,
		listingTTL: listingTTL,
		logger:     logger,
	}
}

// CreateInvoice validates the raw form values, persists a new invoice with
// the amount converted to cents and today's date stamped, then invalidates
// the listing cache and points the caller back at the listing.
func (s *InvoiceService) CreateInvoice(ctx context.Context, values map[string]string) MutationResult {
	input, errs := billing.ParseInvoiceForm(values)
	if errs != nil {
		return MutationResult{FieldErrors: errs}
	}
	if result, ok := s.checkCents(input); !ok {
		return result
	}

	invoice := billing.NewInvoice(input)
	if err := s.invoices.Insert(ctx, invoice); err != nil {
		s.logger.Error("invoice insert failed", zap.Error(err), zap.String("customer_id", input.CustomerID))
		return MutationResult{Message: msgCreateFailed}
	}

	return s.finishMutation(ctx, true)
}

// UpdateInvoice validates the raw form values under the same rules as
// create and rewrites the mutable columns of the matching invoice. The date
// stays as stamped at creation. Updating an id that no longer exists is a
// success: the row is gone either way.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id uuid.UUID, values map[string]string) MutationResult {
	input, errs := billing.ParseInvoiceForm(values)
	if errs != nil {
		return MutationResult{FieldErrors: errs}
	}
	if result, ok := s.checkCents(input); !ok {
		return result
	}

	if err := s.invoices.Update(ctx, id, input); err != nil {
		s.logger.Error("invoice update failed", zap.Error(err), zap.String("invoice_id", id.String()))
		return MutationResult{Message: msgUpdateFailed}
	}

	return s.finishMutation(ctx, true)
}

// DeleteInvoice removes the matching invoice and invalidates the listing
// cache. No redirect: the caller is already on the listing. Deleting an id
// that no longer exists is a success.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) MutationResult {
	if err := s.invoices.Delete(ctx, id); err != nil {
		s.logger.Error("invoice delete failed", zap.Error(err), zap.String("invoice_id", id.String()))
		return MutationResult{Message: msgDeleteFailed}
	}

	return s.finishMutation(ctx, false)
}

// checkCents guards the rounding edge where a positive major-unit amount
// still rounds to zero cents (e.g. "0.001").
func (s *InvoiceService) checkCents(input *billing.InvoiceInput) (MutationResult, bool) {
	if input.AmountInCents() <= 0 {
		errs := billing.FieldErrors{}
		errs.Add(billing.FieldAmount, billing.MsgAmountInvalid)
		return MutationResult{FieldErrors: errs}, false
	}
	return MutationResult{}, true
}

// finishMutation records the cache invalidation and optional redirect after
// a successful write. A failed invalidation is logged but does not turn the
// outcome into a failure: the write already happened and the cache entries
// expire on their own.
func (s *InvoiceService) finishMutation(ctx context.Context, redirect bool) MutationResult {
	result := MutationResult{Invalidated: []string{InvoiceListingRoute}}

	if err := s.cache.Invalidate(ctx, InvoiceListingRoute); err != nil {
		s.logger.Warn("listing cache invalidation failed", zap.Error(err), zap.String("route", InvoiceListingRoute))
	}
	if redirect {
		result.RedirectTo = InvoiceListingRoute
	}
	return result
}

// ListInvoices returns the paginated invoice listing joined with customer
// details, served through the listing cache.
func (s *InvoiceService) ListInvoices(ctx context.Context, filter ListFilter) (*InvoiceListing, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 6
	}

	key := fmt.Sprintf("%s?page=%d&page_size=%d&q=%s", InvoiceListingRoute, filter.Page, filter.PageSize, filter.Query)
	if payload, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("listing cache read failed", zap.Error(err))
	} else if ok {
		var listing InvoiceListing
		if err := json.Unmarshal(payload, &listing); err == nil {
			return &listing, nil
		}
		s.logger.Warn("discarding undecodable listing cache entry", zap.String("key", key))
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Query,
	}

	rows, err := s.invoices.List(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.invoices.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	listing := &InvoiceListing{
		Invoices:   rows,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize)),
	}

	if payload, err := json.Marshal(listing); err == nil {
		if err := s.cache.Set(ctx, key, payload, s.listingTTL); err != nil {
			s.logger.Warn("listing cache write failed", zap.Error(err))
		}
	}

	return listing, nil
}

// GetInvoice returns a single invoice by id, feeding the edit form
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &InvoiceResponse{
		ID:         invoice.ID.String(),
		CustomerID: invoice.CustomerID,
		Amount:     invoice.Amount,
		Status:     string(invoice.Status),
		Date:       invoice.Date,
	}, nil
}
