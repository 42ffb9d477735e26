package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appbilling "github.com/invoicehub/backend/internal/application/billing"
	"github.com/invoicehub/backend/internal/domain/billing"
	"github.com/invoicehub/backend/internal/interfaces/http/dto"
)

// InvoiceFormRequest carries the raw invoice form. Fields arrive as strings
// and go through the domain validator unchanged, so a malformed amount is a
// field error rather than a binding failure.
type InvoiceFormRequest struct {
	CustomerID string `json:"customerId" form:"customerId"`
	Amount     string `json:"amount" form:"amount"`
	Status     string `json:"status" form:"status"`
}

func (r InvoiceFormRequest) values() map[string]string {
	return map[string]string{
		billing.FieldCustomerID: r.CustomerID,
		billing.FieldAmount:     r.Amount,
		billing.FieldStatus:     r.Status,
	}
}

// ListInvoicesRequest carries the listing query parameters
type ListInvoicesRequest struct {
	Query    string `form:"q"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// InvoiceHandler serves the invoice endpoints
type InvoiceHandler struct {
	BaseHandler
	invoices *appbilling.InvoiceService
}

// NewInvoiceHandler creates an invoice handler
func NewInvoiceHandler(invoices *appbilling.InvoiceService, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		BaseHandler: NewBaseHandler(logger),
		invoices:    invoices,
	}
}

// RegisterRoutes registers the invoice routes on the given group
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.List)
		invoices.GET("/:id", h.Get)
		invoices.POST("", h.Create)
		invoices.PUT("/:id", h.Update)
		invoices.DELETE("/:id", h.Delete)
	}
}

// List returns the paginated invoice listing
func (h *InvoiceHandler) List(c *gin.Context) {
	var req ListInvoicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	listing, err := h.invoices.ListInvoices(c.Request.Context(), appbilling.ListFilter{
		Query:    req.Query,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, listing)
}

// Get returns a single invoice for the edit form
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Fail(c, http.StatusBadRequest, dto.CodeInvalidInput, "Invalid invoice id")
		return
	}

	invoice, err := h.invoices.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, invoice)
}

// Create runs the create pipeline. Validation failures come back as a 422
// with the per-field messages; store rejections as a 500 with the rejection
// message; success as a 201 pointing at the listing.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req InvoiceFormRequest
	if err := c.ShouldBind(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result := h.invoices.CreateInvoice(c.Request.Context(), req.values())
	h.writeMutation(c, result, http.StatusCreated)
}

// Update runs the update pipeline under the same outcome contract as Create
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Fail(c, http.StatusBadRequest, dto.CodeInvalidInput, "Invalid invoice id")
		return
	}

	var req InvoiceFormRequest
	if err := c.ShouldBind(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result := h.invoices.UpdateInvoice(c.Request.Context(), id, req.values())
	h.writeMutation(c, result, http.StatusOK)
}

// Delete removes an invoice. Deleting an id that is already gone succeeds.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Fail(c, http.StatusBadRequest, dto.CodeInvalidInput, "Invalid invoice id")
		return
	}

	result := h.invoices.DeleteInvoice(c.Request.Context(), id)
	h.writeMutation(c, result, http.StatusOK)
}

func (h *InvoiceHandler) writeMutation(c *gin.Context, result appbilling.MutationResult, successStatus int) {
	switch {
	case len(result.FieldErrors) > 0:
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponseWithDetails(
			dto.CodeValidationError, "Validation failed", result.FieldErrors))
	case result.Message != "":
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse(dto.CodeInternalError, result.Message))
	default:
		if result.RedirectTo != "" {
			c.Header("Location", result.RedirectTo)
		}
		c.JSON(successStatus, dto.SuccessResponse(dto.MutationOutcome{Redirect: result.RedirectTo}))
	}
}
