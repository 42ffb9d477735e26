package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apppartner "github.com/invoicehub/backend/internal/application/partner"
)

// CustomerHandler serves the customer endpoints behind the invoice form
type CustomerHandler struct {
	BaseHandler
	customers *apppartner.CustomerService
}

// NewCustomerHandler creates a customer handler
func NewCustomerHandler(customers *apppartner.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		BaseHandler: NewBaseHandler(logger),
		customers:   customers,
	}
}

// RegisterRoutes registers the customer routes on the given group
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.List)
		customers.GET("/search", h.Search)
	}
}

// List returns the dropdown options for the invoice form
func (h *CustomerHandler) List(c *gin.Context) {
	options, err := h.customers.ListCustomers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, options)
}

// Search returns full customer details matching the q parameter
func (h *CustomerHandler) Search(c *gin.Context) {
	result, err := h.customers.SearchCustomers(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, result)
}
