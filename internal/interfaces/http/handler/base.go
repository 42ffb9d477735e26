package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/invoicehub/backend/internal/domain/shared"
	"github.com/invoicehub/backend/internal/interfaces/http/dto"
)

// BaseHandler provides shared response helpers for all handlers
type BaseHandler struct {
	logger *zap.Logger
}

// NewBaseHandler creates a base handler
func NewBaseHandler(logger *zap.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// OK writes a 200 success envelope
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.SuccessResponse(data))
}

// Created writes a 201 success envelope
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.SuccessResponse(data))
}

// Fail writes an error envelope with the given status
func (h *BaseHandler) Fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, dto.ErrorResponse(code, message))
}

// HandleError translates an error into an HTTP response. Typed domain
// errors map through the code table; anything else is a 500 and gets
// logged with the request path.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.HTTPStatus(domainErr.Code), dto.ErrorResponse(domainErr.Code, domainErr.Message))
		return
	}

	h.logger.Error("unhandled error",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse(dto.CodeInternalError, "Internal server error"))
}

// HandleBindingError translates a request binding failure into a 400 with
// per-field details when the failure came from validator tags.
func (h *BaseHandler) HandleBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]dto.ValidationDetail, 0, len(validationErrs))
		for _, fe := range validationErrs {
			details = append(details, dto.ValidationDetail{
				Field:   fe.Field(),
				Message: fe.Tag(),
			})
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponseWithDetails(dto.CodeInvalidInput, "Invalid request", details))
		return
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse(dto.CodeInvalidInput, "Invalid request body"))
}
