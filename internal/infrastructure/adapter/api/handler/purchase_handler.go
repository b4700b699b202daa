package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/billing-core/internal/domain/error"
	coreport "github.com/amirhossein-jamali/billing-core/internal/domain/port/core"
	"github.com/amirhossein-jamali/billing-core/internal/domain/service"
	"github.com/amirhossein-jamali/billing-core/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles purchase-related HTTP requests
type PurchaseHandler struct {
	workflow *service.PurchaseWorkflow
	logger   coreport.Logger
}

// NewPurchaseHandler creates a new purchase handler instance
func NewPurchaseHandler(workflow *service.PurchaseWorkflow, logger coreport.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		workflow: workflow,
		logger:   logger,
	}
}

// CreatePurchase handles the POST /purchases endpoint. The whole workflow
// runs inside one unit-of-work scope: either the user, invoice and audit
// entry are all committed, or none of them are.
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidEmail),
			Message: "Invalid request body",
		})
		return
	}

	invoiceID, err := h.workflow.Run(c.Request.Context(), req.Email, req.AmountCents)
	if err != nil {
		status, message := statusForError(err)
		h.logger.Error("Purchase request failed", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.PurchaseResponse{InvoiceID: invoiceID})
}

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) (int, string) {
	switch {
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest, err.Error()
	case domainerr.IsUserNotFoundError(err):
		return http.StatusNotFound, "User not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
