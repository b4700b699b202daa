package service

import (
	"context"

	"github.com/amirhossein-jamali/billing-core/internal/domain/entity"
	errs "github.com/amirhossein-jamali/billing-core/internal/domain/error"
	coreport "github.com/amirhossein-jamali/billing-core/internal/domain/port/core"
	"github.com/amirhossein-jamali/billing-core/internal/domain/port/persistence"
)

// BillingService implements invoice creation over the repository ports
type BillingService struct {
	logger coreport.Logger
}

// NewBillingService creates a new BillingService instance
func NewBillingService(logger coreport.Logger) *BillingService {
	return &BillingService{logger: logger}
}

// CreateInvoice issues an invoice for an existing user and returns the
// storage-assigned invoice ID. The user must exist within the transaction's
// view of storage at the moment the invoice is created; otherwise the call
// fails with ErrUserNotFound and nothing is written.
func (s *BillingService) CreateInvoice(ctx context.Context, uow persistence.UnitOfWork, userID uint64, amountCents int64) (uint64, error) {
	user, err := uow.Users().Get(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		s.logger.Warn("Invoice rejected: user not found", map[string]any{
			"user_id": userID,
		})
		return 0, errs.ErrUserNotFound
	}

	req := entity.NewInvoice{UserID: user.ID, AmountCents: amountCents}
	if err := req.Validate(); err != nil {
		return 0, err
	}

	invoice, err := uow.Invoices().Add(ctx, req)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Invoice created", map[string]any{
		"invoice_id":   invoice.ID,
		"user_id":      invoice.UserID,
		"amount_cents": invoice.AmountCents,
	})
	return invoice.ID, nil
}
