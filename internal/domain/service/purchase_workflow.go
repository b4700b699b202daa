package service

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/billing-core/internal/domain/port/core"
	"github.com/amirhossein-jamali/billing-core/internal/domain/port/persistence"
)

// PurchaseWorkflow composes user registration, invoicing and auditing into
// one atomically-committed use case. A failure at any step discards the
// effects of all three.
type PurchaseWorkflow struct {
	uowFactory persistence.UnitOfWorkFactory
	users      *UserService
	billing    *BillingService
	audit      *AuditService
	logger     coreport.Logger
}

// NewPurchaseWorkflow creates a new PurchaseWorkflow instance
func NewPurchaseWorkflow(
	uowFactory persistence.UnitOfWorkFactory,
	users *UserService,
	billing *BillingService,
	audit *AuditService,
	logger coreport.Logger,
) *PurchaseWorkflow {
	return &PurchaseWorkflow{
		uowFactory: uowFactory,
		users:      users,
		billing:    billing,
		audit:      audit,
		logger:     logger,
	}
}

// Run registers a user, creates an invoice referencing the newly assigned
// user ID and records an audit entry, all inside a single unit-of-work
// scope. It returns the assigned invoice ID.
func (w *PurchaseWorkflow) Run(ctx context.Context, email string, amountCents int64) (uint64, error) {
	var invoiceID uint64

	err := w.uowFactory.Execute(ctx, func(ctx context.Context, uow persistence.UnitOfWork) error {
		userID, err := w.users.RegisterUser(ctx, uow, email)
		if err != nil {
			return err
		}

		invoiceID, err = w.billing.CreateInvoice(ctx, uow, userID, amountCents)
		if err != nil {
			return err
		}

		message := fmt.Sprintf("purchase: user_id=%d invoice_id=%d amount_cents=%d", userID, invoiceID, amountCents)
		return w.audit.Record(ctx, uow, message)
	})
	if err != nil {
		w.logger.Error("Purchase workflow failed", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return 0, err
	}

	w.logger.Info("Purchase workflow completed", map[string]any{
		"email":        email,
		"invoice_id":   invoiceID,
		"amount_cents": amountCents,
	})
	return invoiceID, nil
}
