package service

import (
	"context"
	"testing"

	errs "github.com/amirhossein-jamali/billing-core/internal/domain/error"
	"github.com/amirhossein-jamali/billing-core/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkflow(factory *fakeUowFactory) *PurchaseWorkflow {
	log := logger.NewNoopLogger()
	return NewPurchaseWorkflow(
		factory,
		NewUserService(log),
		NewBillingService(log),
		NewAuditService(log),
		log,
	)
}

func TestPurchaseWorkflow(t *testing.T) {
	ctx := context.Background()

	t.Run("Clean run commits one scope with all three writes", func(t *testing.T) {
		factory := newFakeUowFactory()
		workflow := newWorkflow(factory)

		invoiceID, err := workflow.Run(ctx, "m@example.com", 10000)

		require.NoError(t, err)
		assert.Equal(t, 1, factory.commits)
		assert.Zero(t, factory.rollbacks)

		invoice := factory.uow.invoices.invoices[invoiceID]
		user := factory.uow.users.users[invoice.UserID]
		assert.Equal(t, "m@example.com", user.Email)
		assert.Equal(t, int64(10000), invoice.AmountCents)
		require.Len(t, factory.uow.audit.entries, 1)
		assert.Contains(t, factory.uow.audit.entries[0].Message, "purchase:")
	})

	t.Run("Billing failure rolls back the scope", func(t *testing.T) {
		factory := newFakeUowFactory()
		workflow := newWorkflow(factory)

		_, err := workflow.Run(ctx, "m@example.com", -5)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Zero(t, factory.commits)
		assert.Equal(t, 1, factory.rollbacks)
	})

	t.Run("Infrastructure failure after user creation propagates unchanged", func(t *testing.T) {
		factory := newFakeUowFactory()
		factory.uow.invoices.addErr = errs.ErrDatabaseConnection
		workflow := newWorkflow(factory)

		_, err := workflow.Run(ctx, "m@example.com", 10000)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Zero(t, factory.commits)
		assert.Equal(t, 1, factory.rollbacks)
	})

	t.Run("Audit failure rolls back the whole purchase", func(t *testing.T) {
		factory := newFakeUowFactory()
		factory.uow.audit.recordErr = errs.ErrDatabaseConnection
		workflow := newWorkflow(factory)

		_, err := workflow.Run(ctx, "m@example.com", 10000)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Equal(t, 1, factory.rollbacks)
	})
}
