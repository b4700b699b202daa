package database

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/billing-core/internal/domain/entity"
	errs "github.com/amirhossein-jamali/billing-core/internal/domain/error"
	"github.com/amirhossein-jamali/billing-core/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/billing-core/internal/domain/service"
	"github.com/amirhossein-jamali/billing-core/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/billing-core/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/billing-core/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestFactory(t *testing.T) (persistence.UnitOfWorkFactory, *gorm.DB) {
	t.Helper()
	log := logger.NewNoopLogger()
	db := NewTestDB(t, log)
	return NewUnitOfWorkFactory(db, log, timeprovider.NewRealTimeProvider()), db
}

func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}

func TestIdentityAssignmentWithinScope(t *testing.T) {
	factory, _ := newTestFactory(t)
	ctx := context.Background()

	err := factory.Execute(ctx, func(ctx context.Context, uow persistence.UnitOfWork) error {
		created, err := uow.Users().Add(ctx, entity.NewUser{Email: "a@example.com"})
		require.NoError(t, err)
		assert.Positive(t, created.ID, "id must be assigned at the flush point, before commit")

		// The id is usable for reads inside the same transaction
		found, err := uow.Users().Get(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "a@example.com", found.Email)

		second, err := uow.Users().Add(ctx, entity.NewUser{Email: "b@example.com"})
		require.NoError(t, err)
		assert.NotEqual(t, created.ID, second.ID)

		require.NoError(t, uow.Flush(ctx))
		return nil
	})
	require.NoError(t, err)
}

func TestGetMissingUserReturnsEmpty(t *testing.T) {
	factory, _ := newTestFactory(t)

	err := factory.Execute(context.Background(), func(ctx context.Context, uow persistence.UnitOfWork) error {
		user, err := uow.Users().Get(ctx, 12345)
		require.NoError(t, err, "a missing row is not an error")
		assert.Nil(t, user)
		return nil
	})
	require.NoError(t, err)
}

func TestCommitDurability(t *testing.T) {
	factory, db := newTestFactory(t)
	ctx := context.Background()

	var userID, invoiceID uint64
	err := factory.Execute(ctx, func(ctx context.Context, uow persistence.UnitOfWork) error {
		user, err := uow.Users().Add(ctx, entity.NewUser{Email: "m@example.com"})
		if err != nil {
			return err
		}
		userID = user.ID

		invoice, err := uow.Invoices().Add(ctx, entity.NewInvoice{UserID: user.ID, AmountCents: 10000})
		if err != nil {
			return err
		}
		invoiceID = invoice.ID

		return uow.Audit().Record(ctx, entity.AuditEntry{Message: "purchase recorded"})
	})
	require.NoError(t, err)

	// A fresh scope sees all three committed writes
	err = factory.Execute(ctx, func(ctx context.Context, uow persistence.UnitOfWork) error {
		user, err := uow.Users().Get(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "m@example.com", user.Email)
		return nil
	})
	require.NoError(t, err)

	var invoice model.Invoice
	require.NoError(t, db.First(&invoice, invoiceID).Error)
	assert.Equal(t, userID, invoice.UserID)
	assert.Equal(t, int64(10000), invoice.AmountCents)

	assert.Equal(t, int64(1), countRows(t, db, &model.AuditEntry{}))
}

func TestAtomicityOnScopeError(t *testing.T) {
	factory, db := newTestFactory(t)
	errBoom := errors.New("boom")

	err := factory.Execute(context.Background(), func(ctx context.Context, uow persistence.UnitOfWork) error {
		if _, err := uow.Users().Add(ctx, entity.NewUser{Email: "a@example.com"}); err != nil {
			return err
		}
		if err := uow.Audit().Record(ctx, entity.AuditEntry{Message: "never persisted"}); err != nil {
			return err
		}
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom, "the triggering error reaches the caller unchanged")
	assert.Zero(t, countRows(t, db, &model.User{}), "no partial writes survive rollback")
	assert.Zero(t, countRows(t, db, &model.AuditEntry{}))
}

func TestReferentialPrecondition(t *testing.T) {
	factory, db := newTestFactory(t)
	log := logger.NewNoopLogger()
	billing := service.NewBillingService(log)

	err := factory.Execute(context.Background(), func(ctx context.Context, uow persistence.UnitOfWork) error {
		_, err := billing.CreateInvoice(ctx, uow, 9999, 100)
		return err
	})

	assert.ErrorIs(t, err, errs.ErrUserNotFound)
	assert.Zero(t, countRows(t, db, &model.Invoice{}))
}

func TestScopeIsSingleUse(t *testing.T) {
	factory, _ := newTestFactory(t)
	ctx := context.Background()

	var escaped persistence.UnitOfWork
	err := factory.Execute(ctx, func(_ context.Context, uow persistence.UnitOfWork) error {
		escaped = uow
		return nil
	})
	require.NoError(t, err)

	assert.ErrorIs(t, escaped.Flush(ctx), errs.ErrUnitOfWorkClosed)

	_, err = escaped.Users().Add(ctx, entity.NewUser{Email: "late@example.com"})
	assert.Error(t, err, "repositories must reject use after the scope exits")
}

func TestPanicReleasesTheHandle(t *testing.T) {
	factory, db := newTestFactory(t)
	ctx := context.Background()

	func() {
		defer func() {
			require.NotNil(t, recover(), "panic must propagate to the caller")
		}()
		_ = factory.Execute(ctx, func(ctx context.Context, uow persistence.UnitOfWork) error {
			if _, err := uow.Users().Add(ctx, entity.NewUser{Email: "a@example.com"}); err != nil {
				return err
			}
			panic("scope body panicked")
		})
	}()

	assert.Zero(t, countRows(t, db, &model.User{}), "panicked scope leaves nothing behind")

	// The handle was released: a new scope can begin and commit. With the
	// test pool capped at one connection, a leaked transaction would make
	// this Begin block forever.
	err := factory.Execute(ctx, func(ctx context.Context, uow persistence.UnitOfWork) error {
		_, err := uow.Users().Add(ctx, entity.NewUser{Email: "b@example.com"})
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), countRows(t, db, &model.User{}))
}

func TestRollbackFailureDoesNotMaskScopeError(t *testing.T) {
	factory, db := newTestFactory(t)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := factory.Execute(ctx, func(_ context.Context, uow persistence.UnitOfWork) error {
		// Force the handle into a terminal state behind the scope's back so
		// the finalizer's rollback fails.
		gormUow, ok := uow.(*GormUnitOfWork)
		require.True(t, ok)
		require.NoError(t, gormUow.tx.Commit().Error)
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom, "the triggering error wins over the rollback failure")

	// The handle was not leaked: a fresh scope begins and commits normally.
	require.NoError(t, factory.Execute(ctx, func(ctx context.Context, uow persistence.UnitOfWork) error {
		_, err := uow.Users().Add(ctx, entity.NewUser{Email: "next@example.com"})
		return err
	}))
	assert.Equal(t, int64(1), countRows(t, db, &model.User{}))
}

func TestConcurrentScopesAreIsolated(t *testing.T) {
	// Two sequential scopes on separate factories over the same database
	// must not observe each other's uncommitted writes; isolation itself is
	// the engine's job, so this only checks the handles stay independent.
	log := logger.NewNoopLogger()
	db := NewTestDB(t, log)
	tp := timeprovider.NewRealTimeProvider()
	first := NewUnitOfWorkFactory(db, log, tp)
	second := NewUnitOfWorkFactory(db, log, tp)
	ctx := context.Background()

	require.NoError(t, first.Execute(ctx, func(ctx context.Context, uow persistence.UnitOfWork) error {
		_, err := uow.Users().Add(ctx, entity.NewUser{Email: "a@example.com"})
		return err
	}))
	require.NoError(t, second.Execute(ctx, func(ctx context.Context, uow persistence.UnitOfWork) error {
		user, err := uow.Users().Get(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, user)
		return nil
	}))
}
