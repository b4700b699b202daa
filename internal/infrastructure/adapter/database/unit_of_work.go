package database

import (
	"context"
	"fmt"

	errs "github.com/amirhossein-jamali/billing-core/internal/domain/error"
	coreport "github.com/amirhossein-jamali/billing-core/internal/domain/port/core"
	"github.com/amirhossein-jamali/billing-core/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/billing-core/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// GormUnitOfWork bundles the repositories bound to one transaction. It is
// created by the factory at scope entry and is single-use: once the scope
// exits, Flush and the repositories reject further work.
type GormUnitOfWork struct {
	tx       *gorm.DB
	users    persistence.UserRepository
	invoices persistence.InvoiceRepository
	audit    persistence.AuditRepository
	done     bool
}

// Users returns the user repository bound to this transaction
func (u *GormUnitOfWork) Users() persistence.UserRepository {
	return u.users
}

// Invoices returns the invoice repository bound to this transaction
func (u *GormUnitOfWork) Invoices() persistence.InvoiceRepository {
	return u.invoices
}

// Audit returns the audit repository bound to this transaction
func (u *GormUnitOfWork) Audit() persistence.AuditRepository {
	return u.audit
}

// Flush forces pending writes to be visible within the transaction. Inserts
// issued through the repositories already execute eagerly with their ids
// back-filled, so this only has to round-trip the connection to surface any
// deferred driver error.
func (u *GormUnitOfWork) Flush(ctx context.Context) error {
	if u.done {
		return errs.ErrUnitOfWorkClosed
	}
	if err := u.tx.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("%w: flush failed: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// GormUnitOfWorkFactory opens unit-of-work scopes over one shared
// database handle. Each scope owns a fresh transaction exclusively for its
// entire lifetime.
type GormUnitOfWorkFactory struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewUnitOfWorkFactory creates a new GormUnitOfWorkFactory
func NewUnitOfWorkFactory(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) persistence.UnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Execute begins a transaction, binds one instance of each repository to it
// and runs fn. A nil return commits; any error rolls back and is returned
// unchanged to the caller. The transaction is finalized exactly once on
// every exit path: a deferred rollback covers panics raised inside fn, and
// a commit failure is followed by a best-effort rollback so the handle is
// never leaked. A rollback failure after a scope-body error is logged and
// never masks the original error.
func (f *GormUnitOfWorkFactory) Execute(ctx context.Context, fn func(ctx context.Context, uow persistence.UnitOfWork) error) error {
	tx := f.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		f.logger.Error("Failed to begin transaction", map[string]any{
			"error": tx.Error.Error(),
		})
		return fmt.Errorf("%w: failed to begin transaction: %s", errs.ErrDatabaseConnection, tx.Error.Error())
	}

	uow := &GormUnitOfWork{
		tx:       tx,
		users:    repository.NewUserRepository(tx, f.timeProvider, f.logger),
		invoices: repository.NewInvoiceRepository(tx, f.timeProvider, f.logger),
		audit:    repository.NewAuditRepository(tx, f.timeProvider, f.logger),
	}
	f.logger.Debug("Unit of work opened", nil)

	defer func() {
		// Reached with an open transaction only when fn panicked. Release
		// the handle, then let the panic continue to the caller.
		if !uow.done {
			uow.done = true
			if rbErr := tx.Rollback().Error; rbErr != nil {
				f.logger.Error("Failed to roll back transaction after panic", map[string]any{
					"error": rbErr.Error(),
				})
			}
		}
	}()

	if err := fn(ctx, uow); err != nil {
		uow.done = true
		if rbErr := tx.Rollback().Error; rbErr != nil {
			f.logger.Error("Failed to roll back transaction", map[string]any{
				"error": rbErr.Error(),
				"cause": err.Error(),
			})
		} else {
			f.logger.Debug("Unit of work rolled back", map[string]any{
				"cause": err.Error(),
			})
		}
		return err
	}

	uow.done = true
	if err := tx.Commit().Error; err != nil {
		f.logger.Error("Failed to commit transaction", map[string]any{
			"error": err.Error(),
		})
		if rbErr := tx.Rollback().Error; rbErr != nil {
			f.logger.Warn("Rollback after failed commit", map[string]any{
				"error": rbErr.Error(),
			})
		}
		return fmt.Errorf("%w: failed to commit transaction: %s", errs.ErrDatabaseConnection, err.Error())
	}

	f.logger.Debug("Unit of work committed", nil)
	return nil
}
