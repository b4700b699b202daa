package persistence

import (
	"context"
)

// UnitOfWork exposes a fixed bundle of repositories bound to one shared
// transaction. All writes made through its repositories become durable
// together at commit or are discarded together at rollback.
//
// A UnitOfWork is single-use and only valid inside the Execute scope that
// produced it. Using its repositories or Flush after the scope has exited
// fails with ErrUnitOfWorkClosed.
type UnitOfWork interface {
	// Users returns the user repository bound to this transaction
	Users() UserRepository

	// Invoices returns the invoice repository bound to this transaction
	Invoices() InvoiceRepository

	// Audit returns the audit repository bound to this transaction
	Audit() AuditRepository

	// Flush forces pending writes to be visible for subsequent reads within
	// the same transaction, without ending it
	Flush(ctx context.Context) error
}

// UnitOfWorkFactory opens unit-of-work scopes. Execute begins a fresh
// transaction, hands a UnitOfWork bound to it to fn, and finalizes on exit:
// commit if fn returned nil, rollback otherwise. The transaction handle is
// released exactly once on every exit path, including panics. When fn
// returns an error, rollback failures are logged and the original error is
// the one returned to the caller.
type UnitOfWorkFactory interface {
	Execute(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
}
