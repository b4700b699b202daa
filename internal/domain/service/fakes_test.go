package service

import (
	"context"

	"github.com/amirhossein-jamali/billing-core/internal/domain/entity"
	"github.com/amirhossein-jamali/billing-core/internal/domain/port/persistence"
)

// In-memory doubles for the persistence ports. They emulate the contract the
// GORM adapters provide: ids assigned at add time, visible within the scope.

type fakeUserRepo struct {
	users  map[uint64]entity.User
	nextID uint64
	getErr error
	addErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]entity.User)}
}

func (r *fakeUserRepo) Get(_ context.Context, id uint64) (*entity.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *fakeUserRepo) Add(_ context.Context, user entity.NewUser) (*entity.User, error) {
	if r.addErr != nil {
		return nil, r.addErr
	}
	r.nextID++
	created := entity.User{ID: r.nextID, Email: user.Email}
	r.users[created.ID] = created
	return &created, nil
}

type fakeInvoiceRepo struct {
	invoices map[uint64]entity.Invoice
	nextID   uint64
	addErr   error
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uint64]entity.Invoice)}
}

func (r *fakeInvoiceRepo) Add(_ context.Context, invoice entity.NewInvoice) (*entity.Invoice, error) {
	if r.addErr != nil {
		return nil, r.addErr
	}
	r.nextID++
	created := entity.Invoice{ID: r.nextID, UserID: invoice.UserID, AmountCents: invoice.AmountCents}
	r.invoices[created.ID] = created
	return &created, nil
}

type fakeAuditRepo struct {
	entries   []entity.AuditEntry
	recordErr error
}

func (r *fakeAuditRepo) Record(_ context.Context, entry entity.AuditEntry) error {
	if r.recordErr != nil {
		return r.recordErr
	}
	r.entries = append(r.entries, entry)
	return nil
}

type fakeUnitOfWork struct {
	users    *fakeUserRepo
	invoices *fakeInvoiceRepo
	audit    *fakeAuditRepo
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		users:    newFakeUserRepo(),
		invoices: newFakeInvoiceRepo(),
		audit:    &fakeAuditRepo{},
	}
}

func (u *fakeUnitOfWork) Users() persistence.UserRepository       { return u.users }
func (u *fakeUnitOfWork) Invoices() persistence.InvoiceRepository { return u.invoices }
func (u *fakeUnitOfWork) Audit() persistence.AuditRepository      { return u.audit }
func (u *fakeUnitOfWork) Flush(context.Context) error             { return nil }

// fakeUowFactory runs scopes against one shared fake unit of work and
// records which exit path each scope took
type fakeUowFactory struct {
	uow        *fakeUnitOfWork
	commits    int
	rollbacks  int
	executeErr error
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{uow: newFakeUnitOfWork()}
}

func (f *fakeUowFactory) Execute(ctx context.Context, fn func(ctx context.Context, uow persistence.UnitOfWork) error) error {
	if f.executeErr != nil {
		return f.executeErr
	}
	if err := fn(ctx, f.uow); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}
