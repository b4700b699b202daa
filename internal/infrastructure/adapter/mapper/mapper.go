// Package mapper is the single translation point between domain values and
// database records. All functions are pure: no transaction access, no side
// effects, and each direction is the inverse of the other for every field
// that exists in both representations.
package mapper

import (
	"github.com/amirhossein-jamali/billing-core/internal/domain/entity"
	"github.com/amirhossein-jamali/billing-core/internal/infrastructure/adapter/model"
)

// NewUserRecord builds a user record from a registration request. The ID is
// left zero for the database to assign.
func NewUserRecord(user entity.NewUser) model.User {
	return model.User{Email: user.Email}
}

// UserFromRecord rebuilds the domain user from its record
func UserFromRecord(record model.User) entity.User {
	return entity.User{ID: record.ID, Email: record.Email}
}

// NewInvoiceRecord builds an invoice record from an invoice request. The ID
// is left zero for the database to assign.
func NewInvoiceRecord(invoice entity.NewInvoice) model.Invoice {
	return model.Invoice{
		UserID:      invoice.UserID,
		AmountCents: invoice.AmountCents,
	}
}

// InvoiceFromRecord rebuilds the domain invoice from its record
func InvoiceFromRecord(record model.Invoice) entity.Invoice {
	return entity.Invoice{
		ID:          record.ID,
		UserID:      record.UserID,
		AmountCents: record.AmountCents,
	}
}

// AuditEntryRecord builds an audit record from a domain entry. Audit entries
// are write-only, so there is no inverse mapping.
func AuditEntryRecord(entry entity.AuditEntry) model.AuditEntry {
	return model.AuditEntry{Message: entry.Message}
}
