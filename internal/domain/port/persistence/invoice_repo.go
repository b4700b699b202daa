package persistence

import (
	"context"

	"github.com/amirhossein-jamali/billing-core/internal/domain/entity"
)

// InvoiceRepository persists invoices within the enclosing transaction
type InvoiceRepository interface {
	// Add persists a new invoice and returns it with its storage-assigned
	// ID, visible immediately within the enclosing transaction.
	//
	// Possible errors:
	// - ErrForeignKeyViolation: if the referenced user does not exist
	// - ErrDatabaseConnection: if the database cannot be reached
	Add(ctx context.Context, invoice entity.NewInvoice) (*entity.Invoice, error)
}
