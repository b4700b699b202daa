package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/billing-core/internal/domain/entity"
	errs "github.com/amirhossein-jamali/billing-core/internal/domain/error"
	coreport "github.com/amirhossein-jamali/billing-core/internal/domain/port/core"
	"github.com/amirhossein-jamali/billing-core/internal/infrastructure/adapter/mapper"
	"gorm.io/gorm"
)

// InvoiceRepository implements persistence.InvoiceRepository using GORM,
// bound to the transaction handle of its enclosing unit of work
type InvoiceRepository struct {
	tx              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewInvoiceRepository creates an InvoiceRepository bound to the given transaction
func NewInvoiceRepository(tx *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *InvoiceRepository {
	return &InvoiceRepository{
		tx:              tx,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Add persists a new invoice. The generated ID is back-filled by the driver
// at INSERT time, making it visible without ending the transaction.
func (r *InvoiceRepository) Add(ctx context.Context, invoice entity.NewInvoice) (*entity.Invoice, error) {
	record := mapper.NewInvoiceRecord(invoice)
	record.CreatedAt = r.timeProvider.Now()

	if result := r.tx.WithContext(ctx).Create(&record); result.Error != nil {
		r.logger.Error("Database error when creating invoice", map[string]any{
			"user_id": invoice.UserID,
			"error":   result.Error.Error(),
		})

		switch {
		case r.errorClassifier.IsForeignKeyError(result.Error):
			return nil, fmt.Errorf("%w: %s", errs.ErrForeignKeyViolation, result.Error.Error())
		case r.errorClassifier.IsClosedTransactionError(result.Error):
			return nil, errs.ErrUnitOfWorkClosed
		default:
			return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
		}
	}

	r.logger.Debug("Invoice record created", map[string]any{
		"invoice_id": record.ID,
		"user_id":    record.UserID,
	})

	created := mapper.InvoiceFromRecord(record)
	return &created, nil
}
