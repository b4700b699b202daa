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

// AuditRepository implements persistence.AuditRepository using GORM, bound
// to the transaction handle of its enclosing unit of work
type AuditRepository struct {
	tx              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAuditRepository creates an AuditRepository bound to the given transaction
func NewAuditRepository(tx *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AuditRepository {
	return &AuditRepository{
		tx:              tx,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Record appends an audit entry to the transaction's pending writes.
// The generated key is discarded; the entry is durable only at commit.
func (r *AuditRepository) Record(ctx context.Context, entry entity.AuditEntry) error {
	record := mapper.AuditEntryRecord(entry)
	record.CreatedAt = r.timeProvider.Now()

	if result := r.tx.WithContext(ctx).Create(&record); result.Error != nil {
		r.logger.Error("Database error when recording audit entry", map[string]any{
			"error": result.Error.Error(),
		})
		if r.errorClassifier.IsClosedTransactionError(result.Error) {
			return errs.ErrUnitOfWorkClosed
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return nil
}
