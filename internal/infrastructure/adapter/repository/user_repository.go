package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/billing-core/internal/domain/entity"
	errs "github.com/amirhossein-jamali/billing-core/internal/domain/error"
	coreport "github.com/amirhossein-jamali/billing-core/internal/domain/port/core"
	"github.com/amirhossein-jamali/billing-core/internal/infrastructure/adapter/mapper"
	"github.com/amirhossein-jamali/billing-core/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements persistence.UserRepository using GORM. It is
// bound to the transaction handle it was constructed with and shares that
// handle's lifetime; it never commits or rolls back.
type UserRepository struct {
	tx              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a UserRepository bound to the given transaction
func NewUserRepository(tx *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		tx:              tx,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	switch {
	case r.errorClassifier.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %s", errs.ErrDuplicateRecord, err.Error())
	case r.errorClassifier.IsClosedTransactionError(err):
		return errs.ErrUnitOfWorkClosed
	case r.errorClassifier.IsConnectionError(err):
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
}

// Get retrieves a user by ID from the transaction's view of storage.
// A missing user returns (nil, nil).
func (r *UserRepository) Get(ctx context.Context, id uint64) (*entity.User, error) {
	var record model.User
	result := r.tx.WithContext(ctx).First(&record, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, r.handleDatabaseError("getting user", result.Error)
	}

	user := mapper.UserFromRecord(record)
	return &user, nil
}

// Add persists a new user. The INSERT runs immediately inside the
// transaction and the generated ID is back-filled into the record, so the
// returned user is usable by later steps of the same scope before commit.
func (r *UserRepository) Add(ctx context.Context, user entity.NewUser) (*entity.User, error) {
	record := mapper.NewUserRecord(user)
	record.CreatedAt = r.timeProvider.Now()

	if result := r.tx.WithContext(ctx).Create(&record); result.Error != nil {
		return nil, r.handleDatabaseError("creating user", result.Error)
	}

	r.logger.Debug("User record created", map[string]any{
		"user_id": record.ID,
	})

	created := mapper.UserFromRecord(record)
	return &created, nil
}
