package service

import (
	"context"

	"github.com/amirhossein-jamali/billing-core/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/billing-core/internal/domain/port/core"
	"github.com/amirhossein-jamali/billing-core/internal/domain/port/persistence"
)

// AuditService appends audit entries within a unit-of-work scope
type AuditService struct {
	logger coreport.Logger
}

// NewAuditService creates a new AuditService instance
func NewAuditService(logger coreport.Logger) *AuditService {
	return &AuditService{logger: logger}
}

// Record appends an audit entry. The entry becomes durable only when the
// enclosing unit of work commits.
func (s *AuditService) Record(ctx context.Context, uow persistence.UnitOfWork, message string) error {
	entry := entity.AuditEntry{Message: message}
	if err := entry.Validate(); err != nil {
		return err
	}
	return uow.Audit().Record(ctx, entry)
}
