package persistence

import (
	"context"

	"github.com/amirhossein-jamali/billing-core/internal/domain/entity"
)

// AuditRepository appends audit entries within the enclosing transaction.
// Entries are fire-and-forget: the domain never reads them back and they
// become durable only when the unit of work commits.
type AuditRepository interface {
	Record(ctx context.Context, entry entity.AuditEntry) error
}
