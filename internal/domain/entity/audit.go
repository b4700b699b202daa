package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/billing-core/internal/domain/error"
)

// AuditEntry is an append-only log line. It has no identity in the domain
// and no relationships to other entities.
type AuditEntry struct {
	Message string
}

// Validate checks the audit entry against domain rules
func (e AuditEntry) Validate() error {
	if strings.TrimSpace(e.Message) == "" {
		return errs.ErrEmptyAuditMessage
	}
	return nil
}
