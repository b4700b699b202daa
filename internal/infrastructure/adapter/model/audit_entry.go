package model

import (
	"time"
)

// AuditEntry represents the append-only database record for audit entries.
// The ID exists only to key the table; the domain never reads it.
type AuditEntry struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Message   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for AuditEntry
func (AuditEntry) TableName() string {
	return "audit_entries"
}
