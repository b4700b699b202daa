package model

import (
	"time"
)

// Invoice represents the database record for invoices.
// UserID carries a foreign key to users.id; the constraint itself is
// installed by the migration manager so the record stays a flat row.
type Invoice struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index:idx_invoices_user_id"`
	AmountCents int64     `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Invoice
func (Invoice) TableName() string {
	return "invoices"
}
