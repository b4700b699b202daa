package entity

import (
	errs "github.com/amirhossein-jamali/billing-core/internal/domain/error"
)

// NewInvoice is a request to issue an invoice against an existing user.
// Amounts are stored in cents to avoid floating point precision issues.
type NewInvoice struct {
	UserID      uint64
	AmountCents int64
}

// Validate checks the invoice request against domain rules
func (i NewInvoice) Validate() error {
	if i.UserID == 0 {
		return errs.ErrInvalidUserID
	}
	if i.AmountCents <= 0 {
		return errs.ErrInvalidAmount
	}
	return nil
}

// Invoice represents an issued invoice with a storage-assigned identity
type Invoice struct {
	ID          uint64
	UserID      uint64
	AmountCents int64
}
