package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/billing-core/internal/domain/error"
)

// NewUser is a request to register a user. It carries no identity;
// the persistence layer assigns one at creation time.
type NewUser struct {
	Email string
}

// Validate checks the registration request against domain rules
func (u NewUser) Validate() error {
	email := strings.TrimSpace(u.Email)
	if email == "" || !strings.Contains(email, "@") {
		return errs.ErrInvalidEmail
	}
	return nil
}

// User represents a registered user with a storage-assigned identity
type User struct {
	ID    uint64
	Email string
}
