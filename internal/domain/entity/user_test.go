package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/billing-core/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestNewUserValidate(t *testing.T) {
	t.Run("Valid email", func(t *testing.T) {
		assert.NoError(t, NewUser{Email: "a@example.com"}.Validate())
	})

	t.Run("Empty email", func(t *testing.T) {
		assert.ErrorIs(t, NewUser{Email: ""}.Validate(), errs.ErrInvalidEmail)
	})

	t.Run("Whitespace email", func(t *testing.T) {
		assert.ErrorIs(t, NewUser{Email: "   "}.Validate(), errs.ErrInvalidEmail)
	})

	t.Run("Missing at sign", func(t *testing.T) {
		assert.ErrorIs(t, NewUser{Email: "not-an-email"}.Validate(), errs.ErrInvalidEmail)
	})
}
