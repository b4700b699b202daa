package service

import (
	"context"
	"testing"

	errs "github.com/amirhossein-jamali/billing-core/internal/domain/error"
	"github.com/amirhossein-jamali/billing-core/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(logger.NewNoopLogger())

	t.Run("Successful registration returns assigned id", func(t *testing.T) {
		uow := newFakeUnitOfWork()

		id, err := svc.RegisterUser(ctx, uow, "a@example.com")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), id)
		assert.Equal(t, "a@example.com", uow.users.users[id].Email)
	})

	t.Run("Ids are assigned exactly once and never reused", func(t *testing.T) {
		uow := newFakeUnitOfWork()

		first, err := svc.RegisterUser(ctx, uow, "a@example.com")
		require.NoError(t, err)
		second, err := svc.RegisterUser(ctx, uow, "b@example.com")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Invalid email fails before touching the repository", func(t *testing.T) {
		uow := newFakeUnitOfWork()

		_, err := svc.RegisterUser(ctx, uow, "not-an-email")

		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
		assert.Empty(t, uow.users.users)
	})

	t.Run("Infrastructure error propagates unchanged", func(t *testing.T) {
		uow := newFakeUnitOfWork()
		uow.users.addErr = errs.ErrDatabaseConnection

		_, err := svc.RegisterUser(ctx, uow, "a@example.com")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(logger.NewNoopLogger())

	t.Run("Existing user", func(t *testing.T) {
		uow := newFakeUnitOfWork()
		id, err := svc.RegisterUser(ctx, uow, "a@example.com")
		require.NoError(t, err)

		user, err := svc.GetUser(ctx, uow, id)

		require.NoError(t, err)
		assert.Equal(t, "a@example.com", user.Email)
	})

	t.Run("Missing user yields domain error", func(t *testing.T) {
		uow := newFakeUnitOfWork()

		_, err := svc.GetUser(ctx, uow, 99)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Zero id is rejected", func(t *testing.T) {
		uow := newFakeUnitOfWork()

		_, err := svc.GetUser(ctx, uow, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
