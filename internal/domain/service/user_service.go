package service

import (
	"context"

	"github.com/amirhossein-jamali/billing-core/internal/domain/entity"
	errs "github.com/amirhossein-jamali/billing-core/internal/domain/error"
	coreport "github.com/amirhossein-jamali/billing-core/internal/domain/port/core"
	"github.com/amirhossein-jamali/billing-core/internal/domain/port/persistence"
)

// UserService implements user registration over the repository ports.
// It is stateless: the caller passes in the unit of work whose scope the
// operation should run under.
type UserService struct {
	logger coreport.Logger
}

// NewUserService creates a new UserService instance
func NewUserService(logger coreport.Logger) *UserService {
	return &UserService{logger: logger}
}

// RegisterUser creates a user and returns its storage-assigned ID. The ID
// is usable by subsequent steps inside the same unit-of-work scope.
func (s *UserService) RegisterUser(ctx context.Context, uow persistence.UnitOfWork, email string) (uint64, error) {
	req := entity.NewUser{Email: email}
	if err := req.Validate(); err != nil {
		return 0, err
	}

	user, err := uow.Users().Add(ctx, req)
	if err != nil {
		return 0, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return user.ID, nil
}

// GetUser looks up a user by ID, failing with ErrUserNotFound when the
// user does not exist
func (s *UserService) GetUser(ctx context.Context, uow persistence.UnitOfWork, id uint64) (*entity.User, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}
	user, err := uow.Users().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.ErrUserNotFound
	}
	return user, nil
}
