package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/billing-core/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/billing-core/internal/domain/error"
	coreport "github.com/amirhossein-jamali/billing-core/internal/domain/port/core"
	"github.com/amirhossein-jamali/billing-core/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/billing-core/internal/domain/service"
	"github.com/amirhossein-jamali/billing-core/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests. Each request runs in its
// own unit-of-work scope opened through the factory.
type UserHandler struct {
	uowFactory persistence.UnitOfWorkFactory
	users      *service.UserService
	logger     coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(uowFactory persistence.UnitOfWorkFactory, users *service.UserService, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		uowFactory: uowFactory,
		users:      users,
		logger:     logger,
	}
}

// RegisterUser handles the POST /users endpoint
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidEmail),
			Message: "Invalid request body",
		})
		return
	}

	var userID uint64
	err := h.uowFactory.Execute(c.Request.Context(), func(ctx context.Context, uow persistence.UnitOfWork) error {
		id, err := h.users.RegisterUser(ctx, uow, req.Email)
		if err != nil {
			return err
		}
		userID = id
		return nil
	})
	if err != nil {
		status, message := statusForError(err)
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterUserResponse{UserID: userID})
}

// GetUser handles the GET /users/:userId endpoint
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID format",
		})
		return
	}

	var user *entity.User
	err = h.uowFactory.Execute(c.Request.Context(), func(ctx context.Context, uow persistence.UnitOfWork) error {
		found, err := h.users.GetUser(ctx, uow, userID)
		if err != nil {
			return err
		}
		user = found
		return nil
	})
	if err != nil {
		status, message := statusForError(err)
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{ID: user.ID, Email: user.Email})
}
