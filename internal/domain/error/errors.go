package error

import (
	"errors"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidEmail      = 4001
	CodeInvalidAmount     = 4002
	CodeInvalidUserID     = 4003
	CodeEmptyAuditMessage = 4004
	CodeDuplicateRecord   = 4005
	CodeUserNotFound      = 4040

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5001
	CodeUnitOfWorkClosed   = 5002
)

// Base error types
var (
	// ErrInvalidEmail is returned when a registration email is empty or malformed
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidAmount is returned when an invoice amount is zero or negative
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrEmptyAuditMessage is returned when an audit entry carries no message
	ErrEmptyAuditMessage = errors.New("audit message cannot be empty")

	// ErrUserNotFound is returned when the referenced user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateRecord is returned when a unique constraint is violated
	ErrDuplicateRecord = errors.New("record already exists")

	// ErrForeignKeyViolation is returned when a referential constraint is violated
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrUnitOfWorkClosed is returned when a repository or flush is used after
	// its unit of work reached a terminal state
	ErrUnitOfWorkClosed = errors.New("unit of work is closed")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsValidationError checks if the error is one of the domain validation errors
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrEmptyAuditMessage)
}

// IsInfrastructureError checks if the error originated below the repository
// interfaces rather than from a domain rule
func IsInfrastructureError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection) ||
		errors.Is(err, ErrDuplicateRecord) ||
		errors.Is(err, ErrForeignKeyViolation) ||
		errors.Is(err, ErrUnitOfWorkClosed) ||
		errors.Is(err, ErrInternalServer)
}

// ErrorCode maps an error to its standardized code
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidEmail):
		return CodeInvalidEmail
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrEmptyAuditMessage):
		return CodeEmptyAuditMessage
	case errors.Is(err, ErrDuplicateRecord), errors.Is(err, ErrForeignKeyViolation):
		return CodeDuplicateRecord
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	case errors.Is(err, ErrUnitOfWorkClosed):
		return CodeUnitOfWorkClosed
	default:
		return CodeInternalServer
	}
}
