package repository

import (
	"strings"
)

// ErrorClassifier recognizes driver-level error classes by message, since
// the postgres and sqlite drivers surface them as bare errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}

// IsForeignKeyError checks if the error is a referential constraint violation
func (c *ErrorClassifier) IsForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint")
}

// IsConnectionError checks if the error indicates the database is unreachable
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no connection") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "database is closed")
}

// IsClosedTransactionError checks if the error indicates the transaction
// handle already reached a terminal state
func (c *ErrorClassifier) IsClosedTransactionError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already been committed or rolled back") ||
		strings.Contains(msg, "transaction has already been committed") ||
		strings.Contains(msg, "invalid transaction")
}
