package dto

// RegisterUserRequest represents the API request to register a user
type RegisterUserRequest struct {
	Email string `json:"email" binding:"required"`
}

// RegisterUserResponse represents the API response after registration
type RegisterUserResponse struct {
	UserID uint64 `json:"userId"`
}

// UserResponse represents the API response for a user lookup
type UserResponse struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
}
