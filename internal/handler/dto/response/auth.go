package response

import (
	"github.com/google/uuid"
)

type AuthorizedUserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type LoginResponse struct {
	AccessToken string                  `json:"access_token"`
	User        *AuthorizedUserResponse `json:"user"`
}
