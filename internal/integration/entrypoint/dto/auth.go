package dto

import (
	"time"

	"github.com/rukun-warga/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for admin registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for admin login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminResponse represents the admin data in API responses.
type AdminResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken string        `json:"access_token"`
	Admin       AdminResponse `json:"admin"`
}

// ToAdminResponse converts a domain Admin entity to an AdminResponse DTO.
func ToAdminResponse(admin *entity.Admin) AdminResponse {
	return AdminResponse{
		ID:        admin.ID.String(),
		Name:      admin.Name,
		Email:     admin.Email,
		CreatedAt: admin.CreatedAt,
	}
}
