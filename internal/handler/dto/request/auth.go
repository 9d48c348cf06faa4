package request

import (
	"court-booking/internal/pkg/patch"
	"court-booking/internal/usecase/commands"
)

type RegisterRequest struct {
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Phone    *string `json:"phone"`
	Language *string `json:"language"`
}

// ToInput leaves format rules to the domain so messages stay consistent.
func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Phone:    patch.Coalesce(r.Phone, ""),
		Language: patch.Coalesce(r.Language, ""),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ExternalLoginRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}
