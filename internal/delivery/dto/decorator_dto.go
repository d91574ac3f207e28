package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDecoratorRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FullName  string `json:"full_name" validate:"required,min=2"`
	Specialty string `json:"specialty" validate:"required,min=2,max=100"`
	TeamName  string `json:"team_name" validate:"omitempty,max=100"`
	Biography string `json:"biography" validate:"omitempty"`
	PhotoURL  string `json:"photo_url" validate:"omitempty,url"`
}

type UpdateDecoratorRequest struct {
	FullName  string `json:"full_name" validate:"required,min=2"`
	Specialty string `json:"specialty" validate:"required,min=2,max=100"`
	TeamName  string `json:"team_name" validate:"omitempty,max=100"`
	Biography string `json:"biography" validate:"omitempty"`
	PhotoURL  string `json:"photo_url" validate:"omitempty,url"`
}

type SetDecoratorActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// Response DTOs

type DecoratorResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	Specialty string    `json:"specialty"`
	TeamName  string    `json:"team_name,omitempty"`
	Biography string    `json:"biography,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

type DecoratorProfileResponse struct {
	Specialty string  `json:"specialty"`
	TeamName  string  `json:"team_name,omitempty"`
	Biography string  `json:"biography,omitempty"`
	PhotoURL  string  `json:"photo_url,omitempty"`
	Rating    float64 `json:"rating"`
}

type DecoratorListResponse struct {
	Decorators []DecoratorResponse `json:"decorators"`
	Total      int                 `json:"total"`
}
