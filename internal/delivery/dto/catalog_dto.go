package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateServiceRequest struct {
	Title        string          `json:"title" validate:"required,min=3,max=255"`
	Description  string          `json:"description" validate:"omitempty"`
	Price        decimal.Decimal `json:"price" validate:"required"`
	Category     string          `json:"category" validate:"required,oneof=home ceremony corporate"`
	Type         string          `json:"type" validate:"required,oneof=studio onsite both"`
	DurationMins int             `json:"duration_mins" validate:"omitempty,gte=15,lte=1440"`
	ImageURL     string          `json:"image_url" validate:"omitempty,url"`
	Tags         []string        `json:"tags" validate:"omitempty,dive,min=1"`
	Active       *bool           `json:"active" validate:"omitempty"`
}

type UpdateServiceRequest struct {
	Title        string          `json:"title" validate:"required,min=3,max=255"`
	Description  string          `json:"description" validate:"omitempty"`
	Price        decimal.Decimal `json:"price" validate:"required"`
	Category     string          `json:"category" validate:"required,oneof=home ceremony corporate"`
	Type         string          `json:"type" validate:"required,oneof=studio onsite both"`
	DurationMins int             `json:"duration_mins" validate:"omitempty,gte=15,lte=1440"`
	ImageURL     string          `json:"image_url" validate:"omitempty,url"`
	Tags         []string        `json:"tags" validate:"omitempty,dive,min=1"`
	Active       *bool           `json:"active" validate:"omitempty"`
}

// Response DTOs

type ServiceResponse struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	Type         string          `json:"type"`
	DurationMins int             `json:"duration_mins"`
	ImageURL     string          `json:"image_url,omitempty"`
	Tags         []string        `json:"tags,omitempty"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
