package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateBookingRequest struct {
	ServiceID    string `json:"service_id" validate:"required,uuid"`
	EventDate    string `json:"event_date" validate:"required"` // Format: YYYY-MM-DD
	Slot         string `json:"slot" validate:"required,oneof=morning afternoon evening fullday"`
	Venue        string `json:"venue" validate:"required,min=2"`
	Address      string `json:"address" validate:"omitempty"`
	Phone        string `json:"phone" validate:"required,min=10,max=20"`
	CustomerName string `json:"customer_name" validate:"required,min=2"`
	Notes        string `json:"notes" validate:"omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=assigned planning materials ontheway setup complete"`
}

type AssignBookingRequest struct {
	// DecoratorID is nullable: null clears the current assignment.
	DecoratorID *string `json:"decorator_id" validate:"omitempty,uuid"`
	Team        string  `json:"team" validate:"omitempty,max=100"`
}

type MarkPaidRequest struct {
	TransactionID string `json:"transaction_id" validate:"required,min=3,max=100"`
}

// Response DTOs

type BookingResponse struct {
	ID                  uuid.UUID       `json:"id"`
	CustomerID          uuid.UUID       `json:"customer_id"`
	CustomerEmail       string          `json:"customer_email"`
	CustomerName        string          `json:"customer_name"`
	Phone               string          `json:"phone"`
	ServiceID           uuid.UUID       `json:"service_id"`
	ServiceTitle        string          `json:"service_title"`
	Price               decimal.Decimal `json:"price"`
	EventDate           string          `json:"event_date"`
	Slot                string          `json:"slot"`
	Venue               string          `json:"venue"`
	Address             string          `json:"address,omitempty"`
	Notes               string          `json:"notes,omitempty"`
	Status              string          `json:"status"`
	PaymentStatus       string          `json:"payment_status"`
	TransactionID       *string         `json:"transaction_id,omitempty"`
	AssignedDecoratorID *uuid.UUID      `json:"assigned_decorator_id,omitempty"`
	AssignedDecorator   string          `json:"assigned_decorator,omitempty"`
	AssignedTeam        string          `json:"assigned_team,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
