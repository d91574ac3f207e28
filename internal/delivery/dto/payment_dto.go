package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePaymentIntentRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

// Response DTOs

type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret,omitempty"`
	AlreadyPaid  bool   `json:"already_paid,omitempty"`
}

type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	BookingID     uuid.UUID       `json:"booking_id"`
	ServiceTitle  string          `json:"service_title"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transaction_id"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}
