package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRecordSucceeded is the only outcome this service records: the
// processor confirms the charge before markPaid is ever called.
const PaymentRecordSucceeded = "succeeded"

// Payment represents a completed payment recorded against a booking
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"booking_id"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	ServiceTitle  string          `gorm:"type:varchar(255);not null" json:"service_title"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	TransactionID string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"transaction_id"`
	Status        string          `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Booking  Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	Customer User    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}
