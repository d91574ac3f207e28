package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

// Work steps in display order, then the terminal cancel state. A decorator
// may (re)select any work step; complete and cancelled accept no further
// transition.
const (
	BookingStatusAssigned  BookingStatus = "assigned"
	BookingStatusPlanning  BookingStatus = "planning"
	BookingStatusMaterials BookingStatus = "materials"
	BookingStatusOnTheWay  BookingStatus = "ontheway"
	BookingStatusSetup     BookingStatus = "setup"
	BookingStatusComplete  BookingStatus = "complete"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// WorkSteps is the ordered progress sequence shown on the booking timeline.
var WorkSteps = []BookingStatus{
	BookingStatusAssigned,
	BookingStatusPlanning,
	BookingStatusMaterials,
	BookingStatusOnTheWay,
	BookingStatusSetup,
	BookingStatusComplete,
}

// ParseBookingStatus validates a raw status string
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingStatusAssigned, BookingStatusPlanning, BookingStatusMaterials,
		BookingStatusOnTheWay, BookingStatusSetup, BookingStatusComplete,
		BookingStatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %s", s)
	}
}

// IsTerminal reports whether no further transition is permitted from s.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusComplete || s == BookingStatusCancelled
}

// IsWorkStep reports whether s is a selectable progress step (anything but
// cancelled).
func (s BookingStatus) IsWorkStep() bool {
	for _, step := range WorkSteps {
		if s == step {
			return true
		}
	}
	return false
}

// StepIndex returns the zero-based position of s in the work sequence, -1 for
// cancelled or unknown values.
func (s BookingStatus) StepIndex() int {
	for i, step := range WorkSteps {
		if s == step {
			return i
		}
	}
	return -1
}

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// Booking represents a customer's reservation of a decoration service.
// Customer and service fields are snapshots taken at creation and never
// recalculated afterwards.
type Booking struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	CustomerEmail string          `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerName  string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	Phone         string          `gorm:"type:varchar(20);not null" json:"phone"`
	ServiceID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"service_id"`
	ServiceTitle  string          `gorm:"type:varchar(255);not null" json:"service_title"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	EventDate     time.Time       `gorm:"type:date;not null" json:"event_date"`
	Slot          string          `gorm:"type:varchar(50);not null" json:"slot"`
	Venue         string          `gorm:"type:varchar(255);not null" json:"venue"`
	Address       string          `gorm:"type:text" json:"address,omitempty"`
	Notes         string          `gorm:"type:text" json:"notes,omitempty"`

	Status              BookingStatus `gorm:"type:varchar(20);not null;default:'assigned';index" json:"status"`
	PaymentStatus       PaymentStatus `gorm:"type:varchar(10);not null;default:'unpaid';index" json:"payment_status"`
	TransactionID       *string       `gorm:"type:varchar(100)" json:"transaction_id,omitempty"`
	AssignedDecoratorID *uuid.UUID    `gorm:"type:uuid;index" json:"assigned_decorator_id,omitempty"`
	AssignedTeam        string        `gorm:"type:varchar(100)" json:"assigned_team,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Customer          User  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	AssignedDecorator *User `gorm:"foreignKey:AssignedDecoratorID" json:"assigned_decorator,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsPaid checks if the booking has a recorded payment
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == PaymentStatusPaid
}

// IsCancelled checks if the booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// IsComplete checks if the booking has reached the final work step
func (b *Booking) IsComplete() bool {
	return b.Status == BookingStatusComplete
}

// IsTerminal checks if the booking accepts no further status mutation
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}

// IsOwnedBy checks if the booking belongs to the given customer
func (b *Booking) IsOwnedBy(customerID uuid.UUID) bool {
	return b.CustomerID == customerID
}

// IsAssignedTo checks if the booking is assigned to the given decorator
func (b *Booking) IsAssignedTo(decoratorID uuid.UUID) bool {
	return b.AssignedDecoratorID != nil && *b.AssignedDecoratorID == decoratorID
}
