package entity

import "github.com/google/uuid"

// CustomerProfile represents customer-specific profile data
type CustomerProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	PhoneNumber string    `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bookings []Booking `gorm:"foreignKey:CustomerID" json:"bookings,omitempty"`
}

func (CustomerProfile) TableName() string {
	return "customer_profiles"
}
