package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role             Role              `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	DecoratorProfile *DecoratorProfile `gorm:"foreignKey:UserID" json:"decorator_profile,omitempty"`
	CustomerProfile  *CustomerProfile  `gorm:"foreignKey:UserID" json:"customer_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsDecorator checks if the user holds the decorator role
func (u *User) IsDecorator() bool {
	return u.RoleID == RoleIDDecorator
}

// Actor is the verified identity+role pair handed to every usecase call.
// Handlers build it from JWT claims; usecases never read it from ambient
// context.
type Actor struct {
	UserID uuid.UUID
	Email  string
	RoleID int
}

func (a Actor) IsAdmin() bool {
	return a.RoleID == RoleIDAdmin
}

func (a Actor) IsDecorator() bool {
	return a.RoleID == RoleIDDecorator
}

func (a Actor) IsCustomer() bool {
	return a.RoleID == RoleIDCustomer
}
