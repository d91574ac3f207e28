package entity

import "github.com/google/uuid"

// DecoratorProfile represents decorator-specific profile data
type DecoratorProfile struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialty string    `gorm:"type:varchar(100);not null;index" json:"specialty"`
	TeamName  string    `gorm:"type:varchar(100)" json:"team_name,omitempty"`
	Biography string    `gorm:"type:text" json:"biography,omitempty"`
	PhotoURL  string    `gorm:"type:text" json:"photo_url,omitempty"`
	Rating    float64   `gorm:"type:numeric(2,1);default:0" json:"rating"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DecoratorProfile) TableName() string {
	return "decorator_profiles"
}
