package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service category constants
const (
	ServiceCategoryHome      = "home"
	ServiceCategoryCeremony  = "ceremony"
	ServiceCategoryCorporate = "corporate"
)

// Service type constants: where the decoration is performed
const (
	ServiceTypeStudio = "studio"
	ServiceTypeOnsite = "onsite"
	ServiceTypeBoth   = "both"
)

// DecorService represents a bookable decoration package in the catalog
type DecorService struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title        string          `gorm:"type:varchar(255);not null" json:"title"`
	Description  string          `gorm:"type:text" json:"description,omitempty"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Category     string          `gorm:"type:varchar(50);not null;index" json:"category"`
	Type         string          `gorm:"type:varchar(20);not null;index" json:"type"`
	DurationMins int             `gorm:"not null;default:60" json:"duration_mins"`
	ImageURL     string          `gorm:"type:text" json:"image_url,omitempty"`
	Tags         Tags            `gorm:"type:jsonb" json:"tags,omitempty"`
	Active       bool            `gorm:"not null;default:true;index" json:"active"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DecorService) TableName() string {
	return "decor_services"
}

// Tags is a string list stored as JSONB
type Tags []string

// Value implements driver.Valuer
func (t Tags) Value() (driver.Value, error) {
	if len(t) == 0 {
		return nil, nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner
func (t *Tags) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []string
	err := json.Unmarshal(bytes, &result)
	*t = Tags(result)
	return err
}
