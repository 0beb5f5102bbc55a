package model

import (
	"time"

	"github.com/google/uuid"
)

// MerchantListingModel mirrors the 'merchant_listings' table. PostgreSQL
// generates UUIDs via uuid_generate_v7().
type MerchantListingModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PrincipalID         string    `gorm:"type:varchar(128);unique;not null"`
	BusinessName        string    `gorm:"type:varchar(100);not null"`
	BusinessCategory    string    `gorm:"type:varchar(64);not null"`
	BusinessAddress     string    `gorm:"type:varchar(255)"`
	BusinessDescription string    `gorm:"type:text"`
	BusinessWebsite     string    `gorm:"type:varchar(255)"`
	BusinessLogoURL     string    `gorm:"type:varchar(255)"`
	Likes               int       `gorm:"not null;default:0"`
	Dislikes            int       `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantListingModel) TableName() string {
	return "merchant_listings"
}
