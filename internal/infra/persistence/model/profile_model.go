package model

import (
	"time"
)

// UserProfileModel mirrors the 'user_profiles' table, one of the two profile
// partitions. The principal ID comes from the identity provider, so no UUID
// is generated here.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserProfileModel struct {
	PrincipalID string `gorm:"type:varchar(128);primaryKey"`
	Email       string `gorm:"type:varchar(255)"`
	Name        string `gorm:"type:varchar(100);not null"`
	Phone       string `gorm:"type:varchar(32);not null"`
	Age         uint   `gorm:"not null"`
	Gender      string `gorm:"type:varchar(32);not null"`
	Disabled    bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// MerchantProfileModel mirrors the 'merchant_profiles' table, the second
// profile partition.
type MerchantProfileModel struct {
	PrincipalID         string `gorm:"type:varchar(128);primaryKey"`
	Email               string `gorm:"type:varchar(255)"`
	OwnerName           string `gorm:"type:varchar(100);not null"`
	Phone               string `gorm:"type:varchar(32);not null"`
	BusinessName        string `gorm:"type:varchar(100);not null"`
	BusinessAddress     string `gorm:"type:varchar(255);not null"`
	BusinessDescription string `gorm:"type:text;not null"`
	BusinessCategory    string `gorm:"type:varchar(64);not null"`
	BusinessWebsite     string `gorm:"type:varchar(255)"`
	BusinessLogoURL     string `gorm:"type:varchar(255)"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantProfileModel) TableName() string {
	return "merchant_profiles"
}
