package model

import (
	"time"

	"github.com/google/uuid"
)

// TripPlanModel mirrors the 'travel_details' table.
type TripPlanModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PrincipalID   string    `gorm:"type:varchar(128);not null;index"`
	Travelers     int       `gorm:"not null"`
	Origin        string    `gorm:"type:varchar(255);not null"`
	VisitDate     time.Time `gorm:"not null"`
	DaysOfVisit   int       `gorm:"not null"`
	PlacesToVisit string    `gorm:"type:text;not null"`
	CurrentStay   string    `gorm:"type:varchar(255);not null"`
	Purpose       string    `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (TripPlanModel) TableName() string {
	return "travel_details"
}
