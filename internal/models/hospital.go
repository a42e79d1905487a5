package models

import "time"

// Hospital is the tenant. Every scoped table carries its ID.
type Hospital struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Code           string    `gorm:"size:50;uniqueIndex" json:"code"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	LogoURL        string    `gorm:"size:512" json:"logoUrl"`
	PrimaryColor   string    `gorm:"size:20" json:"primaryColor"`
	SecondaryColor string    `gorm:"size:20" json:"secondaryColor"`
	Tagline        string    `gorm:"size:255" json:"tagline"`
	IsActive       bool      `gorm:"default:true" json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}

// HospitalTheme is the branding projection served to the UI.
type HospitalTheme struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	LogoURL        string `json:"logoUrl"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	Tagline        string `json:"tagline"`
}
