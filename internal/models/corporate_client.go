package models

import "time"

// CorporateClient is a company billed for its employees' care.
type CorporateClient struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	HospitalID    uint      `gorm:"not null;index" json:"hospitalId"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	ContactPerson string    `gorm:"size:150" json:"contactPerson"`
	Email         string    `gorm:"size:191" json:"email"`
	Phone         string    `gorm:"size:30" json:"phone"`
	Active        bool      `gorm:"default:true" json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TableName specifies the table name for CorporateClient model
func (CorporateClient) TableName() string {
	return "corporate_clients"
}
