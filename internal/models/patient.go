package models

import "time"

// HMO is a health maintenance organisation a patient can be enrolled with.
type HMO struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	HospitalID uint      `gorm:"not null;index" json:"hospitalId"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Code       string    `gorm:"size:50" json:"code"`
	Active     bool      `gorm:"default:true" json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TableName specifies the table name for HMO model
func (HMO) TableName() string {
	return "hmos"
}

// Patient extends a patient-role User with clinical and billing links.
type Patient struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	HospitalID        uint       `gorm:"not null;index" json:"hospitalId"`
	UserID            uint       `gorm:"not null;uniqueIndex" json:"userId"`
	HMOID             *uint      `gorm:"column:hmo_id;index" json:"hmoId"`
	CorporateClientID *uint      `gorm:"index" json:"corporateClientId"`
	DateOfBirth       *time.Time `gorm:"type:date" json:"dateOfBirth"`
	Gender            string     `gorm:"size:20" json:"gender"`
	Phone             string     `gorm:"size:30" json:"phone"`
	Address           string     `gorm:"type:text" json:"address"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`

	User            *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	HMO             *HMO             `gorm:"foreignKey:HMOID" json:"hmo,omitempty"`
	CorporateClient *CorporateClient `gorm:"foreignKey:CorporateClientID" json:"corporateClient,omitempty"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
