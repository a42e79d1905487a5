package models

import "time"

// User is any person who can sign in, staff or patient.
// Users are deactivated through Active, never deleted.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	HospitalID   uint      `gorm:"not null;index" json:"hospitalId"`
	Name         string    `gorm:"size:150;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null;size:191" json:"email"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	Role         Role      `gorm:"type:enum('admin','doctor','nurse','receptionist','pharmacist','cashier','lab_tech','patient','super_admin');not null" json:"role"`
	Active       bool      `gorm:"default:true" json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// UserSummary is the minimal public shape of a user.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StaffMember is a directory row.
type StaffMember struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Active bool   `json:"active"`
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	TokenHash string    `gorm:"not null;size:255;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
