package models

import "time"

// AuditLog represents the audit_logs table
// Used for security tracking of sign-in and administrative actions
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	HospitalID *uint     `gorm:"index" json:"hospitalId"`
	UserID     *uint     `gorm:"index" json:"userId"`
	Action     string    `gorm:"size:100;not null" json:"action"`
	Details    string    `gorm:"type:text" json:"details"`
	CreatedAt  time.Time `json:"createdAt"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
