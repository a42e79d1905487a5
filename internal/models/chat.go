package models

import "time"

// ChatMessage is a direct message between two users of one hospital.
type ChatMessage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	HospitalID  uint      `gorm:"not null;index" json:"hospitalId"`
	SenderID    uint      `gorm:"not null;index" json:"senderId"`
	RecipientID uint      `gorm:"not null;index" json:"recipientId"`
	Body        string    `gorm:"type:text" json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName specifies the table name for ChatMessage model
func (ChatMessage) TableName() string {
	return "chat_messages"
}

// ChatAttachment is uploaded first and linked to a message afterwards.
type ChatAttachment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	HospitalID uint      `gorm:"not null;index" json:"hospitalId"`
	MessageID  *uint     `gorm:"index" json:"messageId"`
	UploadedBy uint      `gorm:"not null;index" json:"uploadedBy"`
	FileName   string    `gorm:"size:255;not null" json:"fileName"`
	FileURL    string    `gorm:"size:1024;not null" json:"fileUrl"`
	MimeType   string    `gorm:"size:100" json:"mimeType"`
	Size       int64     `json:"size"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TableName specifies the table name for ChatAttachment model
func (ChatAttachment) TableName() string {
	return "chat_attachments"
}
