package repository

import (
	"context"
	"errors"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/models"

	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepo(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// GetAttachment retrieves an attachment of a hospital by ID
func (r *ChatRepository) GetAttachment(ctx context.Context, hospitalID, id uint) (*models.ChatAttachment, error) {
	var attachment models.ChatAttachment
	err := r.db.WithContext(ctx).
		Where("id = ? AND hospital_id = ?", id, hospitalID).
		First(&attachment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("attachment not found")
		}
		return nil, apperr.Upstream("find attachment", err)
	}
	return &attachment, nil
}

// MessageExists reports whether a message belongs to the hospital.
func (r *ChatRepository) MessageExists(ctx context.Context, hospitalID, messageID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ChatMessage{}).
		Where("id = ? AND hospital_id = ?", messageID, hospitalID).
		Count(&count).Error
	if err != nil {
		return false, apperr.Upstream("find message", err)
	}
	return count > 0, nil
}

// LinkAttachment sets the message of an attachment owned by uploaderID.
// It returns false when no row matched the ownership condition.
func (r *ChatRepository) LinkAttachment(ctx context.Context, hospitalID, attachmentID, uploaderID, messageID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.ChatAttachment{}).
		Where("id = ? AND hospital_id = ? AND uploaded_by = ?", attachmentID, hospitalID, uploaderID).
		Update("message_id", messageID)
	if res.Error != nil {
		return false, apperr.Upstream("link attachment", res.Error)
	}
	return res.RowsAffected > 0, nil
}
