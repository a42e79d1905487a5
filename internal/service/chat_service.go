package service

import (
	"context"
	"strings"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/models"
	"hospital-emr-backend/internal/realtime"

	"go.uber.org/zap"
)

// ChatNotifier receives chat events after they are persisted.
type ChatNotifier interface {
	Publish(hospitalID uint, event realtime.Event)
}

type ChatService struct {
	chat     ChatStore
	users    UserStore
	notifier ChatNotifier
	log      *zap.Logger
}

// NewChatService builds the chat service. notifier may be nil.
func NewChatService(chat ChatStore, users UserStore, notifier ChatNotifier, log *zap.Logger) *ChatService {
	return &ChatService{
		chat:     chat,
		users:    users,
		notifier: notifier,
		log:      log,
	}
}

// LinkAttachment attaches the caller's own upload to a message of the same hospital.
func (s *ChatService) LinkAttachment(ctx context.Context, session models.Session, attachmentID, messageID uint) (*models.ChatAttachment, error) {
	if messageID == 0 {
		return nil, apperr.Validation("messageId is required")
	}

	attachment, err := s.chat.GetAttachment(ctx, session.HospitalID, attachmentID)
	if err != nil {
		return nil, err
	}
	if attachment.UploadedBy != session.UserID {
		return nil, apperr.Forbidden("you can only link attachments you uploaded")
	}
	if attachment.MessageID != nil {
		if *attachment.MessageID == messageID {
			return attachment, nil
		}
		return nil, apperr.Conflict("attachment is already linked to another message")
	}

	exists, err := s.chat.MessageExists(ctx, session.HospitalID, messageID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("message not found")
	}

	linked, err := s.chat.LinkAttachment(ctx, session.HospitalID, attachmentID, session.UserID, messageID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, apperr.Conflict("attachment changed while linking, reload and retry")
	}

	attachment.MessageID = &messageID
	s.log.Debug("attachment linked",
		zap.Uint("attachment_id", attachmentID),
		zap.Uint("message_id", messageID),
	)
	if s.notifier != nil {
		s.notifier.Publish(session.HospitalID, realtime.Event{Type: realtime.EventAttachmentLinked, Payload: attachment})
	}
	return attachment, nil
}

// ListUsers returns the staff the caller can chat with.
func (s *ChatService) ListUsers(ctx context.Context, session models.Session, search string) ([]models.StaffMember, error) {
	return s.users.ListChatUsers(ctx, session.HospitalID, session.UserID, strings.TrimSpace(search))
}
