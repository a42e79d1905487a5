package service

import (
	"context"

	"hospital-emr-backend/internal/models"
	"hospital-emr-backend/internal/repository"
)

// The interfaces below are satisfied by the gorm repositories. Services
// depend on them so tests can swap in fakes.

type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpsertUserByEmail(ctx context.Context, user *models.User) error
	ListStaff(ctx context.Context, filter repository.StaffFilter) ([]models.StaffMember, error)
	ListActiveByRole(ctx context.Context, hospitalID uint, role models.Role) ([]models.UserSummary, error)
	ListChatUsers(ctx context.Context, hospitalID, excludeID uint, search string) ([]models.StaffMember, error)
	IsActiveUser(ctx context.Context, hospitalID, userID uint) (bool, error)
	DeactivateUser(ctx context.Context, hospitalID, userID uint) error
	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error
	FindRefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	RevokeRefreshTokenByHash(ctx context.Context, hash string) error
}

type AuditStore interface {
	CreateAuditLog(ctx context.Context, hospitalID, userID *uint, action, details string) error
}

type HospitalStore interface {
	GetHospitalByID(ctx context.Context, id uint) (*models.Hospital, error)
	GetTheme(ctx context.Context, id uint) (*models.HospitalTheme, error)
}

type PatientStore interface {
	GetPatientByUserID(ctx context.Context, hospitalID, userID uint) (*models.Patient, error)
}

type AdmissionStore interface {
	GetAdmission(ctx context.Context, hospitalID, id uint) (*models.Admission, error)
	SaveDischarge(ctx context.Context, admission *models.Admission) (bool, error)
}

type CorporateClientStore interface {
	ListActive(ctx context.Context, hospitalID uint) ([]models.CorporateClient, error)
}

type ChatStore interface {
	GetAttachment(ctx context.Context, hospitalID, id uint) (*models.ChatAttachment, error)
	MessageExists(ctx context.Context, hospitalID, messageID uint) (bool, error)
	LinkAttachment(ctx context.Context, hospitalID, attachmentID, uploaderID, messageID uint) (bool, error)
}

type SurveyStore interface {
	TablesPresent(ctx context.Context) map[string]bool
}

var (
	_ UserStore            = (*repository.UserRepository)(nil)
	_ AuditStore           = (*repository.AuditRepository)(nil)
	_ HospitalStore        = (*repository.HospitalRepository)(nil)
	_ PatientStore         = (*repository.PatientRepository)(nil)
	_ AdmissionStore       = (*repository.AdmissionRepository)(nil)
	_ CorporateClientStore = (*repository.CorporateClientRepository)(nil)
	_ ChatStore            = (*repository.ChatRepository)(nil)
	_ SurveyStore          = (*repository.SurveyRepository)(nil)
)
