package service

import (
	"context"
	"fmt"
	"strings"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/models"
	"hospital-emr-backend/internal/repository"

	"go.uber.org/zap"
)

// DirectoryService answers the staff and user listings of a hospital.
type DirectoryService struct {
	users UserStore
	audit AuditStore
	log   *zap.Logger
}

func NewDirectoryService(users UserStore, audit AuditStore, log *zap.Logger) *DirectoryService {
	return &DirectoryService{
		users: users,
		audit: audit,
		log:   log,
	}
}

// ListStaff lists staff of the caller's hospital. An empty role means the
// clinical roles; any other value must name a staff role.
func (s *DirectoryService) ListStaff(ctx context.Context, session models.Session, role, search string) ([]models.StaffMember, error) {
	roles := models.ClinicalStaffRoles
	if role = strings.TrimSpace(role); role != "" {
		r := models.Role(role)
		if !r.IsStaff() {
			return nil, apperr.Validation(fmt.Sprintf("invalid staff role %q", role))
		}
		roles = []models.Role{r}
	}

	return s.users.ListStaff(ctx, repository.StaffFilter{
		HospitalID: session.HospitalID,
		Roles:      roles,
		Search:     strings.TrimSpace(search),
	})
}

// ListDoctors lists active doctors of the caller's hospital.
func (s *DirectoryService) ListDoctors(ctx context.Context, session models.Session) ([]models.UserSummary, error) {
	return s.users.ListActiveByRole(ctx, session.HospitalID, models.RoleDoctor)
}

// ListLabScientists lists active lab technicians of the caller's hospital.
func (s *DirectoryService) ListLabScientists(ctx context.Context, session models.Session) ([]models.UserSummary, error) {
	return s.users.ListActiveByRole(ctx, session.HospitalID, models.RoleLabTech)
}

// Deactivate turns off a user's account in the caller's hospital.
func (s *DirectoryService) Deactivate(ctx context.Context, session models.Session, userID uint) error {
	if userID == session.UserID {
		return apperr.Validation("you cannot deactivate your own account")
	}
	if err := s.users.DeactivateUser(ctx, session.HospitalID, userID); err != nil {
		return err
	}

	hospitalID, actorID := session.HospitalID, session.UserID
	details := fmt.Sprintf("Deactivated user ID %d", userID)
	if err := s.audit.CreateAuditLog(ctx, &hospitalID, &actorID, "user_deactivate", details); err != nil {
		s.log.Warn("audit log write failed", zap.String("action", "user_deactivate"), zap.Error(err))
	}
	return nil
}
