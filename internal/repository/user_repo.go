package repository

import (
	"context"
	"errors"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// StaffFilter narrows a staff directory query.
type StaffFilter struct {
	HospitalID uint
	Roles      []models.Role
	Search     string
}

// FindUserByEmail finds an active user by email with the hospital preloaded.
func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ? AND active = ?", email, true).
		Preload("Hospital").
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Upstream("find user", err)
	}
	return &user, nil
}

// UpsertUserByEmail inserts the user or, when the email exists, overwrites
// its profile, role, tenant and credential.
func (r *UserRepository) UpsertUserByEmail(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"hospital_id", "name", "role", "password_hash", "active", "updated_at"}),
	}).Create(user).Error
	if err != nil {
		return apperr.Upstream("upsert user", err)
	}
	return nil
}

// ListStaff returns staff of one hospital ordered by name.
func (r *UserRepository) ListStaff(ctx context.Context, filter StaffFilter) ([]models.StaffMember, error) {
	staff := []models.StaffMember{}
	q := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("id", "name", "email", "role", "active").
		Where("hospital_id = ?", filter.HospitalID).
		Where("role IN ?", filter.Roles)
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(email) LIKE ?)", pattern, pattern)
	}
	if err := q.Order("name ASC").Find(&staff).Error; err != nil {
		return nil, apperr.Upstream("list staff", err)
	}
	return staff, nil
}

// ListActiveByRole returns active users holding role in a hospital.
func (r *UserRepository) ListActiveByRole(ctx context.Context, hospitalID uint, role models.Role) ([]models.UserSummary, error) {
	users := []models.UserSummary{}
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("id", "name", "email").
		Where("hospital_id = ? AND role = ? AND active = ?", hospitalID, role, true).
		Order("name ASC").
		Find(&users).Error
	if err != nil {
		return nil, apperr.Upstream("list users by role", err)
	}
	return users, nil
}

// ListChatUsers returns active staff of a hospital other than excludeID.
func (r *UserRepository) ListChatUsers(ctx context.Context, hospitalID, excludeID uint, search string) ([]models.StaffMember, error) {
	users := []models.StaffMember{}
	q := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("id", "name", "email", "role", "active").
		Where("hospital_id = ? AND active = ? AND id <> ?", hospitalID, true, excludeID).
		Where("role IN ?", models.StaffRoles)
	if search != "" {
		pattern := containsPattern(search)
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(email) LIKE ?)", pattern, pattern)
	}
	if err := q.Order("name ASC").Find(&users).Error; err != nil {
		return nil, apperr.Upstream("list chat users", err)
	}
	return users, nil
}

// IsActiveUser reports whether the user exists in the hospital and is active.
func (r *UserRepository) IsActiveUser(ctx context.Context, hospitalID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND hospital_id = ? AND active = ?", userID, hospitalID, true).
		Count(&count).Error
	if err != nil {
		return false, apperr.Upstream("check user active", err)
	}
	return count > 0, nil
}

// DeactivateUser clears the active flag of a user in a hospital.
func (r *UserRepository) DeactivateUser(ctx context.Context, hospitalID, userID uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND hospital_id = ?", userID, hospitalID).
		Update("active", false)
	if res.Error != nil {
		return apperr.Upstream("deactivate user", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// MySQL reports changed rows only, so an already inactive user also lands here.
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND hospital_id = ?", userID, hospitalID).
		Count(&count).Error
	if err != nil {
		return apperr.Upstream("find user", err)
	}
	if count == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}

// CreateRefreshToken creates a new refresh token
func (r *UserRepository) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// FindRefreshTokenByHash finds an unrevoked refresh token with its user and hospital.
func (r *UserRepository) FindRefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.WithContext(ctx).
		Where("token_hash = ? AND revoked = ?", hash, false).
		Preload("User").
		Preload("User.Hospital").
		First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthenticated("refresh token not found or revoked")
		}
		return nil, apperr.Upstream("find refresh token", err)
	}
	return &token, nil
}

// RevokeRefreshTokenByHash marks a refresh token as revoked by its hash
func (r *UserRepository) RevokeRefreshTokenByHash(ctx context.Context, hash string) error {
	return r.db.WithContext(ctx).
		Model(&models.RefreshToken{}).
		Where("token_hash = ?", hash).
		Update("revoked", true).Error
}
