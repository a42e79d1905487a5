package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/models"
	"hospital-emr-backend/pkg/utils"

	"go.uber.org/zap"
)

type AuthService struct {
	users UserStore
	audit AuditStore
	log   *zap.Logger
}

func NewAuthService(users UserStore, audit AuditStore, log *zap.Logger) *AuthService {
	return &AuthService{
		users: users,
		audit: audit,
		log:   log,
	}
}

// LoginResult carries both tokens and the resolved session.
type LoginResult struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"-"`
	Session      models.Session `json:"user"`
}

// EnsureActive fails when the session's account was deactivated or removed
// after its access token was issued.
func (s *AuthService) EnsureActive(ctx context.Context, session models.Session) error {
	active, err := s.users.IsActiveUser(ctx, session.HospitalID, session.UserID)
	if err != nil {
		return err
	}
	if !active {
		return apperr.Unauthenticated("account is deactivated")
	}
	return nil
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, apperr.Unauthenticated("invalid credentials")
		}
		return nil, err
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, apperr.Unauthenticated("invalid credentials")
	}

	session := sessionFor(user)
	accessToken, err := utils.GenerateAccessToken(session)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.issueRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.record(ctx, session, "user_login", fmt.Sprintf("User %s logged in", user.Email))

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Session:      session,
	}, nil
}

// Refresh exchanges a refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	token, err := s.users.FindRefreshTokenByHash(ctx, utils.HashRefreshToken(refreshToken))
	if err != nil {
		return nil, err
	}

	if time.Now().After(token.ExpiresAt) {
		return nil, apperr.Unauthenticated("refresh token expired")
	}
	if !token.User.Active {
		return nil, apperr.Unauthenticated("account is deactivated")
	}

	session := sessionFor(&token.User)
	accessToken, err := utils.GenerateAccessToken(session)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Session:      session,
	}, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.users.RevokeRefreshTokenByHash(ctx, utils.HashRefreshToken(refreshToken)); err != nil {
		return apperr.Upstream("revoke refresh token", err)
	}
	return nil
}

func (s *AuthService) issueRefreshToken(ctx context.Context, userID uint) (string, error) {
	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	record := &models.RefreshToken{
		UserID:    userID,
		TokenHash: utils.HashRefreshToken(refreshToken),
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}
	if err := s.users.CreateRefreshToken(ctx, record); err != nil {
		return "", apperr.Upstream("store refresh token", err)
	}
	return refreshToken, nil
}

func (s *AuthService) record(ctx context.Context, session models.Session, action, details string) {
	hospitalID, userID := session.HospitalID, session.UserID
	if err := s.audit.CreateAuditLog(ctx, &hospitalID, &userID, action, details); err != nil {
		s.log.Warn("audit log write failed", zap.String("action", action), zap.Error(err))
	}
}

func sessionFor(user *models.User) models.Session {
	session := models.Session{
		UserID:     user.ID,
		Role:       user.Role,
		HospitalID: user.HospitalID,
		Name:       user.Name,
		Email:      user.Email,
	}
	if user.Hospital != nil {
		session.HospitalName = user.Hospital.Name
	}
	return session
}
