package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"hospital-emr-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	accessSecret  string
	refreshSecret string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
)

// InitJWT initializes JWT secrets and expiry times
func InitJWT(accessSec, refreshSec string, accessExp, refreshExp time.Duration) {
	accessSecret = accessSec
	refreshSecret = refreshSec
	accessExpiry = accessExp
	refreshExpiry = refreshExp
}

// Claims carries the session inside the access token.
type Claims struct {
	UserID       uint        `json:"uid"`
	Role         models.Role `json:"role"`
	HospitalID   uint        `json:"hid"`
	HospitalName string      `json:"hname"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	jwt.RegisteredClaims
}

// Session converts the claims into the request session.
func (c *Claims) Session() models.Session {
	return models.Session{
		UserID:       c.UserID,
		Role:         c.Role,
		HospitalID:   c.HospitalID,
		HospitalName: c.HospitalName,
		Name:         c.Name,
		Email:        c.Email,
	}
}

// GenerateAccessToken signs a short-lived access token for the session.
func GenerateAccessToken(s models.Session) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:       s.UserID,
		Role:         s.Role,
		HospitalID:   s.HospitalID,
		HospitalName: s.HospitalName,
		Name:         s.Name,
		Email:        s.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "hospital-emr",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(accessSecret))
}

// GenerateRefreshToken generates a cryptographically random refresh token
func GenerateRefreshToken() (string, error) {
	return uuid.New().String(), nil
}

// ValidateAccessToken validates and parses a JWT access token
func ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(accessSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// HashRefreshToken creates a SHA-256 hash of the refresh token for secure storage.
// The refresh secret is mixed in so a leaked table alone cannot be replayed.
func HashRefreshToken(token string) string {
	hash := sha256.Sum256([]byte(refreshSecret + token))
	return hex.EncodeToString(hash[:])
}

// GetRefreshTokenExpiry returns the refresh token expiry duration
func GetRefreshTokenExpiry() time.Duration {
	return refreshExpiry
}

// GetAccessTokenExpiry returns the access token expiry duration
func GetAccessTokenExpiry() time.Duration {
	return accessExpiry
}
