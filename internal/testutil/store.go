// Package testutil provides an in-memory implementation of the service
// stores for tests.
package testutil

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/models"
	"hospital-emr-backend/internal/repository"
)

// ErrInjected is returned by every method while Store.Fail is set.
var ErrInjected = errors.New("injected storage failure")

// Store keeps rows in slices and applies the same tenant filters the gorm
// repositories do. Mutations counts persisted writes so tests can assert a
// route wrote nothing.
type Store struct {
	mu sync.Mutex

	Hospitals        []models.Hospital
	Users            []models.User
	Patients         []models.Patient
	Admissions       []models.Admission
	CorporateClients []models.CorporateClient
	Messages         []models.ChatMessage
	Attachments      []models.ChatAttachment
	RefreshTokens    []models.RefreshToken
	AuditLogs        []models.AuditLog
	SurveyTables     map[string]bool

	Mutations int
	Fail      bool
	// StaleWrites makes SaveDischarge behave as if another writer won.
	StaleWrites bool
}

func New() *Store {
	return &Store{SurveyTables: map[string]bool{}}
}

func (s *Store) fail() error {
	if s.Fail {
		return apperr.Upstream("fake store", ErrInjected)
	}
	return nil
}

func (s *Store) GetHospitalByID(_ context.Context, id uint) (*models.Hospital, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return nil, err
	}
	for i := range s.Hospitals {
		if s.Hospitals[i].ID == id && s.Hospitals[i].IsActive {
			h := s.Hospitals[i]
			return &h, nil
		}
	}
	return nil, apperr.NotFound("hospital not found")
}

func (s *Store) GetTheme(ctx context.Context, id uint) (*models.HospitalTheme, error) {
	h, err := s.GetHospitalByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.HospitalTheme{
		ID:             h.ID,
		Name:           h.Name,
		LogoURL:        h.LogoURL,
		PrimaryColor:   h.PrimaryColor,
		SecondaryColor: h.SecondaryColor,
		Tagline:        h.Tagline,
	}, nil
}

func (s *Store) hospital(id uint) *models.Hospital {
	for i := range s.Hospitals {
		if s.Hospitals[i].ID == id {
			h := s.Hospitals[i]
			return &h
		}
	}
	return nil
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return nil, err
	}
	for i := range s.Users {
		if s.Users[i].Email == email && s.Users[i].Active {
			u := s.Users[i]
			u.Hospital = s.hospital(u.HospitalID)
			return &u, nil
		}
	}
	return nil, apperr.NotFound("user not found")
}

func (s *Store) UpsertUserByEmail(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return err
	}
	s.Mutations++
	for i := range s.Users {
		if s.Users[i].Email == user.Email {
			user.ID = s.Users[i].ID
			s.Users[i] = *user
			return nil
		}
	}
	user.ID = uint(len(s.Users) + 1000)
	s.Users = append(s.Users, *user)
	return nil
}

func matches(u models.User, search string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(u.Name), search) ||
		strings.Contains(strings.ToLower(u.Email), search)
}

func hasRole(roles []models.Role, role models.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func (s *Store) ListStaff(_ context.Context, filter repository.StaffFilter) ([]models.StaffMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return nil, err
	}
	out := []models.StaffMember{}
	for _, u := range s.Users {
		if u.HospitalID == filter.HospitalID && hasRole(filter.Roles, u.Role) && matches(u, filter.Search) {
			out = append(out, models.StaffMember{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Active: u.Active})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) ListActiveByRole(_ context.Context, hospitalID uint, role models.Role) ([]models.UserSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return nil, err
	}
	out := []models.UserSummary{}
	for _, u := range s.Users {
		if u.HospitalID == hospitalID && u.Role == role && u.Active {
			out = append(out, models.UserSummary{ID: u.ID, Name: u.Name, Email: u.Email})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) ListChatUsers(_ context.Context, hospitalID, excludeID uint, search string) ([]models.StaffMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return nil, err
	}
	out := []models.StaffMember{}
	for _, u := range s.Users {
		if u.HospitalID == hospitalID && u.Active && u.ID != excludeID && u.Role.IsStaff() && matches(u, search) {
			out = append(out, models.StaffMember{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Active: u.Active})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) IsActiveUser(_ context.Context, hospitalID, userID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return false, err
	}
	for _, u := range s.Users {
		if u.ID == userID && u.HospitalID == hospitalID {
			return u.Active, nil
		}
	}
	return false, nil
}

func (s *Store) DeactivateUser(_ context.Context, hospitalID, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return err
	}
	for i := range s.Users {
		if s.Users[i].ID == userID && s.Users[i].HospitalID == hospitalID {
			s.Users[i].Active = false
			s.Mutations++
			return nil
		}
	}
	return apperr.NotFound("user not found")
}

func (s *Store) CreateRefreshToken(_ context.Context, token *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return err
	}
	token.ID = uint(len(s.RefreshTokens) + 1)
	s.RefreshTokens = append(s.RefreshTokens, *token)
	return nil
}

func (s *Store) FindRefreshTokenByHash(_ context.Context, hash string) (*models.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return nil, err
	}
	for _, t := range s.RefreshTokens {
		if t.TokenHash == hash && !t.Revoked {
			for _, u := range s.Users {
				if u.ID == t.UserID {
					t.User = u
					t.User.Hospital = s.hospital(u.HospitalID)
				}
			}
			return &t, nil
		}
	}
	return nil, apperr.Unauthenticated("refresh token not found or revoked")
}

func (s *Store) RevokeRefreshTokenByHash(_ context.Context, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return err
	}
	for i := range s.RefreshTokens {
		if s.RefreshTokens[i].TokenHash == hash {
			s.RefreshTokens[i].Revoked = true
		}
	}
	return nil
}

func (s *Store) CreateAuditLog(_ context.Context, hospitalID, userID *uint, action, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.AuditLogs = append(s.AuditLogs, models.AuditLog{HospitalID: hospitalID, UserID: userID, Action: action, Details: details})
	return nil
}

func (s *Store) GetPatientByUserID(_ context.Context, hospitalID, userID uint) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return nil, err
	}
	for _, p := range s.Patients {
		if p.UserID == userID && p.HospitalID == hospitalID {
			for _, c := range s.CorporateClients {
				if p.CorporateClientID != nil && c.ID == *p.CorporateClientID {
					cc := c
					p.CorporateClient = &cc
				}
			}
			return &p, nil
		}
	}
	return nil, apperr.NotFound("patient record not found")
}

func (s *Store) GetAdmission(_ context.Context, hospitalID, id uint) (*models.Admission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return nil, err
	}
	for _, a := range s.Admissions {
		if a.ID == id && a.HospitalID == hospitalID {
			return &a, nil
		}
	}
	return nil, apperr.NotFound("admission not found")
}

func (s *Store) SaveDischarge(_ context.Context, admission *models.Admission) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return false, err
	}
	if s.StaleWrites {
		return false, nil
	}
	for i := range s.Admissions {
		a := &s.Admissions[i]
		if a.ID == admission.ID && a.HospitalID == admission.HospitalID && a.Version == admission.Version {
			admission.Version++
			*a = *admission
			s.Mutations++
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ListActive(_ context.Context, hospitalID uint) ([]models.CorporateClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return nil, err
	}
	out := []models.CorporateClient{}
	for _, c := range s.CorporateClients {
		if c.HospitalID == hospitalID && c.Active {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) GetAttachment(_ context.Context, hospitalID, id uint) (*models.ChatAttachment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return nil, err
	}
	for _, a := range s.Attachments {
		if a.ID == id && a.HospitalID == hospitalID {
			return &a, nil
		}
	}
	return nil, apperr.NotFound("attachment not found")
}

func (s *Store) MessageExists(_ context.Context, hospitalID, messageID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return false, err
	}
	for _, m := range s.Messages {
		if m.ID == messageID && m.HospitalID == hospitalID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) LinkAttachment(_ context.Context, hospitalID, attachmentID, uploaderID, messageID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail(); err != nil {
		return false, err
	}
	for i := range s.Attachments {
		a := &s.Attachments[i]
		if a.ID == attachmentID && a.HospitalID == hospitalID && a.UploadedBy == uploaderID {
			id := messageID
			a.MessageID = &id
			s.Mutations++
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) TablesPresent(_ context.Context) map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool, len(s.SurveyTables))
	for k, v := range s.SurveyTables {
		out[k] = v
	}
	return out
}
