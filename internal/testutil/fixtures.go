package testutil

import (
	"time"

	"hospital-emr-backend/internal/models"
)

// Fixture IDs shared by tests.
const (
	HospitalOne uint = 1
	HospitalTwo uint = 2

	AdminOne       uint = 10
	DoctorZara     uint = 11
	DoctorAbel     uint = 12
	NurseOne       uint = 13
	LabTechOne     uint = 14
	PatientOne     uint = 15
	InactiveDoctor uint = 16
	CashierOne     uint = 17
	DoctorTwo      uint = 20
	NurseTwo       uint = 21

	AdmissionAdmitted    uint = 42
	AdmissionDischarged  uint = 43
	AdmissionOtherTenant uint = 44

	AttachmentByNurse      uint = 70
	AttachmentOtherTenant  uint = 71
	MessageOne             uint = 80
	MessageOtherTenant     uint = 81
	CorporateClientOne     uint = 90
	CorporateClientRetired uint = 91
)

// AdmittedAt is the admission date of the fixture admissions.
var AdmittedAt = time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)

// Seeded returns a store with two hospitals worth of data.
func Seeded() *Store {
	s := New()
	s.Hospitals = []models.Hospital{
		{ID: HospitalOne, Code: "H1", Name: "St. Luke", LogoURL: "https://cdn.test/h1.png", PrimaryColor: "#0f766e", SecondaryColor: "#f59e0b", Tagline: "Care first", IsActive: true},
		{ID: HospitalTwo, Code: "H2", Name: "Mercy General", PrimaryColor: "#1d4ed8", IsActive: true},
	}
	s.Users = []models.User{
		{ID: AdminOne, HospitalID: HospitalOne, Name: "Ada Admin", Email: "ada@h1.test", Role: models.RoleAdmin, Active: true},
		{ID: DoctorZara, HospitalID: HospitalOne, Name: "Zara Okafor", Email: "zara@h1.test", Role: models.RoleDoctor, Active: true},
		{ID: DoctorAbel, HospitalID: HospitalOne, Name: "Abel Mensah", Email: "abel@h1.test", Role: models.RoleDoctor, Active: true},
		{ID: NurseOne, HospitalID: HospitalOne, Name: "Ngozi Nurse", Email: "ngozi@h1.test", Role: models.RoleNurse, Active: true},
		{ID: LabTechOne, HospitalID: HospitalOne, Name: "Lara Lab", Email: "lara@h1.test", Role: models.RoleLabTech, Active: true},
		{ID: PatientOne, HospitalID: HospitalOne, Name: "Paul Patient", Email: "paul@h1.test", Role: models.RolePatient, Active: true},
		{ID: InactiveDoctor, HospitalID: HospitalOne, Name: "Ivan Retired", Email: "ivan@h1.test", Role: models.RoleDoctor, Active: false},
		{ID: CashierOne, HospitalID: HospitalOne, Name: "Chidi Cashier", Email: "chidi@h1.test", Role: models.RoleCashier, Active: true},
		{ID: DoctorTwo, HospitalID: HospitalTwo, Name: "Bola Other", Email: "bola@h2.test", Role: models.RoleDoctor, Active: true},
		{ID: NurseTwo, HospitalID: HospitalTwo, Name: "Nadia Other", Email: "nadia@h2.test", Role: models.RoleNurse, Active: true},
	}
	client := CorporateClientOne
	s.CorporateClients = []models.CorporateClient{
		{ID: CorporateClientOne, HospitalID: HospitalOne, Name: "Zenith Oil", Active: true},
		{ID: CorporateClientRetired, HospitalID: HospitalOne, Name: "Acme Retired", Active: false},
		{ID: 92, HospitalID: HospitalOne, Name: "Beacon Bank", Active: true},
		{ID: 93, HospitalID: HospitalTwo, Name: "Other Tenant Ltd", Active: true},
	}
	s.Patients = []models.Patient{
		{ID: 500, HospitalID: HospitalOne, UserID: PatientOne, CorporateClientID: &client, Gender: "male"},
	}
	s.Admissions = []models.Admission{
		{ID: AdmissionAdmitted, HospitalID: HospitalOne, PatientID: 500, DoctorID: DoctorZara, Status: models.AdmissionAdmitted, AdmissionDate: AdmittedAt, Version: 1},
		{ID: AdmissionDischarged, HospitalID: HospitalOne, PatientID: 500, DoctorID: DoctorZara, Status: models.AdmissionDischarged, AdmissionDate: AdmittedAt, Version: 2},
		{ID: AdmissionOtherTenant, HospitalID: HospitalTwo, PatientID: 900, DoctorID: DoctorTwo, Status: models.AdmissionAdmitted, AdmissionDate: AdmittedAt, Version: 1},
	}
	s.Messages = []models.ChatMessage{
		{ID: MessageOne, HospitalID: HospitalOne, SenderID: NurseOne, RecipientID: DoctorZara, Body: "see attached"},
		{ID: MessageOtherTenant, HospitalID: HospitalTwo, SenderID: NurseTwo, RecipientID: DoctorTwo, Body: "hi"},
	}
	s.Attachments = []models.ChatAttachment{
		{ID: AttachmentByNurse, HospitalID: HospitalOne, UploadedBy: NurseOne, FileName: "xray.png", FileURL: "https://cdn.test/xray.png"},
		{ID: AttachmentOtherTenant, HospitalID: HospitalTwo, UploadedBy: NurseTwo, FileName: "lab.pdf", FileURL: "https://cdn.test/lab.pdf"},
	}
	return s
}

// SessionFor builds the session of a fixture user.
func (s *Store) SessionFor(userID uint) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.Users {
		if u.ID == userID {
			session := models.Session{UserID: u.ID, Role: u.Role, HospitalID: u.HospitalID, Name: u.Name, Email: u.Email}
			if h := s.hospital(u.HospitalID); h != nil {
				session.HospitalName = h.Name
			}
			return session
		}
	}
	return models.Session{}
}

// Admission returns the stored copy of an admission.
func (s *Store) Admission(id uint) models.Admission {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.Admissions {
		if a.ID == id {
			return a
		}
	}
	return models.Admission{}
}

// Attachment returns the stored copy of an attachment.
func (s *Store) Attachment(id uint) models.ChatAttachment {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.Attachments {
		if a.ID == id {
			return a
		}
	}
	return models.ChatAttachment{}
}
