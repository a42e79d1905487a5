package service

import (
	"context"

	"hospital-emr-backend/internal/models"
)

type PatientService struct {
	patients PatientStore
}

func NewPatientService(patients PatientStore) *PatientService {
	return &PatientService{patients: patients}
}

// Current returns the patient record of the signed-in patient.
func (s *PatientService) Current(ctx context.Context, session models.Session) (*models.Patient, error) {
	return s.patients.GetPatientByUserID(ctx, session.HospitalID, session.UserID)
}
