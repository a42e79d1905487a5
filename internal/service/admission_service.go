package service

import (
	"context"
	"strings"
	"time"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/models"

	"go.uber.org/zap"
)

type AdmissionService struct {
	admissions AdmissionStore
	log        *zap.Logger
	now        func() time.Time
}

func NewAdmissionService(admissions AdmissionStore, log *zap.Logger) *AdmissionService {
	return &AdmissionService{
		admissions: admissions,
		log:        log,
		now:        time.Now,
	}
}

// DischargeInput is the caller-supplied part of a discharge.
type DischargeInput struct {
	Summary              string
	FollowUpInstructions string
	Date                 *time.Time
	// DateOnly marks Date as a calendar day without a time of day.
	DateOnly bool
}

// Discharge moves an admitted admission of the caller's hospital to
// discharged, stamped with the caller as discharging user.
func (s *AdmissionService) Discharge(ctx context.Context, session models.Session, admissionID uint, in DischargeInput) (*models.Admission, error) {
	summary := strings.TrimSpace(in.Summary)
	if summary == "" {
		return nil, apperr.Validation("dischargeSummary is required")
	}

	admission, err := s.admissions.GetAdmission(ctx, session.HospitalID, admissionID)
	if err != nil {
		return nil, err
	}
	if admission.Status != models.AdmissionAdmitted {
		return nil, apperr.Conflict("admission is not currently admitted")
	}

	dischargeDate, err := resolveDischargeDate(s.now().UTC(), admission.AdmissionDate.UTC(), in)
	if err != nil {
		return nil, err
	}

	dischargedBy := session.UserID
	admission.Status = models.AdmissionDischarged
	admission.DischargeDate = &dischargeDate
	admission.DischargeSummary = summary
	admission.FollowUpInstructions = strings.TrimSpace(in.FollowUpInstructions)
	admission.DischargedBy = &dischargedBy

	saved, err := s.admissions.SaveDischarge(ctx, admission)
	if err != nil {
		return nil, err
	}
	if !saved {
		return nil, apperr.Conflict("admission was modified by another request, reload and retry")
	}

	s.log.Info("admission discharged",
		zap.Uint("admission_id", admission.ID),
		zap.Uint("hospital_id", session.HospitalID),
		zap.Uint("discharged_by", dischargedBy),
	)

	return admission, nil
}

// resolveDischargeDate picks the discharge timestamp. A day-only date is
// compared by calendar day, and on the admission day it is stamped with the
// admission time so the stay never has a negative length.
func resolveDischargeDate(now, admittedAt time.Time, in DischargeInput) (time.Time, error) {
	date := now
	if in.Date != nil {
		date = in.Date.UTC()
	}
	if in.Date != nil && in.DateOnly {
		admissionDay := time.Date(admittedAt.Year(), admittedAt.Month(), admittedAt.Day(), 0, 0, 0, 0, time.UTC)
		if date.Before(admissionDay) {
			return time.Time{}, apperr.Validation("dischargeDate cannot be before the admission date")
		}
		if date.Before(admittedAt) {
			return admittedAt, nil
		}
		return date, nil
	}

	if date.Before(admittedAt) {
		return time.Time{}, apperr.Validation("dischargeDate cannot be before the admission date")
	}
	return date, nil
}
