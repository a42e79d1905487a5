package service

import (
	"context"
	"testing"
	"time"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/models"
	"hospital-emr-backend/internal/testutil"

	"go.uber.org/zap"
)

func newAdmissionService(store *testutil.Store, now time.Time) *AdmissionService {
	svc := NewAdmissionService(store, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func TestDischarge_DefaultsDateAndStampsCaller(t *testing.T) {
	store := testutil.Seeded()
	now := testutil.AdmittedAt.Add(72 * time.Hour)
	svc := newAdmissionService(store, now)
	doctor := store.SessionFor(testutil.DoctorZara)

	got, err := svc.Discharge(context.Background(), doctor, testutil.AdmissionAdmitted, DischargeInput{
		Summary:              "  stable, afebrile  ",
		FollowUpInstructions: "review in 2 weeks",
	})
	if err != nil {
		t.Fatalf("Discharge: %v", err)
	}

	stored := store.Admission(testutil.AdmissionAdmitted)
	if stored.Status != models.AdmissionDischarged {
		t.Errorf("expected discharged, got %s", stored.Status)
	}
	if stored.DischargedBy == nil || *stored.DischargedBy != testutil.DoctorZara {
		t.Errorf("expected dischargedBy %d, got %v", testutil.DoctorZara, stored.DischargedBy)
	}
	if stored.DischargeDate == nil || !stored.DischargeDate.Equal(now) {
		t.Errorf("expected discharge date %v, got %v", now, stored.DischargeDate)
	}
	if stored.DischargeSummary != "stable, afebrile" {
		t.Errorf("expected trimmed summary, got %q", stored.DischargeSummary)
	}
	if stored.Version != 2 || got.Version != 2 {
		t.Errorf("expected version bump to 2, stored %d returned %d", stored.Version, got.Version)
	}
	if store.Mutations != 1 {
		t.Errorf("expected exactly one write, got %d", store.Mutations)
	}
}

func TestDischarge_ExplicitDate(t *testing.T) {
	store := testutil.Seeded()
	svc := newAdmissionService(store, testutil.AdmittedAt.Add(240*time.Hour))
	date := testutil.AdmittedAt.Add(24 * time.Hour)

	_, err := svc.Discharge(context.Background(), store.SessionFor(testutil.AdminOne), testutil.AdmissionAdmitted, DischargeInput{
		Summary: "recovered",
		Date:    &date,
	})
	if err != nil {
		t.Fatalf("Discharge: %v", err)
	}
	stored := store.Admission(testutil.AdmissionAdmitted)
	if stored.DischargeDate == nil || !stored.DischargeDate.Equal(date) {
		t.Errorf("expected discharge date %v, got %v", date, stored.DischargeDate)
	}
}

func TestDischarge_DateOnlyComparesCalendarDays(t *testing.T) {
	sameDay := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	nextDay := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want time.Time
	}{
		{"admission day is stamped with admission time", sameDay, testutil.AdmittedAt},
		{"later day keeps midnight", nextDay, nextDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.Seeded()
			svc := newAdmissionService(store, testutil.AdmittedAt.Add(48*time.Hour))
			date := tt.date

			_, err := svc.Discharge(context.Background(), store.SessionFor(testutil.DoctorZara), testutil.AdmissionAdmitted, DischargeInput{
				Summary:  "stable",
				Date:     &date,
				DateOnly: true,
			})
			if err != nil {
				t.Fatalf("Discharge: %v", err)
			}
			stored := store.Admission(testutil.AdmissionAdmitted)
			if stored.DischargeDate == nil || !stored.DischargeDate.Equal(tt.want) {
				t.Errorf("expected discharge date %v, got %v", tt.want, stored.DischargeDate)
			}
		})
	}
}

func TestDischarge_Rejections(t *testing.T) {
	before := testutil.AdmittedAt.Add(-time.Hour)
	dayBefore := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		id     uint
		input  DischargeInput
		stale  bool
		caller uint
		want   apperr.Kind
	}{
		{"missing summary", testutil.AdmissionAdmitted, DischargeInput{Summary: "   "}, false, testutil.DoctorZara, apperr.KindValidation},
		{"unknown admission", 9999, DischargeInput{Summary: "x"}, false, testutil.DoctorZara, apperr.KindNotFound},
		{"other hospital", testutil.AdmissionOtherTenant, DischargeInput{Summary: "x"}, false, testutil.DoctorZara, apperr.KindNotFound},
		{"already discharged", testutil.AdmissionDischarged, DischargeInput{Summary: "x"}, false, testutil.DoctorZara, apperr.KindConflict},
		{"date before admission", testutil.AdmissionAdmitted, DischargeInput{Summary: "x", Date: &before}, false, testutil.DoctorZara, apperr.KindValidation},
		{"day before admission", testutil.AdmissionAdmitted, DischargeInput{Summary: "x", Date: &dayBefore, DateOnly: true}, false, testutil.DoctorZara, apperr.KindValidation},
		{"concurrent write", testutil.AdmissionAdmitted, DischargeInput{Summary: "x"}, true, testutil.DoctorZara, apperr.KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.Seeded()
			store.StaleWrites = tt.stale
			svc := newAdmissionService(store, testutil.AdmittedAt.Add(time.Hour))

			_, err := svc.Discharge(context.Background(), store.SessionFor(tt.caller), tt.id, tt.input)
			if !apperr.Is(err, tt.want) {
				t.Fatalf("expected %s error, got %v", tt.want, err)
			}
			if store.Mutations != 0 {
				t.Errorf("expected no writes, got %d", store.Mutations)
			}
		})
	}
}

func TestDischarge_StoreFailure(t *testing.T) {
	store := testutil.Seeded()
	store.Fail = true
	svc := newAdmissionService(store, time.Now())

	_, err := svc.Discharge(context.Background(), store.SessionFor(testutil.DoctorZara), testutil.AdmissionAdmitted, DischargeInput{Summary: "x"})
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
