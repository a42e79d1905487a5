package service

import (
	"context"
	"testing"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/models"
	"hospital-emr-backend/internal/testutil"

	"go.uber.org/zap"
)

func names[T any](rows []T, name func(T) string) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, name(r))
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func staffName(m models.StaffMember) string { return m.Name }
func summaryName(u models.UserSummary) string { return u.Name }

func TestListStaff(t *testing.T) {
	store := testutil.Seeded()
	svc := NewDirectoryService(store, store, zap.NewNop())
	admin := store.SessionFor(testutil.AdminOne)

	tests := []struct {
		name   string
		role   string
		search string
		want   []string
	}{
		{"default clinical roles", "", "", []string{"Abel Mensah", "Ivan Retired", "Lara Lab", "Ngozi Nurse", "Zara Okafor"}},
		{"single role", "nurse", "", []string{"Ngozi Nurse"}},
		{"non clinical role", "cashier", "", []string{"Chidi Cashier"}},
		{"search by name", "", "okaf", []string{"Zara Okafor"}},
		{"search by email", "doctor", "ABEL@", []string{"Abel Mensah"}},
		{"no match", "", "nobody", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			staff, err := svc.ListStaff(context.Background(), admin, tt.role, tt.search)
			if err != nil {
				t.Fatalf("ListStaff: %v", err)
			}
			if got := names(staff, staffName); !equalStrings(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestListStaff_InvalidRole(t *testing.T) {
	store := testutil.Seeded()
	svc := NewDirectoryService(store, store, zap.NewNop())

	for _, role := range []string{"patient", "super_admin", "janitor"} {
		_, err := svc.ListStaff(context.Background(), store.SessionFor(testutil.AdminOne), role, "")
		if !apperr.Is(err, apperr.KindValidation) {
			t.Errorf("role %q: expected validation error, got %v", role, err)
		}
	}
}

func TestListDoctors_ActiveOnlyOrderedByName(t *testing.T) {
	store := testutil.Seeded()
	svc := NewDirectoryService(store, store, zap.NewNop())

	doctors, err := svc.ListDoctors(context.Background(), store.SessionFor(testutil.PatientOne))
	if err != nil {
		t.Fatalf("ListDoctors: %v", err)
	}
	want := []string{"Abel Mensah", "Zara Okafor"}
	if got := names(doctors, summaryName); !equalStrings(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	other, err := svc.ListDoctors(context.Background(), store.SessionFor(testutil.NurseTwo))
	if err != nil {
		t.Fatalf("ListDoctors: %v", err)
	}
	if got := names(other, summaryName); !equalStrings(got, []string{"Bola Other"}) {
		t.Errorf("expected only hospital two doctors, got %v", got)
	}
}

func TestListLabScientists(t *testing.T) {
	store := testutil.Seeded()
	svc := NewDirectoryService(store, store, zap.NewNop())

	labs, err := svc.ListLabScientists(context.Background(), store.SessionFor(testutil.DoctorZara))
	if err != nil {
		t.Fatalf("ListLabScientists: %v", err)
	}
	if got := names(labs, summaryName); !equalStrings(got, []string{"Lara Lab"}) {
		t.Errorf("expected Lara Lab, got %v", got)
	}
}

func TestDeactivate(t *testing.T) {
	store := testutil.Seeded()
	svc := NewDirectoryService(store, store, zap.NewNop())
	admin := store.SessionFor(testutil.AdminOne)

	if err := svc.Deactivate(context.Background(), admin, testutil.NurseOne); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	for _, u := range store.Users {
		if u.ID == testutil.NurseOne && u.Active {
			t.Error("nurse should be inactive")
		}
	}
	if len(store.AuditLogs) != 1 || store.AuditLogs[0].Action != "user_deactivate" {
		t.Errorf("expected one user_deactivate audit row, got %+v", store.AuditLogs)
	}

	if err := svc.Deactivate(context.Background(), admin, testutil.AdminOne); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("self deactivation: expected validation error, got %v", err)
	}
	if err := svc.Deactivate(context.Background(), admin, testutil.NurseTwo); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("other hospital: expected not found, got %v", err)
	}
}
