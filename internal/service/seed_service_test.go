package service

import (
	"context"
	"testing"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/models"
	"hospital-emr-backend/internal/testutil"
	"hospital-emr-backend/pkg/utils"

	"go.uber.org/zap"
)

func TestSeedUser_CreatesThenUpdates(t *testing.T) {
	store := testutil.Seeded()
	svc := NewSeedService(store, store, zap.NewNop())
	ctx := context.Background()

	created, err := svc.SeedUser(ctx, SeedUserInput{
		HospitalID: testutil.HospitalTwo,
		Name:       " Grace Admin ",
		Email:      "Grace@H2.test",
		Role:       models.RoleAdmin,
		Password:   "changeme123",
	})
	if err != nil {
		t.Fatalf("SeedUser: %v", err)
	}
	if created.Email != "grace@h2.test" || created.Name != "Grace Admin" {
		t.Errorf("expected normalised identity, got %q %q", created.Email, created.Name)
	}
	if !utils.ComparePassword(created.PasswordHash, "changeme123") {
		t.Error("stored hash does not match the password")
	}

	count := len(store.Users)
	updated, err := svc.SeedUser(ctx, SeedUserInput{
		HospitalID: testutil.HospitalTwo,
		Name:       "Grace Okoro",
		Email:      "grace@h2.test",
		Role:       models.RoleDoctor,
		Password:   "another-secret",
	})
	if err != nil {
		t.Fatalf("SeedUser (update): %v", err)
	}
	if len(store.Users) != count {
		t.Errorf("expected upsert to keep %d users, got %d", count, len(store.Users))
	}
	if updated.ID != created.ID || updated.Role != models.RoleDoctor {
		t.Errorf("expected same user with new role, got %+v", updated)
	}
}

func TestSeedUser_Validation(t *testing.T) {
	valid := SeedUserInput{HospitalID: testutil.HospitalOne, Name: "N", Email: "n@h1.test", Role: models.RoleNurse, Password: "12345678"}

	tests := []struct {
		name   string
		mutate func(*SeedUserInput)
		want   apperr.Kind
	}{
		{"missing email", func(in *SeedUserInput) { in.Email = " " }, apperr.KindValidation},
		{"missing name", func(in *SeedUserInput) { in.Name = "" }, apperr.KindValidation},
		{"unknown role", func(in *SeedUserInput) { in.Role = "janitor" }, apperr.KindValidation},
		{"short password", func(in *SeedUserInput) { in.Password = "short" }, apperr.KindValidation},
		{"unknown hospital", func(in *SeedUserInput) { in.HospitalID = 404 }, apperr.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.Seeded()
			svc := NewSeedService(store, store, zap.NewNop())
			in := valid
			tt.mutate(&in)

			_, err := svc.SeedUser(context.Background(), in)
			if !apperr.Is(err, tt.want) {
				t.Fatalf("expected %s, got %v", tt.want, err)
			}
			if store.Mutations != 0 {
				t.Error("expected no writes")
			}
		})
	}
}
