package repository

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder is a gorm logger that keeps every rendered statement.
type sqlRecorder struct {
	mu         sync.Mutex
	statements []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Info(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Warn(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.mu.Lock()
	r.statements = append(r.statements, sql)
	r.mu.Unlock()
}

func (r *sqlRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.statements...)
}

// dryRunDB renders MySQL statements without a server.
func dryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()
	rec := &sqlRecorder{}
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "emr:emr@tcp(127.0.0.1:3306)/hospital_emr?charset=utf8mb4&parseTime=True&loc=UTC",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db, rec
}

func assertStatement(t *testing.T, statements []string, idx int, fragments ...string) {
	t.Helper()
	if idx >= len(statements) {
		t.Fatalf("expected statement %d, got %d statements: %v", idx, len(statements), statements)
	}
	sql := statements[idx]
	for _, f := range fragments {
		if !strings.Contains(sql, f) {
			t.Errorf("statement %d missing %q:\n%s", idx, f, sql)
		}
	}
}

func TestAdmissionRepository_TenantAndVersionGuards(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewAdmissionRepo(db)
	ctx := context.Background()

	if _, err := repo.GetAdmission(ctx, 1, 42); err != nil {
		t.Fatalf("GetAdmission: %v", err)
	}

	discharged := time.Date(2026, 10, 3, 9, 0, 0, 0, time.UTC)
	by := uint(11)
	admission := &models.Admission{
		ID:               42,
		HospitalID:       1,
		Status:           models.AdmissionDischarged,
		DischargeDate:    &discharged,
		DischargeSummary: "stable",
		DischargedBy:     &by,
		Version:          3,
	}
	saved, err := repo.SaveDischarge(ctx, admission)
	if err != nil {
		t.Fatalf("SaveDischarge: %v", err)
	}
	if saved || admission.Version != 3 {
		t.Errorf("no row matched, expected saved=false and version 3, got %v and %d", saved, admission.Version)
	}

	statements := rec.all()
	assertStatement(t, statements, 0, "FROM `admissions`", "WHERE id = 42 AND hospital_id = 1")
	assertStatement(t, statements, 1,
		"UPDATE `admissions` SET",
		"`status`='discharged'",
		"`discharged_by`=11",
		"`version`=version + 1",
		"WHERE id = 42 AND hospital_id = 1 AND version = 3",
	)
}

func TestChatRepository_LinkRequiresUploader(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewChatRepo(db)
	ctx := context.Background()

	if _, err := repo.MessageExists(ctx, 1, 80); err != nil {
		t.Fatalf("MessageExists: %v", err)
	}
	linked, err := repo.LinkAttachment(ctx, 1, 70, 13, 80)
	if err != nil {
		t.Fatalf("LinkAttachment: %v", err)
	}
	if linked {
		t.Error("expected no row to match in dry run")
	}

	statements := rec.all()
	assertStatement(t, statements, 0, "FROM `chat_messages`", "WHERE id = 80 AND hospital_id = 1")
	assertStatement(t, statements, 1,
		"UPDATE `chat_attachments` SET `message_id`=80",
		"WHERE id = 70 AND hospital_id = 1 AND uploaded_by = 13",
	)
}

func TestUserRepository_UpsertByEmail(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewUserRepo(db)

	err := repo.UpsertUserByEmail(context.Background(), &models.User{
		HospitalID:   1,
		Name:         "Ada Admin",
		Email:        "ada@stluke.test",
		PasswordHash: "hash",
		Role:         models.RoleAdmin,
		Active:       true,
	})
	if err != nil {
		t.Fatalf("UpsertUserByEmail: %v", err)
	}

	assertStatement(t, rec.all(), 0,
		"INSERT INTO `users`",
		"'ada@stluke.test'",
		"ON DUPLICATE KEY UPDATE `hospital_id`=VALUES(`hospital_id`),`name`=VALUES(`name`),`role`=VALUES(`role`),`password_hash`=VALUES(`password_hash`),`active`=VALUES(`active`),`updated_at`=VALUES(`updated_at`)",
	)
}

func TestUserRepository_ListStaffScopesAndEscapesSearch(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewUserRepo(db)

	_, err := repo.ListStaff(context.Background(), StaffFilter{
		HospitalID: 1,
		Roles:      models.ClinicalStaffRoles,
		Search:     "An_",
	})
	if err != nil {
		t.Fatalf("ListStaff: %v", err)
	}

	assertStatement(t, rec.all(), 0,
		"FROM `users` WHERE hospital_id = 1 AND role IN ('doctor','nurse','lab_tech')",
		`LOWER(name) LIKE '%an\_%' OR LOWER(email) LIKE '%an\_%'`,
		"ORDER BY name ASC",
	)
}

func TestUserRepository_ChatUsersExcludeCaller(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewUserRepo(db)

	if _, err := repo.ListChatUsers(context.Background(), 1, 11, ""); err != nil {
		t.Fatalf("ListChatUsers: %v", err)
	}
	if _, err := repo.ListActiveByRole(context.Background(), 1, models.RoleDoctor); err != nil {
		t.Fatalf("ListActiveByRole: %v", err)
	}

	statements := rec.all()
	assertStatement(t, statements, 0, "hospital_id = 1 AND active = true AND id <> 11", "role IN (")
	assertStatement(t, statements, 1, "WHERE hospital_id = 1 AND role = 'doctor' AND active = true", "ORDER BY name ASC")
}

func TestUserRepository_IsActiveUser(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewUserRepo(db)

	active, err := repo.IsActiveUser(context.Background(), 1, 13)
	if err != nil {
		t.Fatalf("IsActiveUser: %v", err)
	}
	if active {
		t.Error("expected no match in dry run")
	}

	assertStatement(t, rec.all(), 0, "SELECT count(*) FROM `users` WHERE id = 13 AND hospital_id = 1 AND active = true")
}

func TestUserRepository_DeactivateChecksTenant(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewUserRepo(db)

	err := repo.DeactivateUser(context.Background(), 1, 16)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found when nothing matched, got %v", err)
	}

	statements := rec.all()
	assertStatement(t, statements, 0, "UPDATE `users` SET `active`=false", "WHERE id = 16 AND hospital_id = 1")
	assertStatement(t, statements, 1, "SELECT count(*) FROM `users` WHERE id = 16 AND hospital_id = 1")
}

func TestHospitalRepository_ThemeOfActiveHospital(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewHospitalRepo(db)

	if _, err := repo.GetTheme(context.Background(), 1); err != nil {
		t.Fatalf("GetTheme: %v", err)
	}

	assertStatement(t, rec.all(), 0,
		"SELECT `id`,`name`,`logo_url`,`primary_color`,`secondary_color`,`tagline` FROM `hospitals`",
		"WHERE id = 1 AND is_active = true LIMIT 1",
	)
}

func TestCorporateClientRepository_ListActiveScopesTenant(t *testing.T) {
	db, rec := dryRunDB(t)
	repo := NewCorporateClientRepo(db)

	if _, err := repo.ListActive(context.Background(), 2); err != nil {
		t.Fatalf("ListActive: %v", err)
	}

	assertStatement(t, rec.all(), 0, "FROM `corporate_clients`", "WHERE hospital_id = 2 AND active = true")
}
