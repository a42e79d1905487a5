package service

import (
	"context"
	"testing"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/realtime"
	"hospital-emr-backend/internal/testutil"

	"go.uber.org/zap"
)

func TestLinkAttachment(t *testing.T) {
	store := testutil.Seeded()
	svc := NewChatService(store, store, nil, zap.NewNop())
	nurse := store.SessionFor(testutil.NurseOne)

	got, err := svc.LinkAttachment(context.Background(), nurse, testutil.AttachmentByNurse, testutil.MessageOne)
	if err != nil {
		t.Fatalf("LinkAttachment: %v", err)
	}
	if got.MessageID == nil || *got.MessageID != testutil.MessageOne {
		t.Fatalf("expected returned attachment linked to %d, got %v", testutil.MessageOne, got.MessageID)
	}
	stored := store.Attachment(testutil.AttachmentByNurse)
	if stored.MessageID == nil || *stored.MessageID != testutil.MessageOne {
		t.Fatalf("expected stored attachment linked, got %v", stored.MessageID)
	}

	// Linking again to the same message is a no-op.
	if _, err := svc.LinkAttachment(context.Background(), nurse, testutil.AttachmentByNurse, testutil.MessageOne); err != nil {
		t.Fatalf("relink: %v", err)
	}
	if store.Mutations != 1 {
		t.Errorf("expected one write, got %d", store.Mutations)
	}
}

func TestLinkAttachment_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		caller     uint
		attachment uint
		message    uint
		want       apperr.Kind
	}{
		{"missing message", testutil.NurseOne, testutil.AttachmentByNurse, 0, apperr.KindValidation},
		{"not the uploader", testutil.DoctorZara, testutil.AttachmentByNurse, testutil.MessageOne, apperr.KindForbidden},
		{"attachment of another hospital", testutil.NurseOne, testutil.AttachmentOtherTenant, testutil.MessageOne, apperr.KindNotFound},
		{"message of another hospital", testutil.NurseOne, testutil.AttachmentByNurse, testutil.MessageOtherTenant, apperr.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.Seeded()
			svc := NewChatService(store, store, nil, zap.NewNop())

			_, err := svc.LinkAttachment(context.Background(), store.SessionFor(tt.caller), tt.attachment, tt.message)
			if !apperr.Is(err, tt.want) {
				t.Fatalf("expected %s error, got %v", tt.want, err)
			}
			if store.Mutations != 0 {
				t.Errorf("expected no writes, got %d", store.Mutations)
			}
			if store.Attachment(testutil.AttachmentByNurse).MessageID != nil {
				t.Error("attachment should stay unlinked")
			}
		})
	}
}

func TestLinkAttachment_AlreadyLinkedElsewhere(t *testing.T) {
	store := testutil.Seeded()
	other := uint(12345)
	store.Attachments[0].MessageID = &other
	svc := NewChatService(store, store, nil, zap.NewNop())

	_, err := svc.LinkAttachment(context.Background(), store.SessionFor(testutil.NurseOne), testutil.AttachmentByNurse, testutil.MessageOne)
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestChatListUsers_ExcludesCallerAndPatients(t *testing.T) {
	store := testutil.Seeded()
	svc := NewChatService(store, store, nil, zap.NewNop())

	users, err := svc.ListUsers(context.Background(), store.SessionFor(testutil.NurseOne), "")
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	for _, u := range users {
		if u.ID == testutil.NurseOne {
			t.Error("caller should not be listed")
		}
		if u.ID == testutil.PatientOne || u.ID == testutil.InactiveDoctor || u.ID == testutil.DoctorTwo {
			t.Errorf("unexpected user %d in chat list", u.ID)
		}
	}
	// Abel, Ada, Chidi, Lara, Zara
	if len(users) != 5 {
		t.Fatalf("expected 5 chat users, got %d: %+v", len(users), users)
	}
	if users[0].Name != "Abel Mensah" {
		t.Errorf("expected name ordering, first was %q", users[0].Name)
	}

	filtered, err := svc.ListUsers(context.Background(), store.SessionFor(testutil.NurseOne), " ZARA ")
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ID != testutil.DoctorZara {
		t.Errorf("expected only Zara, got %+v", filtered)
	}
}

func TestLinkAttachment_PublishesToHospital(t *testing.T) {
	store := testutil.Seeded()
	hub := realtime.NewHub(zap.NewNop())
	own := hub.Subscribe(testutil.HospitalOne, testutil.DoctorZara)
	other := hub.Subscribe(testutil.HospitalTwo, testutil.DoctorTwo)
	svc := NewChatService(store, store, hub, zap.NewNop())

	if _, err := svc.LinkAttachment(context.Background(), store.SessionFor(testutil.NurseOne), testutil.AttachmentByNurse, testutil.MessageOne); err != nil {
		t.Fatalf("LinkAttachment: %v", err)
	}

	select {
	case ev := <-own.C:
		if ev.Type != realtime.EventAttachmentLinked {
			t.Errorf("unexpected event type %q", ev.Type)
		}
	default:
		t.Fatal("expected an event for hospital one")
	}
	if len(other.C) != 0 {
		t.Error("hospital two must not be notified")
	}
}
