package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/driveease/web-portal/internal/core/domain"
)

func TestContactService_Send_FailsFastOnMissingFields(t *testing.T) {
	api := &stubContactAPI{}
	svc := NewContactService(api, zerolog.Nop())

	incomplete := []domain.ContactMessage{
		{Email: "a@b.c", Message: "hi"},
		{FirstName: "Ann", Message: "hi"},
		{FirstName: "Ann", Email: "a@b.c"},
	}
	for _, m := range incomplete {
		var ve *domain.ValidationError
		if _, err := svc.Send(context.Background(), m); !errors.As(err, &ve) {
			t.Fatalf("message %+v: expected ValidationError, got %v", m, err)
		}
	}
	if len(api.calls) != 0 {
		t.Fatalf("expected no backend calls, got %v", api.calls)
	}
}

func TestContactService_Send_Delegates(t *testing.T) {
	api := &stubContactAPI{status: "Message received"}
	svc := NewContactService(api, zerolog.Nop())

	status, err := svc.Send(context.Background(), domain.ContactMessage{
		FirstName: "Ann", Email: "a@b.c", Subject: "Fleet", Message: "hi",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if status != "Message received" {
		t.Fatalf("unexpected status: %q", status)
	}
}

func TestContactService_Inbox(t *testing.T) {
	api := &stubContactAPI{messages: []domain.ContactMessage{{ID: 1, FirstName: "Ann"}}}
	svc := NewContactService(api, zerolog.Nop())

	messages, err := svc.Inbox(context.Background())
	if err != nil {
		t.Fatalf("Inbox: %v", err)
	}
	if len(messages) != 1 || messages[0].ID != 1 {
		t.Fatalf("unexpected messages: %+v", messages)
	}
}
