package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	svc := NewJWTService([]byte("super-secret"), time.Hour)
	userID := uuid.New()

	tok, err := svc.Issue(userID)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	gotID, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if gotID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotID, userID)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewJWTService([]byte("secret"), -1*time.Second)

	tok, err := svc.Issue(uuid.New())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err = svc.Verify(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewJWTService([]byte("right-secret"), time.Hour)
	verifier := NewJWTService([]byte("wrong-secret"), time.Hour)

	tok, err := issuer.Issue(uuid.New())
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err = verifier.Verify(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	svc := NewJWTService([]byte("k"), time.Hour)
	if _, err := svc.Verify("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
