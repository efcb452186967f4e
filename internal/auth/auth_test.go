package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hashed == "s3cret-password" {
		t.Fatal("password stored in plain text")
	}
	if !VerifyPassword("s3cret-password", hashed) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("wrong-password", hashed) {
		t.Fatal("wrong password accepted")
	}
}

func TestHashPassword_LongPasswordsTruncateConsistently(t *testing.T) {
	long := strings.Repeat("a", 100)
	hashed, err := HashPassword(long)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !VerifyPassword(long, hashed) {
		t.Fatal("long password rejected against its own hash")
	}
	// Bytes beyond the 72-byte bcrypt limit cannot affect the hash.
	if !VerifyPassword(strings.Repeat("a", 80), hashed) {
		t.Fatal("expected match within the truncated prefix")
	}
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m, err := NewTokenManager("test-secret", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := m.Issue("rahim")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	username, err := m.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if username != "rahim" {
		t.Fatalf("expected subject 'rahim', got %q", username)
	}
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	m, err := NewTokenManager("test-secret", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Issue with a tiny ttl and wait it out.
	m.ttl = time.Millisecond

	token, err := m.Issue("rahim")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenManager_RejectsForeignSignature(t *testing.T) {
	issuer, _ := NewTokenManager("secret-one", time.Minute)
	verifier, _ := NewTokenManager("secret-two", time.Minute)

	token, err := issuer.Issue("rahim")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	m, _ := NewTokenManager("test-secret", time.Minute)
	if _, err := m.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	if _, err := NewTokenManager("", time.Minute); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
