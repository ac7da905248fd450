package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const (
	testSecret   = "0123456789abcdef0123456789abcdef"
	testIssuer   = "tasks-api"
	testAudience = "tasks-client"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, testIssuer, testAudience)
	verifier := NewVerifier(testSecret, testIssuer, testAudience)

	token, expires, err := issuer.Issue(42, "alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned an empty token")
	}

	claims, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("UserID() error = %v", err)
	}
	if id != 42 {
		t.Errorf("UserID() = %d, want 42", id)
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want %q", claims.Username, "alice")
	}
	if !expires.Equal(claims.ExpiresAt.Time) {
		t.Errorf("returned expiry %v does not match the exp claim %v", expires, claims.ExpiresAt.Time)
	}
}

func TestIssueExpiryIsTwoHours(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenIssuer(testSecret, testIssuer, testAudience)
	issuer.now = func() time.Time { return issuedAt }

	_, expires, err := issuer.Issue(1, "alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if got := expires.Sub(issuedAt); got != 2*time.Hour {
		t.Errorf("expiry is %v after issuance, want 2h", got)
	}
}

func TestTokenLifetimeWindow(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewTokenIssuer(testSecret, testIssuer, testAudience)
	issuer.now = func() time.Time { return issuedAt }

	token, _, err := issuer.Issue(7, "bob")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name    string
		elapsed time.Duration
		wantErr bool
	}{
		{"just issued", 0, false},
		{"one minute before expiry", 119 * time.Minute, false},
		{"one minute after expiry", 121 * time.Minute, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := NewVerifier(testSecret, testIssuer, testAudience)
			verifier.now = func() time.Time { return issuedAt.Add(tt.elapsed) }

			_, err := verifier.Verify(token)
			if tt.wantErr && !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Verify() error = %v, want nil", err)
			}
		})
	}
}

func TestIssueWeakKeyFailsClosed(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{"missing key", ""},
		{"31 bytes", strings.Repeat("k", 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer := NewTokenIssuer(tt.secret, testIssuer, testAudience)
			token, _, err := issuer.Issue(1, "alice")
			if !errors.Is(err, ErrWeakKey) {
				t.Errorf("Issue() error = %v, want ErrWeakKey", err)
			}
			if token != "" {
				t.Error("Issue() returned a token despite a weak key")
			}
		})
	}
}

func TestVerifyRejectsTamperedTokens(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, testIssuer, testAudience)
	token, _, err := issuer.Issue(1, "alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// mọi lý do thất bại đều gộp về ErrInvalidToken
	tests := []struct {
		name     string
		verifier *Verifier
		token    string
	}{
		{"wrong key", NewVerifier(strings.Repeat("x", 32), testIssuer, testAudience), token},
		{"wrong issuer", NewVerifier(testSecret, "someone-else", testAudience), token},
		{"wrong audience", NewVerifier(testSecret, testIssuer, "other-client"), token},
		{"garbage", NewVerifier(testSecret, testIssuer, testAudience), "not.a.token"},
		{"empty", NewVerifier(testSecret, testIssuer, testAudience), ""},
		{"truncated signature", NewVerifier(testSecret, testIssuer, testAudience), token[:len(token)-4]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.verifier.Verify(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}
