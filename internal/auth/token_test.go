package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	userID := uuid.New()

	raw, err := issueToken(secret, userID, "anna@example.com", time.Hour)
	if err != nil {
		t.Fatalf("issueToken failed: %v", err)
	}

	claims, err := parseToken(secret, raw)
	if err != nil {
		t.Fatalf("parseToken failed: %v", err)
	}

	if claims.Subject != userID.String() {
		t.Errorf("Subject = %q, want %q", claims.Subject, userID.String())
	}
	if claims.Email != "anna@example.com" {
		t.Errorf("Email = %q, want anna@example.com", claims.Email)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	raw, err := issueToken([]byte("secret-a"), uuid.New(), "anna@example.com", time.Hour)
	if err != nil {
		t.Fatalf("issueToken failed: %v", err)
	}

	if _, err := parseToken([]byte("secret-b"), raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	raw, err := issueToken(secret, uuid.New(), "anna@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("issueToken failed: %v", err)
	}

	if _, err := parseToken(secret, raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := parseToken([]byte("test-secret"), "not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"valid", "Bearer abc123", "abc123"},
		{"case insensitive scheme", "bearer abc123", "abc123"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic abc123", ""},
		{"no token", "Bearer", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			if got := bearerToken(r); got != tt.want {
				t.Errorf("token = %q, want %q", got, tt.want)
			}
		})
	}
}
