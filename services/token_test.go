package services

import (
	"errors"
	"testing"
	"time"
)

func TestTokenService(t *testing.T) {
	svc := NewTokenService("test_secret_key", time.Hour, 72*time.Hour)

	t.Run("Access token validates", func(t *testing.T) {
		token, expires, err := svc.GenerateAccessToken()
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if time.Until(expires) <= 0 {
			t.Error("expiry should be in the future")
		}
		if err := svc.ValidateAccessToken(token); err != nil {
			t.Errorf("expected valid token, got %v", err)
		}
	})

	t.Run("Share link carries its date", func(t *testing.T) {
		token, _, err := svc.GenerateShareLink("2025-12-21")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		date, err := svc.ValidateShareLink(token)
		if err != nil || date != "2025-12-21" {
			t.Errorf("expected 2025-12-21, got %q %v", date, err)
		}
	})

	t.Run("Token types are not interchangeable", func(t *testing.T) {
		share, _, _ := svc.GenerateShareLink("2025-12-21")
		if err := svc.ValidateAccessToken(share); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("share link accepted as access token: %v", err)
		}
		access, _, _ := svc.GenerateAccessToken()
		if _, err := svc.ValidateShareLink(access); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("access token accepted as share link: %v", err)
		}
	})

	t.Run("Other secrets are rejected", func(t *testing.T) {
		token, _, _ := NewTokenService("another_secret", time.Hour, time.Hour).GenerateAccessToken()
		if err := svc.ValidateAccessToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Expired tokens are rejected", func(t *testing.T) {
		past := NewTokenService("test_secret_key", time.Hour, time.Hour)
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, _, _ := past.GenerateAccessToken()
		if err := svc.ValidateAccessToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Share link needs a valid date", func(t *testing.T) {
		if _, _, err := svc.GenerateShareLink("yesterday"); err == nil {
			t.Error("expected an error for a bad date")
		}
	})
}
