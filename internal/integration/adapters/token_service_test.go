package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/spendwise/backend/internal/domain/error"
)

func TestTokenService(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(ctx, userID, "xiaoming@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := svc.ValidateAccessToken(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != userID {
			t.Error("user id mismatch")
		}
		if claims.Email != "xiaoming@example.com" {
			t.Errorf("email mismatch: %s", claims.Email)
		}
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		other := NewTokenService("other-secret", time.Hour)
		token, err := other.GenerateAccessToken(ctx, userID, "x@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = svc.ValidateAccessToken(ctx, token)
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := NewTokenService("test-secret", -time.Minute)
		token, err := expired.GenerateAccessToken(ctx, userID, "x@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = svc.ValidateAccessToken(ctx, token)
		if !errors.Is(err, domainerror.ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(ctx, "not.a.jwt")
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService()

	t.Run("hash and verify", func(t *testing.T) {
		hash, err := svc.HashPassword("secret-password-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.VerifyPassword(hash, "secret-password-1"); err != nil {
			t.Errorf("expected matching password, got %v", err)
		}
		if err := svc.VerifyPassword(hash, "wrong"); err == nil {
			t.Error("expected mismatch error")
		}
	})

	t.Run("strength validation", func(t *testing.T) {
		if err := svc.ValidatePasswordStrength("short"); err == nil {
			t.Error("expected a weak password error")
		}
		if err := svc.ValidatePasswordStrength("long-enough-password"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
