package auth

import (
	"errors"
	"testing"
	"time"
)

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.Issue("u-1", "mechanic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "u-1" || claims.Role != "mechanic" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTService_Validate(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		if _, err := svc.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewJWTService("other-secret", time.Hour).Issue("u-1", "user")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := NewJWTService("test-secret", -time.Minute).Issue("u-1", "user")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
