package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/example/trip-planner/internal/session"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	t.Parallel()

	issued := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	now := issued
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour, func() time.Time { return now })

	profile := session.Profile{Name: "Amaya", Email: "amaya@example.com", Phone: "0771234567"}
	token, err := issuer.Issue(profile)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	got, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if got != profile {
		t.Fatalf("expected %#v, got %#v", profile, got)
	}

	t.Run("expired token is rejected", func(t *testing.T) {
		now = issued.Add(2 * time.Hour)
		defer func() { now = issued }()

		if _, err := issuer.Verify(token); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})
}

func TestTokenIssuer_RejectsTampering(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour, nil)
	token, err := issuer.Issue(session.Profile{Email: "amaya@example.com"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	t.Run("garbled payload", func(t *testing.T) {
		t.Parallel()

		parts := strings.Split(token, ".")
		parts[1] = "AAAA" + parts[1][4:]
		if _, err := issuer.Verify(strings.Join(parts, ".")); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})

	t.Run("foreign secret", func(t *testing.T) {
		t.Parallel()

		other := NewTokenIssuer([]byte("other-secret"), time.Hour, nil)
		if _, err := other.Verify(token); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})

	t.Run("not a token at all", func(t *testing.T) {
		t.Parallel()

		if _, err := issuer.Verify("definitely-not-a-jwt"); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		t.Parallel()

		token, err := issuer.Issue(session.Profile{})
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		if _, err := issuer.Verify(token); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for empty subject, got %v", err)
		}
	})
}
