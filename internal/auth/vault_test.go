package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/example/trip-planner/internal/persistence"
	"github.com/example/trip-planner/internal/validation"
)

type storageStub struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newStorageStub() *storageStub {
	return &storageStub{values: make(map[string][]byte)}
}

func (s *storageStub) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if !ok {
		return nil, persistence.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *storageStub) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func fixedNow() time.Time {
	return time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
}

func TestVault_RegisterAndAuthenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	vault := NewVault(newStorageStub(), fixedNow, nil)

	profile, err := vault.Register(ctx, RegisterParams{
		Name:     "Amaya Perera",
		Email:    " Amaya@Example.com ",
		Phone:    "0771234567",
		Password: "wanderlust",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if profile.Email != "amaya@example.com" {
		t.Fatalf("expected normalized e-mail, got %q", profile.Email)
	}

	t.Run("authenticates with the right password", func(t *testing.T) {
		got, err := vault.Authenticate(ctx, "amaya@example.com", "wanderlust")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if got.Name != "Amaya Perera" || got.Phone != "0771234567" {
			t.Fatalf("unexpected profile %#v", got)
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		if _, err := vault.Authenticate(ctx, "amaya@example.com", "nope"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("rejects an unknown e-mail with the same error", func(t *testing.T) {
		if _, err := vault.Authenticate(ctx, "ghost@example.com", "wanderlust"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("rejects duplicate registration", func(t *testing.T) {
		_, err := vault.Register(ctx, RegisterParams{
			Name:     "Other",
			Email:    "AMAYA@example.com",
			Password: "different",
		})
		if !errors.Is(err, ErrAccountExists) {
			t.Fatalf("expected ErrAccountExists, got %v", err)
		}
	})
}

func TestVault_RegisterValidation(t *testing.T) {
	t.Parallel()

	vault := NewVault(newStorageStub(), fixedNow, nil)

	_, err := vault.Register(context.Background(), RegisterParams{Email: "not-an-email", Password: "123"})

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"name", "email", "password"} {
		if _, ok := verr.FieldErrors[field]; !ok {
			t.Fatalf("expected a %s field error, got %#v", field, verr.FieldErrors)
		}
	}
}

func TestVault_ResetPassword(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	vault := NewVault(newStorageStub(), fixedNow, nil)

	if _, err := vault.Register(ctx, RegisterParams{Name: "Amaya", Email: "amaya@example.com", Password: "original"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := vault.ResetPassword(ctx, "amaya@example.com", "renewed!"); err != nil {
		t.Fatalf("ResetPassword failed: %v", err)
	}

	if _, err := vault.Authenticate(ctx, "amaya@example.com", "original"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("old password should no longer authenticate")
	}
	if _, err := vault.Authenticate(ctx, "amaya@example.com", "renewed!"); err != nil {
		t.Fatalf("new password should authenticate: %v", err)
	}

	t.Run("unknown account", func(t *testing.T) {
		if err := vault.ResetPassword(ctx, "ghost@example.com", "whatever"); !errors.Is(err, ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("short password", func(t *testing.T) {
		var verr *validation.Error
		if err := vault.ResetPassword(ctx, "amaya@example.com", "abc"); !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret-passphrase")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if err := CheckPassword(hash, "secret-passphrase"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := CheckPassword(hash, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := CheckPassword("not-a-hash", "secret-passphrase"); !errors.Is(err, ErrInvalidPasswordHash) {
		t.Fatalf("expected ErrInvalidPasswordHash, got %v", err)
	}
	if err := CheckPassword("$bcrypt$v=19$m=1,t=1,p=1$AAAA$BBBB", "x"); !errors.Is(err, ErrInvalidPasswordHash) {
		t.Fatalf("expected ErrInvalidPasswordHash for foreign scheme, got %v", err)
	}
}
