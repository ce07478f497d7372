// Package auth keeps the device-local account vault. There is no identity
// backend: registration, login and password reset all operate on accounts
// stored in the same local key-value store that caches the session. The
// session store itself stays credential-agnostic; screens call the vault
// first and hand the resulting profile to the store.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/trip-planner/internal/logging"
	"github.com/example/trip-planner/internal/persistence"
	"github.com/example/trip-planner/internal/session"
	"github.com/example/trip-planner/internal/validation"
)

var (
	// ErrInvalidCredentials is returned when the e-mail is unknown or the
	// password does not match. The two cases are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrAccountExists is returned when registering an e-mail that already
	// has an account.
	ErrAccountExists = errors.New("auth: account already exists")
	// ErrAccountNotFound is returned by password reset for unknown e-mails.
	ErrAccountNotFound = errors.New("auth: account not found")
)

const accountKeyPrefix = "account:"

// Storage is the slice of the key-value store the vault needs.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type accountRecord struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Vault manages local accounts.
type Vault struct {
	storage Storage
	now     func() time.Time
	logger  *slog.Logger
}

// NewVault constructs a vault over the given storage.
func NewVault(storage Storage, now func() time.Time, logger *slog.Logger) *Vault {
	if now == nil {
		now = time.Now
	}
	return &Vault{storage: storage, now: now, logger: logging.Default(logger)}
}

// RegisterParams carries the sign-up form fields.
type RegisterParams struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

func (p RegisterParams) validate() *validation.Error {
	v := &validation.Error{}
	if strings.TrimSpace(p.Name) == "" {
		v.Add("name", "name is required")
	}
	email := strings.TrimSpace(p.Email)
	if email == "" {
		v.Add("email", "e-mail is required")
	} else if !strings.Contains(email, "@") {
		v.Add("email", "e-mail is not valid")
	}
	if len(p.Password) < 6 {
		v.Add("password", "password must be at least 6 characters")
	}
	return v
}

// Register creates a local account and returns its profile.
func (v *Vault) Register(ctx context.Context, params RegisterParams) (session.Profile, error) {
	logger := logging.ServiceLogger(ctx, v.logger, "Vault", "Register", "email", normalizeEmail(params.Email))

	if verr := params.validate(); verr.HasErrors() {
		return session.Profile{}, verr
	}

	key := accountKey(params.Email)
	if _, err := v.storage.Get(ctx, key); err == nil {
		return session.Profile{}, ErrAccountExists
	} else if !errors.Is(err, persistence.ErrNotFound) {
		return session.Profile{}, fmt.Errorf("auth: checking account: %w", err)
	}

	hash, err := HashPassword(params.Password)
	if err != nil {
		return session.Profile{}, fmt.Errorf("auth: hashing password: %w", err)
	}

	record := accountRecord{
		Name:         strings.TrimSpace(params.Name),
		Email:        normalizeEmail(params.Email),
		Phone:        strings.TrimSpace(params.Phone),
		PasswordHash: hash,
		CreatedAt:    v.now().UTC(),
	}
	if err := v.putAccount(ctx, key, record); err != nil {
		return session.Profile{}, err
	}

	logger.InfoContext(ctx, "account registered")
	return record.profile(), nil
}

// Authenticate verifies the e-mail/password pair and returns the account's
// profile on success.
func (v *Vault) Authenticate(ctx context.Context, email, password string) (session.Profile, error) {
	logger := logging.ServiceLogger(ctx, v.logger, "Vault", "Authenticate", "email", normalizeEmail(email))

	record, err := v.getAccount(ctx, email)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return session.Profile{}, ErrInvalidCredentials
		}
		return session.Profile{}, err
	}

	if err := CheckPassword(record.PasswordHash, password); err != nil {
		if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrInvalidPasswordHash) {
			return session.Profile{}, ErrInvalidCredentials
		}
		return session.Profile{}, err
	}

	logger.InfoContext(ctx, "authentication succeeded")
	return record.profile(), nil
}

// ResetPassword replaces the password of an existing account (the
// forgot-password flow; the "code" step is purely presentational and never
// reaches this layer).
func (v *Vault) ResetPassword(ctx context.Context, email, newPassword string) error {
	logger := logging.ServiceLogger(ctx, v.logger, "Vault", "ResetPassword", "email", normalizeEmail(email))

	if len(newPassword) < 6 {
		verr := &validation.Error{}
		verr.Add("password", "password must be at least 6 characters")
		return verr
	}

	record, err := v.getAccount(ctx, email)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth: hashing password: %w", err)
	}
	record.PasswordHash = hash

	if err := v.putAccount(ctx, accountKey(email), record); err != nil {
		return err
	}

	logger.InfoContext(ctx, "password reset")
	return nil
}

func (v *Vault) getAccount(ctx context.Context, email string) (accountRecord, error) {
	raw, err := v.storage.Get(ctx, accountKey(email))
	if err != nil {
		return accountRecord{}, err
	}
	var record accountRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return accountRecord{}, fmt.Errorf("auth: decoding account: %w", err)
	}
	return record, nil
}

func (v *Vault) putAccount(ctx context.Context, key string, record accountRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("auth: encoding account: %w", err)
	}
	if err := v.storage.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("auth: storing account: %w", err)
	}
	return nil
}

func (r accountRecord) profile() session.Profile {
	return session.Profile{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

func accountKey(email string) string {
	return accountKeyPrefix + normalizeEmail(email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
