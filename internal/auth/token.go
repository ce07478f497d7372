package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/example/trip-planner/internal/session"
)

// ErrTokenInvalid is returned when a session token fails verification for
// any reason: bad signature, expiry, or a garbled payload. Callers treat it
// as "no session".
var ErrTokenInvalid = errors.New("auth: session token invalid")

// TokenIssuer mints and verifies the HS256 session tokens kept in the local
// cache. Verification at restore is what makes a tampered or expired cache
// fall back to the logged-out default instead of resurrecting a session.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer constructs an issuer. A non-positive ttl defaults to 30
// days, roughly the lifetime of a signed-in mobile session.
func NewTokenIssuer(secret []byte, ttl time.Duration, now func() time.Time) *TokenIssuer {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	if now == nil {
		now = time.Now
	}
	return &TokenIssuer{secret: secret, ttl: ttl, now: now}
}

// Issue signs a token carrying the profile identity.
func (t *TokenIssuer) Issue(profile session.Profile) (string, error) {
	issued := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   profile.Email,
		"name":  profile.Name,
		"phone": profile.Phone,
		"iat":   issued.Unix(),
		"exp":   issued.Add(t.ttl).Unix(),
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing session token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and returns the embedded
// profile. Any failure maps to ErrTokenInvalid.
func (t *TokenIssuer) Verify(raw string) (session.Profile, error) {
	parsed, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil || !parsed.Valid {
		return session.Profile{}, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return session.Profile{}, ErrTokenInvalid
	}

	email, _ := claims["sub"].(string)
	if email == "" {
		return session.Profile{}, ErrTokenInvalid
	}
	name, _ := claims["name"].(string)
	phone, _ := claims["phone"].(string)

	return session.Profile{Name: name, Email: email, Phone: phone}, nil
}
