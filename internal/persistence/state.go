package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/trip-planner/internal/session"
	"github.com/example/trip-planner/internal/theme"
)

// Only these keys are mirrored. Everything else the application holds in
// memory (catalog, display state, wallet selection) is rebuilt on startup.
const (
	KeyAuth  = "auth"
	KeyTheme = "theme"
)

// AuthState is the JSON document stored under KeyAuth. It carries the signed
// session token alongside the session body so restore can prove the cache
// still belongs to a valid sign-in.
type AuthState struct {
	Token     string                `json:"token,omitempty"`
	LoggedIn  bool                  `json:"logged_in"`
	User      session.Profile       `json:"user"`
	Favorites []session.FavoriteRef `json:"favorites,omitempty"`
	Bookings  []session.Booking     `json:"bookings,omitempty"`
}

// EncodeAuthState serialises the auth document for storage.
func EncodeAuthState(state AuthState) ([]byte, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("persistence: encoding auth state: %w", err)
	}
	return payload, nil
}

// DecodeAuthState parses a stored auth document.
func DecodeAuthState(payload []byte) (AuthState, error) {
	var state AuthState
	if err := json.Unmarshal(payload, &state); err != nil {
		return AuthState{}, fmt.Errorf("persistence: decoding auth state: %w", err)
	}
	return state, nil
}

// TokenVerifier checks a persisted session token and returns the identity it
// was issued for.
type TokenVerifier interface {
	Verify(raw string) (session.Profile, error)
}

// RestoredState is the startup snapshot rebuilt from the durable store.
// Fields always hold usable values; corruption degrades to the logged-out
// defaults rather than failing. ThemeStored reports whether Theme came from a
// stored user choice, so callers can tell an explicit preference apart from
// the fallback and only apply their own default when nothing was stored.
type RestoredState struct {
	Session     session.Session
	Token       string
	Theme       theme.Preference
	ThemeStored bool
}

// Restore reads the mirrored keys and rebuilds the application state. Any
// failure along the way (storage error, corrupt JSON, invalid or mismatched
// token) is logged and replaced with the default for that key, so startup
// never aborts on a bad cache.
func Restore(ctx context.Context, kv KV, tokens TokenVerifier, logger *slog.Logger) RestoredState {
	if logger == nil {
		logger = slog.Default()
	}

	restored := RestoredState{Theme: theme.Default}
	restored.Theme, restored.ThemeStored = restoreTheme(ctx, kv, logger)

	state, ok := restoreAuth(ctx, kv, logger)
	if !ok || !state.LoggedIn {
		return restored
	}

	if tokens != nil {
		profile, err := tokens.Verify(state.Token)
		if err != nil {
			logger.WarnContext(ctx, "persisted session token rejected, starting logged out",
				slog.String("key", KeyAuth))
			return restored
		}
		if !strings.EqualFold(profile.Email, state.User.Email) {
			logger.WarnContext(ctx, "persisted session token identity mismatch, starting logged out",
				slog.String("key", KeyAuth))
			return restored
		}
	}

	restored.Token = state.Token
	restored.Session = session.Session{
		LoggedIn:  true,
		User:      state.User,
		Favorites: state.Favorites,
		Bookings:  state.Bookings,
	}
	return restored
}

func restoreTheme(ctx context.Context, kv KV, logger *slog.Logger) (theme.Preference, bool) {
	value, err := kv.Get(ctx, KeyTheme)
	if errors.Is(err, ErrNotFound) {
		return theme.Default, false
	}
	if err != nil {
		logger.WarnContext(ctx, "reading persisted theme failed, using default",
			slog.String("key", KeyTheme), slog.String("error", err.Error()))
		return theme.Default, false
	}

	// An unrecognised value is corrupt data, not a stored choice.
	switch strings.ToLower(strings.TrimSpace(string(value))) {
	case string(theme.Light):
		return theme.Light, true
	case string(theme.Dark):
		return theme.Dark, true
	}

	logger.WarnContext(ctx, "persisted theme value unknown, using default",
		slog.String("key", KeyTheme))
	return theme.Default, false
}

func restoreAuth(ctx context.Context, kv KV, logger *slog.Logger) (AuthState, bool) {
	payload, err := kv.Get(ctx, KeyAuth)
	if errors.Is(err, ErrNotFound) {
		return AuthState{}, false
	}
	if err != nil {
		logger.WarnContext(ctx, "reading persisted auth state failed, starting logged out",
			slog.String("key", KeyAuth), slog.String("error", err.Error()))
		return AuthState{}, false
	}

	state, err := DecodeAuthState(payload)
	if err != nil {
		logger.WarnContext(ctx, "persisted auth state corrupt, starting logged out",
			slog.String("key", KeyAuth), slog.String("error", err.Error()))
		return AuthState{}, false
	}
	return state, true
}
