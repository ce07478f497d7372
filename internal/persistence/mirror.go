package persistence

import (
	"context"
	"log/slog"
	"sync"

	"github.com/example/trip-planner/internal/session"
	"github.com/example/trip-planner/internal/theme"
)

// Mirror subscribes to the session and theme stores and writes every change
// through to the KV. The in-memory stores stay authoritative; a failed write
// is logged and swallowed so user-facing operations never see storage errors.
type Mirror struct {
	kv     KV
	logger *slog.Logger

	mu    sync.Mutex
	token string
}

// NewMirror constructs a mirror over the given store.
func NewMirror(kv KV, logger *slog.Logger) *Mirror {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mirror{kv: kv, logger: logger}
}

// Attach registers the mirror with both stores. Call once at startup, after
// the stores have been seeded from Restore, so the initial state is not
// re-written.
func (m *Mirror) Attach(sessions *session.Store, themes *theme.Store) {
	if sessions != nil {
		sessions.Subscribe(m.onSession)
	}
	if themes != nil {
		themes.Subscribe(m.onTheme)
	}
}

// SetToken records the token to embed in subsequent auth writes. The login
// flow calls this before mutating the session store, so the mirrored write
// triggered by the login already carries the token. Logout clears it
// implicitly when the logged-out snapshot arrives.
func (m *Mirror) SetToken(token string) {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
}

func (m *Mirror) onSession(snapshot session.Session) {
	ctx := context.Background()

	m.mu.Lock()
	if !snapshot.LoggedIn {
		m.token = ""
	}
	token := m.token
	m.mu.Unlock()

	payload, err := EncodeAuthState(AuthState{
		Token:     token,
		LoggedIn:  snapshot.LoggedIn,
		User:      snapshot.User,
		Favorites: snapshot.Favorites,
		Bookings:  snapshot.Bookings,
	})
	if err != nil {
		m.logger.ErrorContext(ctx, "encoding auth state for mirror failed",
			slog.String("key", KeyAuth), slog.String("error", err.Error()))
		return
	}

	if err := m.kv.Set(ctx, KeyAuth, payload); err != nil {
		m.logger.ErrorContext(ctx, "mirroring auth state failed",
			slog.String("key", KeyAuth), slog.String("error", err.Error()))
	}
}

func (m *Mirror) onTheme(p theme.Preference) {
	ctx := context.Background()
	if err := m.kv.Set(ctx, KeyTheme, []byte(p)); err != nil {
		m.logger.ErrorContext(ctx, "mirroring theme failed",
			slog.String("key", KeyTheme), slog.String("error", err.Error()))
	}
}
