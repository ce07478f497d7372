// Package app wires the trip planner core together: catalog, stores, auth,
// booking and the persistence mirror. A UI shell embeds one App and calls its
// services; the package owns startup restore and shutdown of the durable
// store.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/example/trip-planner/internal/auth"
	"github.com/example/trip-planner/internal/booking"
	"github.com/example/trip-planner/internal/catalog"
	"github.com/example/trip-planner/internal/display"
	"github.com/example/trip-planner/internal/logging"
	"github.com/example/trip-planner/internal/payment"
	"github.com/example/trip-planner/internal/persistence"
	"github.com/example/trip-planner/internal/session"
	"github.com/example/trip-planner/internal/theme"
)

// Options configures New. KV and SessionSecret are required; the rest default
// to production values.
type Options struct {
	KV            persistence.KV
	SessionSecret string
	SessionTTL    time.Duration
	DefaultTheme  theme.Preference
	Logger        *slog.Logger
	Now           func() time.Time
}

// App aggregates the core services. Fields are exposed directly; every
// service is safe for concurrent use.
type App struct {
	Catalog  *catalog.Catalog
	Sessions *session.Store
	Themes   *theme.Store
	Resolver *display.Resolver
	Vault    *auth.Vault
	Tokens   *auth.TokenIssuer
	Planner  *booking.Planner
	Wallet   *payment.Wallet
	Mirror   *persistence.Mirror

	kv persistence.KV
}

// New restores persisted state and wires the services. The returned App is
// ready for use; callers must Close it to release the durable store.
func New(ctx context.Context, opts Options) (*App, error) {
	if opts.KV == nil {
		return nil, fmt.Errorf("app: options require a KV store")
	}
	if opts.SessionSecret == "" {
		return nil, fmt.Errorf("app: options require a session secret")
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Default(logging.FromContext(ctx))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	routes, err := catalog.BuiltIn()
	if err != nil {
		return nil, fmt.Errorf("app: loading route catalog: %w", err)
	}

	tokens := auth.NewTokenIssuer([]byte(opts.SessionSecret), opts.SessionTTL, now)
	restored := persistence.Restore(ctx, opts.KV, tokens, logger)

	sessions := session.NewStore()
	sessions.Restore(restored.Session)

	// A stored preference always wins; the configured default only fills in
	// when no choice was ever persisted.
	initialTheme := restored.Theme
	if !restored.ThemeStored && opts.DefaultTheme != "" {
		initialTheme = opts.DefaultTheme
	}
	themes := theme.NewStore(initialTheme)

	mirror := persistence.NewMirror(opts.KV, logger)
	mirror.SetToken(restored.Token)
	mirror.Attach(sessions, themes)

	return &App{
		Catalog:  routes,
		Sessions: sessions,
		Themes:   themes,
		Resolver: display.NewResolver(routes),
		Vault:    auth.NewVault(opts.KV, now, logger),
		Tokens:   tokens,
		Planner:  booking.NewPlanner(routes, sessions, booking.NewReference, now, logger),
		Wallet:   payment.NewWallet(nil, func() string { return uuid.NewString() }, now),
		Mirror:   mirror,
		kv:       opts.KV,
	}, nil
}

// Login authenticates the credentials, issues a session token and signs the
// user into the session store. The mirror picks up the token so the session
// survives a restart.
func (a *App) Login(ctx context.Context, email, password string) (session.Profile, error) {
	profile, err := a.Vault.Authenticate(ctx, email, password)
	if err != nil {
		return session.Profile{}, err
	}

	token, err := a.Tokens.Issue(profile)
	if err != nil {
		return session.Profile{}, err
	}

	a.Mirror.SetToken(token)
	a.Sessions.Login(profile)
	return profile, nil
}

// Register creates an account and signs the new user in.
func (a *App) Register(ctx context.Context, params auth.RegisterParams) (session.Profile, error) {
	profile, err := a.Vault.Register(ctx, params)
	if err != nil {
		return session.Profile{}, err
	}

	token, err := a.Tokens.Issue(profile)
	if err != nil {
		return session.Profile{}, err
	}

	a.Mirror.SetToken(token)
	a.Sessions.Login(profile)
	return profile, nil
}

// Logout signs the user out; the mirror writes the logged-out state through.
func (a *App) Logout() {
	a.Sessions.Logout()
}

// Close releases the durable store.
func (a *App) Close() error {
	return a.kv.Close()
}
