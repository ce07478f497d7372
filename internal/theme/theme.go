// Package theme tracks the light/dark preference. The preference is
// independent of the session and survives logout; it persists through the
// same adapter as the auth state.
package theme

import (
	"strings"
	"sync"
)

// Preference names a color scheme.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// Default is the scheme used before the user ever toggles the switch,
// matching the application's dark-first styling.
const Default = Dark

// Parse normalizes a stored preference value. Unknown values fall back to the
// default rather than failing, so a corrupt cache can never break startup.
func Parse(raw string) Preference {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(Light):
		return Light
	case string(Dark):
		return Dark
	default:
		return Default
	}
}

// Observer receives the new preference after every change.
type Observer func(Preference)

// Store holds the current preference and notifies observers synchronously on
// change, mirroring the session store's observer contract.
type Store struct {
	mu        sync.RWMutex
	current   Preference
	observers []Observer
}

// NewStore returns a store initialised to the given preference; the zero
// value falls back to the default scheme.
func NewStore(initial Preference) *Store {
	if initial != Light && initial != Dark {
		initial = Default
	}
	return &Store{current: initial}
}

// Current returns the active preference.
func (s *Store) Current() Preference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Subscribe registers an observer for subsequent changes.
func (s *Store) Subscribe(fn Observer) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// Set switches to the given preference. Setting the current value again is a
// no-op and is not observed.
func (s *Store) Set(p Preference) {
	if p != Light && p != Dark {
		return
	}

	s.mu.Lock()
	if s.current == p {
		s.mu.Unlock()
		return
	}
	s.current = p
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(p)
	}
}

// Toggle flips between light and dark and returns the new preference.
func (s *Store) Toggle() Preference {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	next := Dark
	if current == Dark {
		next = Light
	}
	s.Set(next)
	return next
}
