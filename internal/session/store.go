// Package session holds the authoritative client-side state: authentication
// status, the current profile, saved favorites and the booking history. Every
// screen reads snapshots from the Store and mutates state only through its
// operations.
package session

import (
	"strings"
	"sync"
)

// Observer receives a snapshot of the session after every applied mutation.
// Observers run synchronously on the mutating goroutine, after the state
// change is applied and before the operation returns.
type Observer func(Session)

// Store is the single authoritative holder of session state. Mutations are
// total: observers never see a partially applied update.
type Store struct {
	mu        sync.RWMutex
	state     Session
	observers []Observer
}

// NewStore returns an empty, logged-out store.
func NewStore() *Store {
	return &Store{}
}

// Subscribe registers an observer for subsequent mutations. Registration is
// expected once at startup (the persistence mirror, the view layer); there is
// no unsubscribe.
func (s *Store) Subscribe(fn Observer) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// Snapshot returns a deep copy of the current session.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSession(s.state)
}

// Login marks the session authenticated as the given profile. Sessions are
// keyed by identity: signing in as a different e-mail than the current user
// clears favorites and bookings, while re-login of the same identity keeps
// them.
func (s *Store) Login(profile Profile) {
	s.mutate(func(state *Session) bool {
		if !sameIdentity(state.User, profile) {
			state.Favorites = nil
			state.Bookings = nil
		}
		state.LoggedIn = true
		state.User = profile
		return true
	})
}

// Logout resets the session completely: identity, favorites and bookings are
// all cleared. Idempotent.
func (s *Store) Logout() {
	s.mutate(func(state *Session) bool {
		*state = Session{}
		return true
	})
}

// AddFavorite saves a route reference. Favorites have set semantics on the
// route ID; adding an already saved route is a no-op and is not observed.
func (s *Store) AddFavorite(ref FavoriteRef) {
	if strings.TrimSpace(ref.RouteID) == "" {
		return
	}
	s.mutate(func(state *Session) bool {
		for _, existing := range state.Favorites {
			if existing.RouteID == ref.RouteID {
				return false
			}
		}
		state.Favorites = append(state.Favorites, ref)
		return true
	})
}

// RemoveFavorite deletes the favorite with the given route ID. No-op when the
// route was not saved.
func (s *Store) RemoveFavorite(routeID string) {
	s.mutate(func(state *Session) bool {
		kept := state.Favorites[:0]
		for _, existing := range state.Favorites {
			if existing.RouteID != routeID {
				kept = append(kept, existing)
			}
		}
		changed := len(kept) != len(state.Favorites)
		state.Favorites = kept
		return changed
	})
}

// IsFavorite reports whether the route is currently saved.
func (s *Store) IsFavorite(routeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, existing := range s.state.Favorites {
		if existing.RouteID == routeID {
			return true
		}
	}
	return false
}

// AddBooking inserts a booking at the head of the history (most recent
// first). Bookings are not deduplicated; a route may be booked repeatedly.
func (s *Store) AddBooking(b Booking) {
	s.mutate(func(state *Session) bool {
		state.Bookings = append([]Booking{cloneBooking(b)}, state.Bookings...)
		return true
	})
}

// Restore replaces the whole session in one step, used at startup to seed the
// store from the persisted snapshot before the first render.
func (s *Store) Restore(restored Session) {
	s.mutate(func(state *Session) bool {
		*state = cloneSession(restored)
		return true
	})
}

func (s *Store) mutate(apply func(*Session) bool) {
	s.mu.Lock()
	changed := apply(&s.state)
	snapshot := cloneSession(s.state)
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range observers {
		fn(cloneSession(snapshot))
	}
}

func sameIdentity(current, next Profile) bool {
	a := strings.ToLower(strings.TrimSpace(current.Email))
	b := strings.ToLower(strings.TrimSpace(next.Email))
	return a != "" && a == b
}
