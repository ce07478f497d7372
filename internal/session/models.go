package session

import (
	"time"

	"github.com/example/trip-planner/internal/catalog"
)

// Profile identifies the signed-in user. Any profile value is accepted by the
// store; credential checks live in the auth vault, not here.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// FavoriteRef marks a catalog route as saved by the user. It carries the
// display fields the favorites list renders without a catalog join; detail
// navigation resolves the full record by RouteID.
type FavoriteRef struct {
	RouteID string            `json:"route_id"`
	Type    catalog.RouteType `json:"type"`
	Name    string            `json:"name"`
	Image   string            `json:"image,omitempty"`
}

// Contact holds the traveller details captured on the plan-trip form.
type Contact struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// Booking is a confirmed trip-plan record. It snapshots the route's display
// fields at booking time so history entries stay renderable even if the
// catalog entry is later removed. Bookings are never mutated after creation.
type Booking struct {
	Reference  string              `json:"reference"`
	RouteID    string              `json:"route_id"`
	Route      catalog.RouteRecord `json:"route"`
	Passengers int                 `json:"passengers"`
	// TravelDate is a calendar date in YYYY-MM-DD form.
	TravelDate string    `json:"travel_date"`
	Contact    Contact   `json:"contact"`
	BookedAt   time.Time `json:"booked_at"`
}

// Session aggregates the authenticated user's in-memory state. When LoggedIn
// is false, User, Favorites and Bookings are all empty.
type Session struct {
	LoggedIn  bool
	User      Profile
	Favorites []FavoriteRef
	Bookings  []Booking
}

func cloneSession(s Session) Session {
	out := s
	out.Favorites = append([]FavoriteRef(nil), s.Favorites...)
	out.Bookings = make([]Booking, len(s.Bookings))
	for i, b := range s.Bookings {
		out.Bookings[i] = cloneBooking(b)
	}
	return out
}

func cloneBooking(b Booking) Booking {
	out := b
	out.Route.Stops = append([]string(nil), b.Route.Stops...)
	out.Route.Schedule = append([]string(nil), b.Route.Schedule...)
	return out
}
