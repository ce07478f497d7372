// Package testfixtures supplies deterministic clocks, identifier generators
// and canned domain records for tests across the module.
package testfixtures

import (
	"fmt"
	"time"

	"github.com/example/trip-planner/internal/catalog"
	"github.com/example/trip-planner/internal/session"
)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
}

// RouteRecord returns a bus route fixture. The index varies the identifier so
// tests can build small catalogs of distinct routes.
func RouteRecord(index int) catalog.RouteRecord {
	return catalog.RouteRecord{
		ID:       fmt.Sprintf("SL%03d", index),
		Name:     fmt.Sprintf("Route %d Express", index),
		Type:     catalog.RouteBus,
		Status:   catalog.StatusActive,
		Duration: "2h 30m",
		Stops:    []string{"Jakarta", "Bandung"},
		Schedule: []string{"08:00", "13:00", "19:00"},
	}
}

// FlightRecord returns a flight route fixture.
func FlightRecord(index int) catalog.RouteRecord {
	return catalog.RouteRecord{
		ID:       fmt.Sprintf("FLIGHT%03d", index),
		Name:     fmt.Sprintf("Flight %d", index),
		Type:     catalog.RouteFlight,
		Status:   catalog.StatusActive,
		Duration: "1h 15m",
		Stops:    []string{"Jakarta (CGK)", "Denpasar (DPS)"},
		Schedule: []string{"06:45", "17:30"},
	}
}

// Catalog builds a catalog from the given records. Invalid fixtures panic to
// surface the mistake immediately.
func Catalog(records ...catalog.RouteRecord) *catalog.Catalog {
	c, err := catalog.New(records)
	if err != nil {
		panic(fmt.Sprintf("testfixtures: invalid catalog fixture: %v", err))
	}
	return c
}

// Profile returns a signed-in user fixture.
func Profile() session.Profile {
	return session.Profile{
		Name:  "Budi Santoso",
		Email: "budi@example.com",
		Phone: "+62 812 3456 7890",
	}
}

// Favorite returns a favorite referencing the given route.
func Favorite(route catalog.RouteRecord) session.FavoriteRef {
	return session.FavoriteRef{
		RouteID: route.ID,
		Type:    route.Type,
		Name:    route.Name,
		Image:   route.Image,
	}
}

// Booking returns a confirmed booking fixture for the given route, stamped
// with the reference time.
func Booking(route catalog.RouteRecord, reference string) session.Booking {
	return session.Booking{
		Reference:  reference,
		RouteID:    route.ID,
		Route:      route,
		Passengers: 2,
		TravelDate: "2026-09-15",
		Contact: session.Contact{
			FullName: "Budi Santoso",
			Email:    "budi@example.com",
		},
		BookedAt: ReferenceTime(),
	}
}

// LoggedInSession returns a session holding the given favorites and bookings.
func LoggedInSession(favorites []session.FavoriteRef, bookings []session.Booking) session.Session {
	return session.Session{
		LoggedIn:  true,
		User:      Profile(),
		Favorites: favorites,
		Bookings:  bookings,
	}
}
