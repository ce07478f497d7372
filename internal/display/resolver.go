// Package display reconciles stored partial records (favorites, bookings)
// with the catalog and decides which detail screen an entity belongs to. The
// view layer renders what this package returns; it never performs the join or
// the type switch itself.
package display

import (
	"errors"

	"github.com/example/trip-planner/internal/catalog"
	"github.com/example/trip-planner/internal/session"
)

// ErrRouteNotFound is returned when a partial record references a route that
// is no longer in the catalog. Callers present a "cannot show details"
// fallback instead of navigating.
var ErrRouteNotFound = errors.New("display: route not found in catalog")

// Partial is a stored reference to a catalog route plus whatever fields the
// referring record carries itself. Non-zero fields take precedence over the
// catalog's values during resolution.
type Partial struct {
	ID         string
	Type       string
	Name       string
	Status     string
	Image      string
	Duration   string
	Stops      []string
	Schedule   []string
	Passengers int
	TravelDate string
	Reference  string
}

// FromFavorite builds a partial record from a saved favorite.
func FromFavorite(ref session.FavoriteRef) Partial {
	return Partial{
		ID:    ref.RouteID,
		Type:  string(ref.Type),
		Name:  ref.Name,
		Image: ref.Image,
	}
}

// FromBooking builds a partial record from a booking history entry. The
// booking's route snapshot rides along so resolved entities reflect the trip
// as it was booked.
func FromBooking(b session.Booking) Partial {
	return Partial{
		ID:         b.RouteID,
		Type:       string(b.Route.Type),
		Name:       b.Route.Name,
		Status:     string(b.Route.Status),
		Image:      b.Route.Image,
		Duration:   b.Route.Duration,
		Stops:      append([]string(nil), b.Route.Stops...),
		Schedule:   append([]string(nil), b.Route.Schedule...),
		Passengers: b.Passengers,
		TravelDate: b.TravelDate,
		Reference:  b.Reference,
	}
}

// Entity is a fully displayable record: catalog fields filled in, partial
// fields layered on top.
type Entity struct {
	ID         string
	Type       string
	Name       string
	Status     string
	Image      string
	Duration   string
	Stops      []string
	Schedule   []string
	Passengers int
	TravelDate string
	Reference  string
}

// Resolver joins partial records against the catalog.
type Resolver struct {
	catalog *catalog.Catalog
}

// NewResolver returns a resolver backed by the given catalog.
func NewResolver(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Resolve looks the partial's route up in the catalog and merges the two
// records; the partial's fields win on collision. A lookup miss returns
// ErrRouteNotFound.
func (r *Resolver) Resolve(partial Partial) (Entity, error) {
	record, err := r.catalog.Get(partial.ID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return Entity{}, ErrRouteNotFound
		}
		return Entity{}, err
	}

	entity := Entity{
		ID:       record.ID,
		Type:     string(record.Type),
		Name:     record.Name,
		Status:   string(record.Status),
		Image:    record.Image,
		Duration: record.Duration,
		Stops:    record.Stops,
		Schedule: record.Schedule,
	}

	if partial.Type != "" {
		entity.Type = partial.Type
	}
	if partial.Name != "" {
		entity.Name = partial.Name
	}
	if partial.Status != "" {
		entity.Status = partial.Status
	}
	if partial.Image != "" {
		entity.Image = partial.Image
	}
	if partial.Duration != "" {
		entity.Duration = partial.Duration
	}
	if len(partial.Stops) > 0 {
		entity.Stops = append([]string(nil), partial.Stops...)
	}
	if len(partial.Schedule) > 0 {
		entity.Schedule = append([]string(nil), partial.Schedule...)
	}
	entity.Passengers = partial.Passengers
	entity.TravelDate = partial.TravelDate
	entity.Reference = partial.Reference

	return entity, nil
}
