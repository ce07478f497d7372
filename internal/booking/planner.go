// Package booking implements the plan-trip flow: request validation, booking
// construction and insertion into the session history, and e-ticket
// rendering. A request that fails validation never produces a booking and
// never reaches the session store.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/trip-planner/internal/catalog"
	"github.com/example/trip-planner/internal/logging"
	"github.com/example/trip-planner/internal/session"
	"github.com/example/trip-planner/internal/validation"
)

// ErrRouteUnknown is returned when the request references a route that is not
// in the catalog.
var ErrRouteUnknown = errors.New("booking: route not in catalog")

// DateLayout is the calendar date form used across the booking flow.
const DateLayout = "2006-01-02"

// Request carries the plan-trip form fields.
type Request struct {
	RouteID    string
	FullName   string
	Email      string
	TravelDate string
	Passengers int
}

// Planner validates trip requests and records confirmed bookings.
type Planner struct {
	catalog      *catalog.Catalog
	store        *session.Store
	newReference func() string
	now          func() time.Time
	logger       *slog.Logger
}

// NewPlanner constructs a planner. newReference and now are injectable for
// tests; the defaults use uuid-derived references and the wall clock.
func NewPlanner(c *catalog.Catalog, store *session.Store, newReference func() string, now func() time.Time, logger *slog.Logger) *Planner {
	if newReference == nil {
		newReference = NewReference
	}
	if now == nil {
		now = time.Now
	}
	return &Planner{
		catalog:      c,
		store:        store,
		newReference: newReference,
		now:          now,
		logger:       logging.Default(logger),
	}
}

// NewReference mints a short, human-readable booking reference.
func NewReference() string {
	id := uuid.New().String()
	return "TP-" + strings.ToUpper(id[:8])
}

// ValidateDate checks a travel date: it must parse as YYYY-MM-DD and must
// not lie before today. Enforced at date selection, so the confirmation step
// can trust the value.
func ValidateDate(raw string, now time.Time) error {
	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		return fmt.Errorf("booking: travel date %q is not a calendar date", raw)
	}

	// The travel date parses as UTC midnight, so "today" must come from the
	// UTC calendar too or a host-zone offset shifts the cutoff day.
	utc := now.UTC()
	today := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return fmt.Errorf("booking: travel date %s is in the past", raw)
	}
	return nil
}

func (p *Planner) validate(req Request) *validation.Error {
	v := &validation.Error{}
	if strings.TrimSpace(req.FullName) == "" {
		v.Add("full_name", "full name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		v.Add("email", "e-mail address is required")
	}
	if req.TravelDate == "" {
		v.Add("travel_date", "travel date is required")
	} else if err := ValidateDate(req.TravelDate, p.now()); err != nil {
		v.Add("travel_date", "travel date must be today or later")
	}
	return v
}

// Confirm validates the request, builds the booking with a snapshot of the
// route, and inserts it at the head of the session history. The returned
// booking is what the confirmation screen renders.
func (p *Planner) Confirm(ctx context.Context, req Request) (session.Booking, error) {
	logger := logging.ServiceLogger(ctx, p.logger, "Planner", "Confirm", "route_id", req.RouteID)

	if verr := p.validate(req); verr.HasErrors() {
		logger.WarnContext(ctx, "trip request rejected", "fields", len(verr.FieldErrors))
		return session.Booking{}, verr
	}

	record, err := p.catalog.Get(req.RouteID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return session.Booking{}, ErrRouteUnknown
		}
		return session.Booking{}, err
	}

	b := session.Booking{
		Reference:  p.newReference(),
		RouteID:    record.ID,
		Route:      record,
		Passengers: ClampPassengers(req.Passengers),
		TravelDate: req.TravelDate,
		Contact: session.Contact{
			FullName: strings.TrimSpace(req.FullName),
			Email:    strings.TrimSpace(req.Email),
		},
		BookedAt: p.now().UTC(),
	}

	p.store.AddBooking(b)
	logger.InfoContext(ctx, "trip confirmed", "reference", b.Reference, "passengers", b.Passengers)
	return b, nil
}
