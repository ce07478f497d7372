package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no route with the requested ID exists.
var ErrNotFound = errors.New("catalog: route not found")

// Catalog is an immutable collection of route records, keyed by ID and
// preserving the order records were supplied in. It is safe for concurrent
// readers; there are no mutating operations after construction.
type Catalog struct {
	byID    map[string]RouteRecord
	ordered []string
}

// New builds a catalog from the supplied records. It rejects duplicate IDs,
// empty IDs or names, and routes with fewer than two stops.
func New(records []RouteRecord) (*Catalog, error) {
	c := &Catalog{
		byID:    make(map[string]RouteRecord, len(records)),
		ordered: make([]string, 0, len(records)),
	}

	for i, record := range records {
		id := strings.TrimSpace(record.ID)
		if id == "" {
			return nil, fmt.Errorf("catalog: record %d has an empty id", i)
		}
		if strings.TrimSpace(record.Name) == "" {
			return nil, fmt.Errorf("catalog: route %s has an empty name", id)
		}
		if len(record.Stops) < 2 {
			return nil, fmt.Errorf("catalog: route %s needs at least two stops, got %d", id, len(record.Stops))
		}
		if _, exists := c.byID[id]; exists {
			return nil, fmt.Errorf("catalog: duplicate route id %s", id)
		}

		record.ID = id
		c.byID[id] = cloneRecord(record)
		c.ordered = append(c.ordered, id)
	}

	return c, nil
}

// Len reports the number of routes in the catalog.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// Get returns the route with the given ID, or ErrNotFound.
func (c *Catalog) Get(id string) (RouteRecord, error) {
	record, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return RouteRecord{}, ErrNotFound
	}
	return cloneRecord(record), nil
}

// List returns all routes in catalog order.
func (c *Catalog) List() []RouteRecord {
	out := make([]RouteRecord, 0, len(c.ordered))
	for _, id := range c.ordered {
		out = append(out, cloneRecord(c.byID[id]))
	}
	return out
}

// ListByType returns the routes of a single transport mode, in catalog order.
func (c *Catalog) ListByType(t RouteType) []RouteRecord {
	out := make([]RouteRecord, 0)
	for _, id := range c.ordered {
		if record := c.byID[id]; record.Type == t {
			out = append(out, cloneRecord(record))
		}
	}
	return out
}

// ListByStatus returns the routes carrying the given status, in catalog order.
func (c *Catalog) ListByStatus(s RouteStatus) []RouteRecord {
	out := make([]RouteRecord, 0)
	for _, id := range c.ordered {
		if record := c.byID[id]; record.Status == s {
			out = append(out, cloneRecord(record))
		}
	}
	return out
}

// Search returns routes whose name or any stop contains the query,
// case-insensitively. An empty query matches nothing.
func (c *Catalog) Search(query string) []RouteRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	out := make([]RouteRecord, 0)
	for _, id := range c.ordered {
		record := c.byID[id]
		if matchesQuery(record, q) {
			out = append(out, cloneRecord(record))
		}
	}
	return out
}

func matchesQuery(record RouteRecord, q string) bool {
	if strings.Contains(strings.ToLower(record.Name), q) {
		return true
	}
	for _, stop := range record.Stops {
		if strings.Contains(strings.ToLower(stop), q) {
			return true
		}
	}
	return false
}
