package catalog

import "strings"

// RouteType identifies the transport mode of a catalog route.
type RouteType string

const (
	RouteBus     RouteType = "Bus"
	RouteTrain   RouteType = "Train"
	RouteFlight  RouteType = "Flight"
	RouteShuttle RouteType = "Shuttle"
	RouteCityBus RouteType = "City Bus"
)

// ParseRouteType normalizes a raw type value. Matching is case-insensitive;
// the second return reports whether the value named a known mode.
func ParseRouteType(raw string) (RouteType, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "bus":
		return RouteBus, true
	case "train":
		return RouteTrain, true
	case "flight":
		return RouteFlight, true
	case "shuttle":
		return RouteShuttle, true
	case "city bus":
		return RouteCityBus, true
	}
	return RouteType(strings.TrimSpace(raw)), false
}

// RouteStatus describes the operational state of a catalog route.
type RouteStatus string

const (
	StatusActive   RouteStatus = "Active"
	StatusPopular  RouteStatus = "Popular"
	StatusUpcoming RouteStatus = "Upcoming"
)

// RouteRecord is a single catalog entry. Records are created once at startup
// and never mutated afterwards; every accessor returns defensive copies of
// slice fields.
type RouteRecord struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     RouteType   `json:"type"`
	Status   RouteStatus `json:"status"`
	Image    string      `json:"image"`
	Duration string      `json:"duration"`
	// Stops is ordered from origin to destination and always has at least
	// two entries.
	Stops []string `json:"stops"`
	// Schedule is parallel to Stops but may be shorter; missing entries
	// render blank in the UI.
	Schedule []string `json:"schedule"`
}

// Origin returns the first stop of the route.
func (r RouteRecord) Origin() string {
	if len(r.Stops) == 0 {
		return ""
	}
	return r.Stops[0]
}

// Destination returns the final stop of the route.
func (r RouteRecord) Destination() string {
	if len(r.Stops) == 0 {
		return ""
	}
	return r.Stops[len(r.Stops)-1]
}

func cloneRecord(r RouteRecord) RouteRecord {
	out := r
	out.Stops = append([]string(nil), r.Stops...)
	out.Schedule = append([]string(nil), r.Schedule...)
	return out
}
