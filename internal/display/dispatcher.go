package display

import "strings"

// Screen identifies a detail view the navigation layer can present.
type Screen string

const (
	ScreenBusDetails    Screen = "BusDetails"
	ScreenTrainDetails  Screen = "TrainDetails"
	ScreenFlightDetails Screen = "FlightDetails"
	ScreenDetails       Screen = "Details"
)

// Destination names the detail screen for an entity and the parameter key its
// view expects the entity under.
type Destination struct {
	Screen   Screen
	ParamKey string
}

// Dispatch maps a route type to its detail screen. This is the single
// decision table for every navigation site that jumps from a list into a
// detail view; matching is case-insensitive and unknown types land on the
// generic detail screen.
func Dispatch(routeType string) Destination {
	switch strings.ToLower(strings.TrimSpace(routeType)) {
	case "bus", "shuttle", "city bus":
		return Destination{Screen: ScreenBusDetails, ParamKey: "bus"}
	case "train":
		return Destination{Screen: ScreenTrainDetails, ParamKey: "train"}
	case "flight":
		return Destination{Screen: ScreenFlightDetails, ParamKey: "flight"}
	default:
		return Destination{Screen: ScreenDetails, ParamKey: "item"}
	}
}

// Destination returns the detail screen for the entity's type.
func (e Entity) Destination() Destination {
	return Dispatch(e.Type)
}
