package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed routes.json
var routesJSON []byte

// BuiltIn loads the bundled route data shipped with the application. The data
// is parsed and validated on every call; callers load it once at startup and
// share the resulting catalog.
func BuiltIn() (*Catalog, error) {
	var payload struct {
		Routes []RouteRecord `json:"routes"`
	}
	if err := json.Unmarshal(routesJSON, &payload); err != nil {
		return nil, fmt.Errorf("catalog: parsing bundled routes: %w", err)
	}
	if len(payload.Routes) == 0 {
		return nil, fmt.Errorf("catalog: bundled route data is empty")
	}
	return New(payload.Routes)
}
