package models

// Coordinates is a latitude/longitude pair used as the search center for
// the marketplace feed.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LocationResponse is the shape of a coordinates lookup.
type LocationResponse struct {
	State string  `json:"state"`
	City  string  `json:"city,omitempty"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// StatesResponse lists the states known to the location table.
type StatesResponse struct {
	States []string `json:"states"`
	Total  int      `json:"total"`
}

// CitiesResponse lists the known cities for one state.
type CitiesResponse struct {
	Cities []string `json:"cities"`
	Total  int      `json:"total"`
	State  string   `json:"state"`
}
