package service

import (
	"github.com/asaskevich/govalidator"

	"github.com/jongan69/used-car-api/internal/config"
	"github.com/jongan69/used-car-api/internal/models"
)

// Default search center when no location is given: the geographic center of
// the contiguous United States (Lebanon, Kansas).
const (
	DefaultLat = 39.8283
	DefaultLon = -98.5795
)

// LocationService answers location lookups against the places table and
// resolves search-request locations to a coordinate pair.
type LocationService struct {
	Places *config.Places
}

// NewLocationService creates a new LocationService.
func NewLocationService(places *config.Places) *LocationService {
	return &LocationService{Places: places}
}

// Resolve turns a request's location fields into the coordinate pair used
// as the feed search center. Precedence: a full lat/lon pair wins, then a
// full state/city pair, then the nationwide default. Any partial
// combination is an IncompleteLocationError; table misses are
// UnknownLocationErrors. Lookups are pure, no network involved.
func (s *LocationService) Resolve(state, city string, lat, lon *float64) (models.Coordinates, error) {
	switch {
	case lat != nil && lon != nil:
		if !govalidator.InRangeFloat64(*lat, -90, 90) {
			return models.Coordinates{}, InvalidFilterRangeError{Reason: "lat must be between -90 and 90"}
		}
		if !govalidator.InRangeFloat64(*lon, -180, 180) {
			return models.Coordinates{}, InvalidFilterRangeError{Reason: "lon must be between -180 and 180"}
		}
		return models.Coordinates{Lat: *lat, Lon: *lon}, nil

	case state != "" && city != "":
		coords, ok := s.Places.Coordinates(state, city)
		if !ok {
			return models.Coordinates{}, UnknownLocationError{State: state, City: city}
		}
		return models.Coordinates{Lat: coords.Lat, Lon: coords.Lon}, nil

	case lat != nil || lon != nil:
		return models.Coordinates{}, IncompleteLocationError{Reason: "lat and lon must be provided together"}

	case state != "":
		return models.Coordinates{}, IncompleteLocationError{Reason: "city is required when state is provided"}

	case city != "":
		return models.Coordinates{}, IncompleteLocationError{Reason: "state is required when city is provided"}

	default:
		return models.Coordinates{Lat: DefaultLat, Lon: DefaultLon}, nil
	}
}

// States returns every state in the places table, sorted.
func (s *LocationService) States() []string {
	return s.Places.StateNames()
}

// Cities returns the known cities for a state, sorted.
func (s *LocationService) Cities(state string) ([]string, error) {
	if state == "" {
		return nil, IncompleteLocationError{Reason: "state is required"}
	}
	cities, ok := s.Places.CityNames(state)
	if !ok {
		return nil, UnknownLocationError{State: state}
	}
	return cities, nil
}

// Coordinates returns the table pin for a city. Both state and city are
// required; the table has no state-level centroids.
func (s *LocationService) Coordinates(state, city string) (models.Coordinates, error) {
	if state == "" {
		return models.Coordinates{}, IncompleteLocationError{Reason: "state is required"}
	}
	if city == "" {
		return models.Coordinates{}, IncompleteLocationError{Reason: "city is required"}
	}
	coords, ok := s.Places.Coordinates(state, city)
	if !ok {
		return models.Coordinates{}, UnknownLocationError{State: state, City: city}
	}
	return models.Coordinates{Lat: coords.Lat, Lon: coords.Lon}, nil
}
