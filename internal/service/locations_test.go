package service

import (
	"errors"
	"testing"

	"github.com/jongan69/used-car-api/internal/testutil"
)

func newTestLocationService() *LocationService {
	return NewLocationService(testutil.TestPlaces())
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestResolve_LatLonWinsOverStateCity(t *testing.T) {
	svc := newTestLocationService()

	coords, err := svc.Resolve("Texas", "Austin", floatPtr(40.0), floatPtr(-105.0))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if coords.Lat != 40.0 || coords.Lon != -105.0 {
		t.Errorf("expected explicit coordinates to win, got %+v", coords)
	}
}

func TestResolve_StateCity(t *testing.T) {
	svc := newTestLocationService()

	coords, err := svc.Resolve("Texas", "Austin", nil, nil)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if coords.Lat != 30.2711286 || coords.Lon != -97.7436995 {
		t.Errorf("unexpected coordinates for Austin: %+v", coords)
	}
}

func TestResolve_DefaultsToNationwideCenter(t *testing.T) {
	svc := newTestLocationService()

	coords, err := svc.Resolve("", "", nil, nil)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if coords.Lat != DefaultLat || coords.Lon != DefaultLon {
		t.Errorf("expected nationwide default, got %+v", coords)
	}
}

func TestResolve_UnknownCity(t *testing.T) {
	svc := newTestLocationService()

	_, err := svc.Resolve("Texas", "Springfield", nil, nil)
	var unknownErr UnknownLocationError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownLocationError, got %v", err)
	}
	if unknownErr.State != "Texas" || unknownErr.City != "Springfield" {
		t.Errorf("error carries wrong location: %+v", unknownErr)
	}
}

func TestResolve_LookupIsCaseSensitive(t *testing.T) {
	svc := newTestLocationService()

	_, err := svc.Resolve("texas", "austin", nil, nil)
	var unknownErr UnknownLocationError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownLocationError for lowercase names, got %v", err)
	}
}

func TestResolve_LatWithoutLon(t *testing.T) {
	svc := newTestLocationService()

	_, err := svc.Resolve("", "", floatPtr(40.0), nil)
	var incompleteErr IncompleteLocationError
	if !errors.As(err, &incompleteErr) {
		t.Fatalf("expected IncompleteLocationError, got %v", err)
	}
}

func TestResolve_LonWithoutLat(t *testing.T) {
	svc := newTestLocationService()

	_, err := svc.Resolve("", "", nil, floatPtr(-105.0))
	var incompleteErr IncompleteLocationError
	if !errors.As(err, &incompleteErr) {
		t.Fatalf("expected IncompleteLocationError, got %v", err)
	}
}

func TestResolve_StateWithoutCity(t *testing.T) {
	svc := newTestLocationService()

	_, err := svc.Resolve("Texas", "", nil, nil)
	var incompleteErr IncompleteLocationError
	if !errors.As(err, &incompleteErr) {
		t.Fatalf("expected IncompleteLocationError, got %v", err)
	}
}

func TestResolve_CityWithoutState(t *testing.T) {
	svc := newTestLocationService()

	_, err := svc.Resolve("", "Austin", nil, nil)
	var incompleteErr IncompleteLocationError
	if !errors.As(err, &incompleteErr) {
		t.Fatalf("expected IncompleteLocationError, got %v", err)
	}
}

func TestResolve_LatOutOfRange(t *testing.T) {
	svc := newTestLocationService()

	_, err := svc.Resolve("", "", floatPtr(91.0), floatPtr(0.0))
	var rangeErr InvalidFilterRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected InvalidFilterRangeError, got %v", err)
	}
}

func TestResolve_LonOutOfRange(t *testing.T) {
	svc := newTestLocationService()

	_, err := svc.Resolve("", "", floatPtr(0.0), floatPtr(-181.0))
	var rangeErr InvalidFilterRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected InvalidFilterRangeError, got %v", err)
	}
}

func TestStates_Sorted(t *testing.T) {
	svc := newTestLocationService()

	states := svc.States()
	if len(states) != 3 {
		t.Fatalf("expected 3 states, got %d", len(states))
	}
	expected := []string{"California", "New York", "Texas"}
	for i, state := range expected {
		if states[i] != state {
			t.Errorf("states[%d] = %q, want %q", i, states[i], state)
		}
	}
}

func TestCities_Sorted(t *testing.T) {
	svc := newTestLocationService()

	cities, err := svc.Cities("Texas")
	if err != nil {
		t.Fatalf("Cities returned error: %v", err)
	}
	expected := []string{"Austin", "Houston", "Mcallen"}
	if len(cities) != len(expected) {
		t.Fatalf("expected %d cities, got %d", len(expected), len(cities))
	}
	for i, city := range expected {
		if cities[i] != city {
			t.Errorf("cities[%d] = %q, want %q", i, cities[i], city)
		}
	}
}

func TestCities_UnknownState(t *testing.T) {
	svc := newTestLocationService()

	_, err := svc.Cities("Atlantis")
	var unknownErr UnknownLocationError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownLocationError, got %v", err)
	}
}

func TestCities_EmptyState(t *testing.T) {
	svc := newTestLocationService()

	_, err := svc.Cities("")
	var incompleteErr IncompleteLocationError
	if !errors.As(err, &incompleteErr) {
		t.Fatalf("expected IncompleteLocationError, got %v", err)
	}
}

func TestCoordinates_Known(t *testing.T) {
	svc := newTestLocationService()

	coords, err := svc.Coordinates("California", "Los Angeles")
	if err != nil {
		t.Fatalf("Coordinates returned error: %v", err)
	}
	if coords.Lat != 34.0536909 || coords.Lon != -118.242766 {
		t.Errorf("unexpected coordinates: %+v", coords)
	}
}

func TestCoordinates_MissingCity(t *testing.T) {
	svc := newTestLocationService()

	_, err := svc.Coordinates("California", "")
	var incompleteErr IncompleteLocationError
	if !errors.As(err, &incompleteErr) {
		t.Fatalf("expected IncompleteLocationError, got %v", err)
	}
}

func TestCoordinates_UnknownCity(t *testing.T) {
	svc := newTestLocationService()

	_, err := svc.Coordinates("California", "Gotham")
	var unknownErr UnknownLocationError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownLocationError, got %v", err)
	}
}
