package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// CityCoordinates is the search-center pin for a city.
type CityCoordinates struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// Places is the state -> city -> coordinates lookup table. It is loaded
// once at startup and never mutated afterward, so it is safe to share
// across request handlers without locking. Keys are case-sensitive.
type Places struct {
	States map[string]map[string]CityCoordinates `yaml:"states"`
}

// LoadPlaces reads and parses a YAML places file.
func LoadPlaces(path string) (*Places, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read places file: %w", err)
	}

	var places Places
	if err := yaml.Unmarshal(data, &places); err != nil {
		return nil, fmt.Errorf("failed to parse places YAML: %w", err)
	}
	if len(places.States) == 0 {
		return nil, fmt.Errorf("places file %s defines no states", path)
	}

	return &places, nil
}

// StateNames returns the known state names, sorted.
func (p *Places) StateNames() []string {
	names := make([]string, 0, len(p.States))
	for name := range p.States {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CityNames returns the known city names for a state, sorted. The second
// return value reports whether the state exists.
func (p *Places) CityNames(state string) ([]string, bool) {
	cities, ok := p.States[state]
	if !ok {
		return nil, false
	}
	names := make([]string, 0, len(cities))
	for name := range cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, true
}

// Coordinates returns the pin for a city within a state.
func (p *Places) Coordinates(state, city string) (CityCoordinates, bool) {
	cities, ok := p.States[state]
	if !ok {
		return CityCoordinates{}, false
	}
	coords, ok := cities[city]
	return coords, ok
}
