package testutil

import (
	"time"

	"github.com/jongan69/used-car-api/internal/config"
	"github.com/jongan69/used-car-api/internal/offerup"
)

// TestConfig creates a Config carrying the same defaults LoadConfig reads
// from the environment, with the test location table attached.
func TestConfig() *config.Config {
	return &config.Config{
		EnvVars: config.EnvVars{
			Host:                  "0.0.0.0",
			Port:                  "8000",
			GinMode:               "test",
			CORSOrigins:           []string{"*"},
			APIPrefix:             "/api/v1",
			MaxSearchResults:      100,
			DefaultSearchLimit:    20,
			DefaultPickupDistance: 50,
			RateLimitPerMinute:    60,
			OfferUpBaseURL:        "https://offerup.com",
			OfferUpTimeoutSeconds: 30,
			OfferUpRPS:            2,
			PlacesFile:            "configs/places.yaml",
		},
		Places: TestPlaces(),
	}
}

// TestPlaces creates a small location table with known coordinates.
func TestPlaces() *config.Places {
	return &config.Places{
		States: map[string]map[string]config.CityCoordinates{
			"Texas": {
				"Austin":  {Lat: 30.2711286, Lon: -97.7436995},
				"Houston": {Lat: 29.7589382, Lon: -95.3676974},
				"Mcallen": {Lat: 26.203407, Lon: -98.230012},
			},
			"California": {
				"Los Angeles": {Lat: 34.0536909, Lon: -118.242766},
			},
			"New York": {
				"New York": {Lat: 40.7127281, Lon: -74.0060152},
			},
		},
	}
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// TestListing creates a feed listing with realistic fields.
func TestListing(id, title string) offerup.Listing {
	return offerup.Listing{
		ListingID:     id,
		Title:         title,
		Price:         floatPtr(15500),
		LocationName:  "Austin, TX",
		ListingURL:    "https://offerup.com/item/detail/" + id,
		ConditionText: "Used",
		ImageURL:      "https://images.offerup.com/" + id + ".jpg",
		PostedAt:      time.Date(2024, 3, 15, 18, 4, 5, 0, time.UTC),
	}
}

// TestFeed creates a raw feed covering the filter paths: clean cars with
// and without structured attributes, a parts listing, and a priceless one.
func TestFeed() []offerup.Listing {
	civic := TestListing("101", "2018 Honda Civic LX")
	civic.Attributes = &offerup.VehicleAttributes{
		Year:  intPtr(2018),
		Make:  "Honda",
		Model: "Civic",
		Miles: intPtr(62000),
	}

	accord := TestListing("102", "2015 Honda Accord Sport 89k miles")
	accord.Price = floatPtr(11900)

	bumper := TestListing("103", "Honda Civic front bumper OEM")
	bumper.Price = floatPtr(120)

	camry := TestListing("104", "2020 Toyota Camry SE")
	camry.Price = floatPtr(21000)
	camry.Attributes = &offerup.VehicleAttributes{
		Year:  intPtr(2020),
		Make:  "Toyota",
		Model: "Camry",
		Miles: intPtr(30000),
	}

	mystery := TestListing("105", "Clean reliable sedan runs great")
	mystery.Price = nil

	return []offerup.Listing{civic, accord, bumper, camry, mystery}
}

// TestListingDetail creates a detail record matching TestFeed's first entry.
func TestListingDetail() *offerup.ListingDetail {
	return &offerup.ListingDetail{
		ListingID:    "101",
		Title:        "2018 Honda Civic LX",
		Price:        floatPtr(15500),
		Description:  "One owner, garage kept, all maintenance records available.",
		LocationName: "Austin, TX",
		ListingURL:   "https://offerup.com/item/detail/101",
		Condition:    "Used",
		Attributes: &offerup.VehicleAttributes{
			Year:  intPtr(2018),
			Make:  "Honda",
			Model: "Civic",
			Miles: intPtr(62000),
		},
		Photos: []string{
			"https://images.offerup.com/101-1.jpg",
			"https://images.offerup.com/101-2.jpg",
		},
	}
}
