// Package offerup is the scrape client for the OfferUp marketplace. It
// speaks the site's GraphQL endpoint directly and exposes the small typed
// surface the search pipeline needs: a feed search and a single-listing
// detail lookup.
package offerup

import (
	"context"
	"time"
)

// Provider fetches listings from the marketplace. Implementations must be
// safe for concurrent use; the HTTP handlers share one instance.
type Provider interface {
	// SearchListings runs one feed query and returns the raw listings in
	// feed order. An empty slice is a successful empty result.
	SearchListings(ctx context.Context, params SearchParams) ([]Listing, error)

	// ListingDetails fetches one listing by id. Returns ErrListingNotFound
	// when the marketplace has no such listing.
	ListingDetails(ctx context.Context, listingID string) (*ListingDetail, error)
}

// SearchParams carries everything one feed query needs. Sort, Delivery, and
// Conditions hold the marketplace's own wire values.
type SearchParams struct {
	Query          string
	Lat            float64
	Lon            float64
	Limit          int
	PickupDistance int
	PriceMin       *int
	PriceMax       *int
	Sort           string
	Delivery       string
	Conditions     []string
}

// VehicleAttributes is the structured vehicle block the marketplace attaches
// to some listings. Numeric fields may be absent upstream.
type VehicleAttributes struct {
	Year         *int
	Make         string
	Model        string
	Miles        *int
	Color        string
	Transmission string
	FuelType     string
	Body         string
	DriveTrain   string
	VIN          string
}

// Listing is one raw feed result. Price is nil when the marketplace omitted
// it or sent something unparseable; PostedAt is zero when absent.
type Listing struct {
	ListingID     string
	Title         string
	Price         *float64
	LocationName  string
	ListingURL    string
	ConditionText string
	ImageURL      string
	PostedAt      time.Time
	Attributes    *VehicleAttributes
}

// ListingDetail is the full record behind one listing.
type ListingDetail struct {
	ListingID    string
	Title        string
	Price        *float64
	Description  string
	LocationName string
	ListingURL   string
	Condition    string
	Attributes   *VehicleAttributes
	Photos       []string
}
