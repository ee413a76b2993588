package testutil

import (
	"context"
	"fmt"

	"github.com/jongan69/used-car-api/internal/offerup"
)

// --- MockProvider ---

// MockProvider is a mock implementation of offerup.Provider.
type MockProvider struct {
	SearchListingsFunc func(ctx context.Context, params offerup.SearchParams) ([]offerup.Listing, error)
	ListingDetailsFunc func(ctx context.Context, listingID string) (*offerup.ListingDetail, error)

	// SearchCalls records the params of every SearchListings invocation.
	SearchCalls []offerup.SearchParams
	// DetailCalls records the listing ID of every ListingDetails invocation.
	DetailCalls []string
}

func (m *MockProvider) SearchListings(ctx context.Context, params offerup.SearchParams) ([]offerup.Listing, error) {
	m.SearchCalls = append(m.SearchCalls, params)
	if m.SearchListingsFunc != nil {
		return m.SearchListingsFunc(ctx, params)
	}
	return nil, fmt.Errorf("SearchListings not configured")
}

func (m *MockProvider) ListingDetails(ctx context.Context, listingID string) (*offerup.ListingDetail, error) {
	m.DetailCalls = append(m.DetailCalls, listingID)
	if m.ListingDetailsFunc != nil {
		return m.ListingDetailsFunc(ctx, listingID)
	}
	return nil, fmt.Errorf("ListingDetails not configured")
}

// Compile-time interface checks.
var _ offerup.Provider = (*MockProvider)(nil)
