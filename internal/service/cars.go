package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	goaway "github.com/TwiN/go-away"
	"github.com/asaskevich/govalidator"
	"go.uber.org/zap"

	"github.com/jongan69/used-car-api/internal/config"
	"github.com/jongan69/used-car-api/internal/logger"
	"github.com/jongan69/used-car-api/internal/models"
	"github.com/jongan69/used-car-api/internal/offerup"
	"github.com/jongan69/used-car-api/internal/vehicle"
)

const (
	// defaultSearchTerm goes to the marketplace when the caller gave no
	// query. It widens the feed; it never participates in title filtering.
	defaultSearchTerm = "car"

	maxQueryLength     = 200
	maxMakeModelLength = 100
	minPickupDistance  = 1
	maxPickupDistance  = 500

	// One feed call per search, so fetch headroom for filtering losses.
	rawFetchMultiplier = 3
	rawFetchCap        = 300
)

var profanityDetector = goaway.NewProfanityDetector().WithSanitizeLeetSpeak(true).WithSanitizeSpecialCharacters(true).WithSanitizeAccents(false)

// CarService runs the search-and-filter pipeline and listing detail lookups.
type CarService struct {
	Cfg       *config.Config
	Provider  offerup.Provider
	Locations *LocationService
}

// NewCarService creates a new CarService.
func NewCarService(cfg *config.Config, provider offerup.Provider, locations *LocationService) *CarService {
	return &CarService{
		Cfg:       cfg,
		Provider:  provider,
		Locations: locations,
	}
}

// SearchCars validates and normalizes the request, resolves its location,
// runs one marketplace feed query, filters the raw listings in feed order,
// and shapes the survivors. Filters are conjunctive; an excluded listing is
// normal behavior, not an error.
func (s *CarService) SearchCars(ctx context.Context, req *models.CarSearchRequest) (*models.CarSearchResponse, error) {
	s.normalizeRequest(req)
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	coords, err := s.Locations.Resolve(req.State, req.City, req.Lat, req.Lon)
	if err != nil {
		return nil, err
	}

	searchTerm := req.Query
	if searchTerm == "" {
		searchTerm = defaultSearchTerm
	}

	rawLimit := req.Limit * rawFetchMultiplier
	if rawLimit > rawFetchCap {
		rawLimit = rawFetchCap
	}

	listings, err := s.Provider.SearchListings(ctx, offerup.SearchParams{
		Query:          searchTerm,
		Lat:            coords.Lat,
		Lon:            coords.Lon,
		Limit:          rawLimit,
		PickupDistance: req.PickupDistance,
		PriceMin:       req.PriceMin,
		PriceMax:       req.PriceMax,
		Sort:           string(req.Sort),
		Delivery:       string(req.Delivery),
		Conditions:     conditionValues(req.Conditions),
	})
	if err != nil {
		return nil, err
	}

	filters := buildSearchFilters(req)
	shaped := make([]models.CarListing, 0, req.Limit)
	for _, listing := range listings {
		if !matchesFilters(listing, filters) {
			continue
		}
		shaped = append(shaped, shapeListing(listing))
		if len(shaped) == req.Limit {
			break
		}
	}

	logger.Get().Debug("car search complete",
		zap.String("query", searchTerm),
		zap.Int("raw_listings", len(listings)),
		zap.Int("matched", len(shaped)))

	return &models.CarSearchResponse{
		TotalResults:   len(shaped),
		Listings:       shaped,
		Query:          searchTerm,
		FiltersApplied: req.FiltersApplied(),
	}, nil
}

// GetCarDetails fetches one listing and shapes it as-is; no filtering.
func (s *CarService) GetCarDetails(ctx context.Context, listingID string) (*models.CarDetailResponse, error) {
	if listingID == "" || !govalidator.IsNumeric(listingID) {
		return nil, InvalidListingIDError{ListingID: listingID}
	}

	detail, err := s.Provider.ListingDetails(ctx, listingID)
	if err != nil {
		return nil, err
	}

	return &models.CarDetailResponse{
		ListingID:         detail.ListingID,
		Title:             detail.Title,
		Price:             detail.Price,
		Description:       detail.Description,
		LocationName:      detail.LocationName,
		ListingURL:        detail.ListingURL,
		Condition:         detail.Condition,
		VehicleAttributes: convertAttributes(detail.Attributes),
		Photos:            detail.Photos,
	}, nil
}

// normalizeRequest applies defaults and clamps bounded fields. An
// over-limit result count is clamped, never rejected. A search with no
// location at all widens the pickup radius to cover the whole country.
func (s *CarService) normalizeRequest(req *models.CarSearchRequest) {
	req.Query = strings.TrimSpace(req.Query)

	if req.Limit <= 0 {
		req.Limit = s.Cfg.EnvVars.DefaultSearchLimit
	}
	if req.Limit > s.Cfg.EnvVars.MaxSearchResults {
		req.Limit = s.Cfg.EnvVars.MaxSearchResults
	}

	if req.PickupDistance == 0 {
		if req.State == "" && req.City == "" && req.Lat == nil && req.Lon == nil {
			req.PickupDistance = maxPickupDistance
		} else {
			req.PickupDistance = s.Cfg.EnvVars.DefaultPickupDistance
		}
	}

	if req.Sort == "" {
		req.Sort = models.SortNewestFirst
	}
	if req.Delivery == "" {
		req.Delivery = models.DeliveryPickup
	}
}

// validateRequest rejects impossible filter values before any marketplace
// call is made.
func (s *CarService) validateRequest(req *models.CarSearchRequest) error {
	if len(req.Query) > maxQueryLength {
		return InvalidFilterRangeError{Reason: fmt.Sprintf("query must be at most %d characters", maxQueryLength)}
	}
	if req.Query != "" && profanityDetector.IsProfane(req.Query) {
		return ProfaneQueryError{}
	}

	if len(req.Make) > maxMakeModelLength {
		return InvalidFilterRangeError{Reason: fmt.Sprintf("make must be at most %d characters", maxMakeModelLength)}
	}
	if len(req.Model) > maxMakeModelLength {
		return InvalidFilterRangeError{Reason: fmt.Sprintf("model must be at most %d characters", maxMakeModelLength)}
	}

	if req.PriceMin != nil && *req.PriceMin < 0 {
		return InvalidFilterRangeError{Reason: "price_min must be non-negative"}
	}
	if req.PriceMax != nil && *req.PriceMax < 0 {
		return InvalidFilterRangeError{Reason: "price_max must be non-negative"}
	}
	if req.PriceMin != nil && req.PriceMax != nil && *req.PriceMin > *req.PriceMax {
		return InvalidFilterRangeError{Reason: "price_min cannot exceed price_max"}
	}

	if req.MinMiles != nil && *req.MinMiles < 0 {
		return InvalidFilterRangeError{Reason: "min_miles must be non-negative"}
	}
	if req.MaxMiles != nil && *req.MaxMiles < 0 {
		return InvalidFilterRangeError{Reason: "max_miles must be non-negative"}
	}
	if req.MinMiles != nil && req.MaxMiles != nil && *req.MinMiles > *req.MaxMiles {
		return InvalidFilterRangeError{Reason: "min_miles cannot exceed max_miles"}
	}

	if req.Year != nil && !govalidator.InRangeInt(*req.Year, vehicle.MinYear, vehicle.MaxYear) {
		return InvalidFilterRangeError{Reason: fmt.Sprintf("year must be between %d and %d", vehicle.MinYear, vehicle.MaxYear)}
	}

	if !govalidator.InRangeInt(req.PickupDistance, minPickupDistance, maxPickupDistance) {
		return InvalidFilterRangeError{Reason: fmt.Sprintf("pickup_distance must be between %d and %d", minPickupDistance, maxPickupDistance)}
	}

	if !req.Sort.IsValid() {
		return InvalidFilterRangeError{Reason: fmt.Sprintf("invalid sort option: %s", req.Sort)}
	}
	if !req.Delivery.IsValid() {
		return InvalidFilterRangeError{Reason: fmt.Sprintf("invalid delivery option: %s", req.Delivery)}
	}
	for _, cond := range req.Conditions {
		if !cond.IsValid() {
			return InvalidFilterRangeError{Reason: fmt.Sprintf("invalid condition: %s", cond)}
		}
	}

	return nil
}

// searchFilters is the per-request filter state, precomputed once. Token
// slices hold uppercased spellings; empty slices mean "no check".
type searchFilters struct {
	year     *int
	minMiles *int
	maxMiles *int
	priceMin *int
	priceMax *int

	// Explicit make/model fields: each set must match (title or attributes).
	makeTokens  []string
	modelTokens []string

	// Query-derived: when the query names a known make, the title must
	// contain at least one recognized token. Otherwise every query falls
	// back to plain keyword matching against the title.
	queryTokens []string
	queryWords  []string
}

func buildSearchFilters(req *models.CarSearchRequest) searchFilters {
	filters := searchFilters{
		year:     req.Year,
		minMiles: req.MinMiles,
		maxMiles: req.MaxMiles,
		priceMin: req.PriceMin,
		priceMax: req.PriceMax,
	}

	if req.Make != "" {
		filters.makeTokens = vehicle.MakeVariants(req.Make)
	}
	if req.Model != "" {
		filters.modelTokens = vehicle.ModelVariants(req.Model)
	}

	if req.Query != "" {
		makeName, model := vehicle.ExtractKeywords(req.Query)
		if makeName != "" {
			tokens := vehicle.MakeVariants(makeName)
			if model != "" {
				tokens = append(tokens, vehicle.ModelVariants(model)...)
			}
			filters.queryTokens = tokens
		} else {
			filters.queryWords = strings.Fields(strings.ToUpper(req.Query))
		}
	}

	return filters
}

// matchesFilters applies the filter chain to one raw listing, short
// circuiting on the first miss: parts exclusion, year, mileage, price,
// then make/model. Listings that a requested filter cannot verify are
// excluded.
func matchesFilters(listing offerup.Listing, filters searchFilters) bool {
	if vehicle.IsPartsListing(listing.Title) {
		return false
	}

	titleUpper := strings.ToUpper(listing.Title)

	if filters.year != nil {
		year, ok := listingYear(listing)
		if !ok || year != *filters.year {
			return false
		}
	}

	if filters.minMiles != nil || filters.maxMiles != nil {
		miles, ok := listingMiles(listing)
		if !ok {
			return false
		}
		if filters.maxMiles != nil && miles > *filters.maxMiles {
			return false
		}
		if filters.minMiles != nil && miles < *filters.minMiles {
			return false
		}
	}

	if filters.priceMin != nil || filters.priceMax != nil {
		if listing.Price == nil {
			return false
		}
		if filters.priceMin != nil && *listing.Price < float64(*filters.priceMin) {
			return false
		}
		if filters.priceMax != nil && *listing.Price > float64(*filters.priceMax) {
			return false
		}
	}

	if len(filters.makeTokens) > 0 {
		if !containsAny(titleUpper, listingAttrMake(listing), filters.makeTokens) {
			return false
		}
	}
	if len(filters.modelTokens) > 0 {
		if !containsAny(titleUpper, listingAttrModel(listing), filters.modelTokens) {
			return false
		}
	}
	if len(filters.queryTokens) > 0 {
		if !containsAny(titleUpper, "", filters.queryTokens) {
			return false
		}
	}
	if len(filters.queryWords) > 0 {
		if !containsAny(titleUpper, "", filters.queryWords) {
			return false
		}
	}

	return true
}

// listingYear reads the model year from structured attributes first, then
// falls back to a plausible four-digit token in the title.
func listingYear(listing offerup.Listing) (int, bool) {
	if listing.Attributes != nil && listing.Attributes.Year != nil {
		return *listing.Attributes.Year, true
	}
	return vehicle.YearFromTitle(listing.Title)
}

// listingMiles reads mileage from structured attributes first, then from
// title phrasing like "89k miles".
func listingMiles(listing offerup.Listing) (int, bool) {
	if listing.Attributes != nil && listing.Attributes.Miles != nil {
		return *listing.Attributes.Miles, true
	}
	return vehicle.MilesFromTitle(listing.Title)
}

func listingAttrMake(listing offerup.Listing) string {
	if listing.Attributes == nil {
		return ""
	}
	return strings.ToUpper(listing.Attributes.Make)
}

func listingAttrModel(listing offerup.Listing) string {
	if listing.Attributes == nil {
		return ""
	}
	return strings.ToUpper(listing.Attributes.Model)
}

func containsAny(titleUpper, attrUpper string, tokens []string) bool {
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if strings.Contains(titleUpper, tok) {
			return true
		}
		if attrUpper != "" && strings.Contains(attrUpper, tok) {
			return true
		}
	}
	return false
}

func shapeListing(listing offerup.Listing) models.CarListing {
	shaped := models.CarListing{
		ListingID:         listing.ListingID,
		Title:             listing.Title,
		Price:             listing.Price,
		LocationName:      listing.LocationName,
		ListingURL:        listing.ListingURL,
		ConditionText:     listing.ConditionText,
		ImageURL:          listing.ImageURL,
		VehicleAttributes: convertAttributes(listing.Attributes),
	}
	if !listing.PostedAt.IsZero() {
		shaped.PostedAt = listing.PostedAt.UTC().Format(time.RFC3339)
	}
	return shaped
}

func convertAttributes(attrs *offerup.VehicleAttributes) *models.VehicleAttributes {
	if attrs == nil {
		return nil
	}
	return &models.VehicleAttributes{
		Year:         attrs.Year,
		Make:         attrs.Make,
		Model:        attrs.Model,
		Miles:        attrs.Miles,
		Color:        attrs.Color,
		Transmission: attrs.Transmission,
		FuelType:     attrs.FuelType,
		Body:         attrs.Body,
		DriveTrain:   attrs.DriveTrain,
		VIN:          attrs.VIN,
	}
}

func conditionValues(conditions []models.Condition) []string {
	if len(conditions) == 0 {
		return nil
	}
	values := make([]string, 0, len(conditions))
	for _, cond := range conditions {
		values = append(values, string(cond))
	}
	return values
}
