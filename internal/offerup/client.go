package offerup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jongan69/used-car-api/internal/metrics"
)

// The marketplace fronts everything with one GraphQL endpoint. Browsers hit
// it with persisted operations; the documents below request just the fields
// this service reads.
const (
	graphqlPath = "/api/graphql"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	modularFeedQuery = `query GetModularFeed($searchParams: [SearchParamInput!]) {
  modularFeed(searchParams: $searchParams) {
    looseTiles {
      tileType
      listing {
        listingId
        title
        price
        locationName
        listingUrl
        conditionText
        postDate
        image { url }
        vehicleAttributes {
          vehicleYear
          vehicleMake
          vehicleModel
          vehicleMiles
          vehicleColor
          vehicleTransmissionClean
          vehicleFuelType
          vehicleBody
          vehicleDriveTrain
          vehicleVin
        }
      }
    }
  }
}`

	listingDetailQuery = `query GetListingDetail($listingId: ID!) {
  listing(listingId: $listingId) {
    listingId
    title
    price
    description
    condition
    locationDetails { locationName }
    photos { detail { url } }
    vehicleAttributes {
      vehicleYear
      vehicleMake
      vehicleModel
      vehicleMiles
      vehicleColor
      vehicleTransmissionClean
      vehicleFuelType
      vehicleBody
      vehicleDriveTrain
      vehicleVin
    }
  }
}`
)

// Client implements Provider against the live marketplace. A token-bucket
// limiter paces outbound calls so bursts of API traffic do not hammer the
// site.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Provider = (*Client)(nil)

// NewClient creates a marketplace client. rps bounds outbound requests per
// second; zero or negative falls back to 2.
func NewClient(baseURL string, timeout time.Duration, rps float64) *Client {
	if rps <= 0 {
		rps = 2
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// SearchListings runs one GetModularFeed query and decodes the listing tiles
// in feed order. Tiles without a listing payload (banners, ads) are skipped.
func (c *Client) SearchListings(ctx context.Context, params SearchParams) ([]Listing, error) {
	variables := map[string]interface{}{
		"searchParams": buildSearchParams(params),
	}

	var out modularFeedResponse
	if err := c.post(ctx, "GetModularFeed", modularFeedQuery, variables, &out); err != nil {
		return nil, err
	}
	if len(out.Errors) > 0 {
		return nil, &UpstreamError{Op: "GetModularFeed", Message: out.Errors[0].Message}
	}
	if out.Data == nil {
		return nil, &UpstreamError{Op: "GetModularFeed", Message: "response missing data"}
	}

	tiles := out.Data.ModularFeed.LooseTiles
	listings := make([]Listing, 0, len(tiles))
	for _, tile := range tiles {
		if tile.Listing == nil {
			continue
		}
		listings = append(listings, c.decodeFeedListing(tile.Listing))
	}
	return listings, nil
}

// ListingDetails fetches one listing by id. A null listing in the payload or
// a NOT_FOUND GraphQL error maps to ErrListingNotFound.
func (c *Client) ListingDetails(ctx context.Context, listingID string) (*ListingDetail, error) {
	variables := map[string]interface{}{
		"listingId": listingID,
	}

	var out listingDetailResponse
	if err := c.post(ctx, "GetListingDetail", listingDetailQuery, variables, &out); err != nil {
		return nil, err
	}
	for _, gqlErr := range out.Errors {
		if gqlErr.Extensions.Code == "NOT_FOUND" {
			return nil, ErrListingNotFound
		}
	}
	if len(out.Errors) > 0 {
		return nil, &UpstreamError{Op: "GetListingDetail", Message: out.Errors[0].Message}
	}
	if out.Data == nil || out.Data.Listing == nil {
		return nil, ErrListingNotFound
	}

	return c.decodeDetailListing(out.Data.Listing, listingID), nil
}

type graphqlRequest struct {
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
	Query         string                 `json:"query"`
}

type graphqlError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

func (c *Client) post(ctx context.Context, operation, query string, variables map[string]interface{}, out interface{}) (err error) {
	defer func() { metrics.ObserveMarketplaceRequest(operation, err) }()

	if err := c.limiter.Wait(ctx); err != nil {
		return &UpstreamError{Op: operation, Err: err}
	}

	payload, err := json.Marshal(graphqlRequest{
		OperationName: operation,
		Variables:     variables,
		Query:         query,
	})
	if err != nil {
		return &UpstreamError{Op: operation, Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+graphqlPath, bytes.NewReader(payload))
	if err != nil {
		return &UpstreamError{Op: operation, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	// The endpoint rejects non-browser traffic, so look like one.
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Origin", c.baseURL)
	req.Header.Set("Referer", c.baseURL+"/")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Op: operation, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UpstreamError{Op: operation, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return &UpstreamError{Op: operation, StatusCode: resp.StatusCode, RateLimited: true, Message: "rate limited"}
	}
	if resp.StatusCode != http.StatusOK {
		return &UpstreamError{Op: operation, StatusCode: resp.StatusCode, Message: truncateBody(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &UpstreamError{Op: operation, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return nil
}

// buildSearchParams flattens SearchParams into the feed's key/value list.
func buildSearchParams(params SearchParams) []map[string]string {
	kv := []map[string]string{
		{"key": "q", "value": params.Query},
		{"key": "lat", "value": strconv.FormatFloat(params.Lat, 'f', -1, 64)},
		{"key": "lon", "value": strconv.FormatFloat(params.Lon, 'f', -1, 64)},
	}
	if params.Limit > 0 {
		kv = append(kv, map[string]string{"key": "limit", "value": strconv.Itoa(params.Limit)})
	}
	if params.PickupDistance > 0 {
		kv = append(kv, map[string]string{"key": "distance", "value": strconv.Itoa(params.PickupDistance)})
	}
	if params.PriceMin != nil {
		kv = append(kv, map[string]string{"key": "price_min", "value": strconv.Itoa(*params.PriceMin)})
	}
	if params.PriceMax != nil {
		kv = append(kv, map[string]string{"key": "price_max", "value": strconv.Itoa(*params.PriceMax)})
	}
	if params.Sort != "" {
		kv = append(kv, map[string]string{"key": "sort", "value": params.Sort})
	}
	if params.Delivery != "" {
		kv = append(kv, map[string]string{"key": "delivery_param", "value": params.Delivery})
	}
	for _, cond := range params.Conditions {
		kv = append(kv, map[string]string{"key": "condition", "value": cond})
	}
	return kv
}

// --- Feed wire format ---

type modularFeedResponse struct {
	Data *struct {
		ModularFeed struct {
			LooseTiles []looseTile `json:"looseTiles"`
		} `json:"modularFeed"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

type looseTile struct {
	TileType string       `json:"tileType"`
	Listing  *feedListing `json:"listing"`
}

type feedListing struct {
	ListingID         string                 `json:"listingId"`
	Title             string                 `json:"title"`
	Price             string                 `json:"price"`
	LocationName      string                 `json:"locationName"`
	ListingURL        string                 `json:"listingUrl"`
	ConditionText     string                 `json:"conditionText"`
	PostDate          string                 `json:"postDate"`
	Image             *feedImage             `json:"image"`
	VehicleAttributes *wireVehicleAttributes `json:"vehicleAttributes"`
}

type feedImage struct {
	URL string `json:"url"`
}

func (c *Client) decodeFeedListing(raw *feedListing) Listing {
	listing := Listing{
		ListingID:     raw.ListingID,
		Title:         raw.Title,
		Price:         parsePrice(raw.Price),
		LocationName:  raw.LocationName,
		ListingURL:    raw.ListingURL,
		ConditionText: raw.ConditionText,
		Attributes:    raw.VehicleAttributes.decode(),
	}
	if listing.ListingURL == "" && raw.ListingID != "" {
		listing.ListingURL = c.listingURL(raw.ListingID)
	}
	if raw.Image != nil {
		listing.ImageURL = raw.Image.URL
	}
	if raw.PostDate != "" {
		if t, err := time.Parse(time.RFC3339, raw.PostDate); err == nil {
			listing.PostedAt = t
		}
	}
	return listing
}

// --- Detail wire format ---

type listingDetailResponse struct {
	Data *struct {
		Listing *detailListing `json:"listing"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

type detailListing struct {
	ListingID       string `json:"listingId"`
	Title           string `json:"title"`
	Price           string `json:"price"`
	Description     string `json:"description"`
	Condition       string `json:"condition"`
	LocationDetails *struct {
		LocationName string `json:"locationName"`
	} `json:"locationDetails"`
	Photos []struct {
		Detail *struct {
			URL string `json:"url"`
		} `json:"detail"`
	} `json:"photos"`
	VehicleAttributes *wireVehicleAttributes `json:"vehicleAttributes"`
}

func (c *Client) decodeDetailListing(raw *detailListing, listingID string) *ListingDetail {
	detail := &ListingDetail{
		ListingID:   listingID,
		Title:       raw.Title,
		Price:       parsePrice(raw.Price),
		Description: raw.Description,
		Condition:   raw.Condition,
		ListingURL:  c.listingURL(listingID),
		Attributes:  raw.VehicleAttributes.decode(),
		Photos:      []string{},
	}
	if raw.LocationDetails != nil {
		detail.LocationName = raw.LocationDetails.LocationName
	}
	for _, photo := range raw.Photos {
		if photo.Detail != nil && photo.Detail.URL != "" {
			detail.Photos = append(detail.Photos, photo.Detail.URL)
		}
	}
	return detail
}

func (c *Client) listingURL(listingID string) string {
	return fmt.Sprintf("%s/item/detail/%s", c.baseURL, listingID)
}

// --- Shared decoding helpers ---

// wireVehicleAttributes tolerates the marketplace's habit of sending numeric
// fields as either numbers or strings.
type wireVehicleAttributes struct {
	VehicleYear              flexInt `json:"vehicleYear"`
	VehicleMake              string  `json:"vehicleMake"`
	VehicleModel             string  `json:"vehicleModel"`
	VehicleMiles             flexInt `json:"vehicleMiles"`
	VehicleColor             string  `json:"vehicleColor"`
	VehicleTransmissionClean string  `json:"vehicleTransmissionClean"`
	VehicleFuelType          string  `json:"vehicleFuelType"`
	VehicleBody              string  `json:"vehicleBody"`
	VehicleDriveTrain        string  `json:"vehicleDriveTrain"`
	VehicleVin               string  `json:"vehicleVin"`
}

func (w *wireVehicleAttributes) decode() *VehicleAttributes {
	if w == nil {
		return nil
	}
	attrs := &VehicleAttributes{
		Make:         w.VehicleMake,
		Model:        w.VehicleModel,
		Color:        w.VehicleColor,
		Transmission: w.VehicleTransmissionClean,
		FuelType:     w.VehicleFuelType,
		Body:         w.VehicleBody,
		DriveTrain:   w.VehicleDriveTrain,
		VIN:          w.VehicleVin,
	}
	if year, ok := w.VehicleYear.Int(); ok {
		attrs.Year = &year
	}
	if miles, ok := w.VehicleMiles.Int(); ok {
		attrs.Miles = &miles
	}
	return attrs
}

// flexInt decodes a JSON value that may be a number, a numeric string, or
// null/garbage. Invalid values read as absent rather than failing the whole
// payload.
type flexInt struct {
	value int
	valid bool
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	f.value = int(v)
	f.valid = true
	return nil
}

// Int returns the decoded value and whether one was present.
func (f flexInt) Int() (int, bool) {
	return f.value, f.valid
}

// parsePrice turns the feed's decimal price strings ("8999.00", "$8,999")
// into a number. Empty or unparseable prices read as absent.
func parsePrice(s string) *float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func truncateBody(body []byte) string {
	const max = 512
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
