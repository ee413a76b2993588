package models

// VehicleAttributes is the structured vehicle data attached to a listing
// when the marketplace has it. Every field is optional.
type VehicleAttributes struct {
	Year         *int   `json:"year,omitempty"`
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	Miles        *int   `json:"miles,omitempty"`
	Color        string `json:"color,omitempty"`
	Transmission string `json:"transmission,omitempty"`
	FuelType     string `json:"fuel_type,omitempty"`
	Body         string `json:"body,omitempty"`
	DriveTrain   string `json:"drive_train,omitempty"`
	VIN          string `json:"vin,omitempty"`
}

// CarListing is the public shape of one search result. Price is a decimal
// (null when the marketplace omitted it) and PostedAt is ISO-8601.
type CarListing struct {
	ListingID         string             `json:"listing_id"`
	Title             string             `json:"title"`
	Price             *float64           `json:"price"`
	LocationName      string             `json:"location_name,omitempty"`
	ListingURL        string             `json:"listing_url"`
	ConditionText     string             `json:"condition_text,omitempty"`
	ImageURL          string             `json:"image_url,omitempty"`
	PostedAt          string             `json:"posted_at,omitempty"`
	VehicleAttributes *VehicleAttributes `json:"vehicle_attributes,omitempty"`
}

// CarSearchResponse is the envelope for search results. Listings keep the
// order the marketplace returned them in.
type CarSearchResponse struct {
	TotalResults   int                    `json:"total_results"`
	Listings       []CarListing           `json:"listings"`
	Query          string                 `json:"query"`
	FiltersApplied map[string]interface{} `json:"filters_applied"`
}

// CarDetailResponse is the public shape of a single listing lookup.
type CarDetailResponse struct {
	ListingID         string             `json:"listing_id"`
	Title             string             `json:"title"`
	Price             *float64           `json:"price"`
	Description       string             `json:"description,omitempty"`
	LocationName      string             `json:"location_name,omitempty"`
	ListingURL        string             `json:"listing_url"`
	Condition         string             `json:"condition,omitempty"`
	VehicleAttributes *VehicleAttributes `json:"vehicle_attributes,omitempty"`
	Photos            []string           `json:"photos"`
}
