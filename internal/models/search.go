package models

// SortOption is the type for the marketplace result ordering enum. Values
// are the marketplace's own sort keys and pass through to the feed call.
type SortOption string

// SortOption enum values.
const (
	SortNewestFirst    SortOption = "-posted"
	SortClosestFirst   SortOption = "distance"
	SortPriceLowToHigh SortOption = "price"
	SortPriceHighToLow SortOption = "-price"
)

// IsValid checks if the SortOption is valid.
func (s SortOption) IsValid() bool {
	switch s {
	case SortNewestFirst, SortClosestFirst, SortPriceLowToHigh, SortPriceHighToLow:
		return true
	}
	return false
}

// DeliveryOption is the type for the delivery method enum.
type DeliveryOption string

// DeliveryOption enum values.
const (
	DeliveryPickup            DeliveryOption = "p"
	DeliveryShipping          DeliveryOption = "s"
	DeliveryPickupAndShipping DeliveryOption = "p_s"
)

// IsValid checks if the DeliveryOption is valid.
func (d DeliveryOption) IsValid() bool {
	switch d {
	case DeliveryPickup, DeliveryShipping, DeliveryPickupAndShipping:
		return true
	}
	return false
}

// Condition is the type for the marketplace item condition enum.
type Condition string

// Condition enum values.
const (
	ConditionNew         Condition = "NEW"
	ConditionOpenBox     Condition = "OPEN_BOX"
	ConditionRefurbished Condition = "REFURBISHED"
	ConditionUsed        Condition = "USED"
	ConditionBroken      Condition = "BROKEN"
	ConditionOther       Condition = "OTHER"
)

// IsValid checks if the Condition is valid.
func (c Condition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionOpenBox, ConditionRefurbished,
		ConditionUsed, ConditionBroken, ConditionOther:
		return true
	}
	return false
}

// CarSearchRequest is the search input for both the JSON body of
// POST /cars/search and the query string of GET /cars/search. Every field
// is optional; zero values mean "not requested" and numeric filters use
// pointers so an explicit 0 can be told apart from absence.
type CarSearchRequest struct {
	Query          string         `json:"query" form:"query"`
	State          string         `json:"state" form:"state"`
	City           string         `json:"city" form:"city"`
	Lat            *float64       `json:"lat" form:"lat"`
	Lon            *float64       `json:"lon" form:"lon"`
	Limit          int            `json:"limit" form:"limit"`
	PickupDistance int            `json:"pickup_distance" form:"pickup_distance"`
	PriceMin       *int           `json:"price_min" form:"price_min"`
	PriceMax       *int           `json:"price_max" form:"price_max"`
	Sort           SortOption     `json:"sort" form:"sort"`
	Delivery       DeliveryOption `json:"delivery" form:"delivery"`
	Conditions     []Condition    `json:"conditions" form:"conditions"`
	Year           *int           `json:"year" form:"year"`
	Make           string         `json:"make" form:"make"`
	Model          string         `json:"model" form:"model"`
	MaxMiles       *int           `json:"max_miles" form:"max_miles"`
	MinMiles       *int           `json:"min_miles" form:"min_miles"`
}

// HasVehicleFilters reports whether any vehicle-specific filter is set,
// counting explicit make/model as well as year and mileage bounds.
func (r *CarSearchRequest) HasVehicleFilters() bool {
	return r.Make != "" || r.Model != "" || r.Year != nil ||
		r.MaxMiles != nil || r.MinMiles != nil
}

// FiltersApplied returns the non-empty request fields as a map, echoed back
// in search responses so callers can see what was actually in effect.
func (r *CarSearchRequest) FiltersApplied() map[string]interface{} {
	filters := map[string]interface{}{
		"limit":           r.Limit,
		"pickup_distance": r.PickupDistance,
		"sort":            r.Sort,
		"delivery":        r.Delivery,
	}
	if r.Query != "" {
		filters["query"] = r.Query
	}
	if r.State != "" {
		filters["state"] = r.State
	}
	if r.City != "" {
		filters["city"] = r.City
	}
	if r.Lat != nil {
		filters["lat"] = *r.Lat
	}
	if r.Lon != nil {
		filters["lon"] = *r.Lon
	}
	if r.PriceMin != nil {
		filters["price_min"] = *r.PriceMin
	}
	if r.PriceMax != nil {
		filters["price_max"] = *r.PriceMax
	}
	if len(r.Conditions) > 0 {
		filters["conditions"] = r.Conditions
	}
	if r.Year != nil {
		filters["year"] = *r.Year
	}
	if r.Make != "" {
		filters["make"] = r.Make
	}
	if r.Model != "" {
		filters["model"] = r.Model
	}
	if r.MaxMiles != nil {
		filters["max_miles"] = *r.MaxMiles
	}
	if r.MinMiles != nil {
		filters["min_miles"] = *r.MinMiles
	}
	return filters
}
