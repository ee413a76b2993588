package service

import "fmt"

// UnknownLocationError is returned when a state or city is not in the
// location table.
type UnknownLocationError struct {
	State string
	City  string
}

// Error returns the error message.
func (e UnknownLocationError) Error() string {
	if e.City != "" {
		return fmt.Sprintf("unknown location: %s, %s", e.State, e.City)
	}
	return fmt.Sprintf("unknown location: %s", e.State)
}

// IncompleteLocationError is returned when a location is only partially
// specified: state without city, city without state, or a lone coordinate.
type IncompleteLocationError struct {
	Reason string
}

// Error returns the error message.
func (e IncompleteLocationError) Error() string {
	return e.Reason
}

// InvalidFilterRangeError is returned when a filter value is out of range
// or a pair of bounds is ordered impossibly (price_min above price_max).
type InvalidFilterRangeError struct {
	Reason string
}

// Error returns the error message.
func (e InvalidFilterRangeError) Error() string {
	return e.Reason
}

// ProfaneQueryError is returned when a search query fails the profanity
// screen before any marketplace call is made.
type ProfaneQueryError struct{}

// Error returns the error message.
func (e ProfaneQueryError) Error() string {
	return "query contains inappropriate language"
}

// InvalidListingIDError is returned for listing ids that cannot exist on
// the marketplace, which only issues numeric ids.
type InvalidListingIDError struct {
	ListingID string
}

// Error returns the error message.
func (e InvalidListingIDError) Error() string {
	return fmt.Sprintf("invalid listing id: %s", e.ListingID)
}
