package offerup

import (
	"errors"
	"fmt"
)

// ErrListingNotFound is returned when the marketplace reports no listing
// for the requested id.
var ErrListingNotFound = errors.New("listing not found")

// UpstreamError wraps any remote or transport failure talking to the
// marketplace: connection errors, non-2xx statuses, GraphQL error payloads,
// and unparseable responses. RateLimited is set on HTTP 429 so callers can
// tell throttling apart from an outage.
type UpstreamError struct {
	Op          string
	StatusCode  int
	RateLimited bool
	Message     string
	Err         error
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("offerup %s: status %d: %s", e.Op, e.StatusCode, msg)
	}
	return fmt.Sprintf("offerup %s: %s", e.Op, msg)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
