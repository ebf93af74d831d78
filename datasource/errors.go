package datasource

import "fmt"

// ErrorKind tags the failure cause of a fetch. The tag exists for
// logging and tests; callers at the tool boundary treat every kind the
// same way.
type ErrorKind int

const (
	// KindTransport covers DNS, connect, send and receive failures.
	KindTransport ErrorKind = iota
	// KindStatus covers any HTTP status other than 200.
	KindStatus
	// KindDecode covers bodies that do not match the expected JSON shape.
	KindDecode
)

// FetchError is the single error type the provider returns. It always
// carries the offending URL.
type FetchError struct {
	Kind   ErrorKind
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("failed to make request to %s: status %d", e.URL, e.Status)
	case KindDecode:
		return fmt.Sprintf("failed to parse response from %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("failed to make request to %s: %v", e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }
