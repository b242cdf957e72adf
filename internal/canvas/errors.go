package canvas

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotAuthenticated indicates no credentials are stored yet.
	ErrNotAuthenticated = errors.New("not logged in (run `lectern login` first)")

	// ErrUploadProtocol indicates the storage endpoint accepted the file
	// bytes but returned no location to confirm the upload at. The remote
	// side broke the handshake contract, so the attempt is not retried.
	ErrUploadProtocol = errors.New("upload endpoint returned no location")
)

// HTTPError is a non-success response from the API. Body carries the raw
// response payload untruncated so callers can display all of it.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Body)
}

// RequestError is a transport failure: the request could not be sent, or was
// sent and no response came back.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// IsAccessRestricted reports whether err is a 403 from the API. The
// aggregator uses this to skip a forbidden course instead of aborting.
func IsAccessRestricted(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.StatusCode == http.StatusForbidden
}

// IsServiceUnavailable reports whether err is a 503 from the API.
func IsServiceUnavailable(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.StatusCode == http.StatusServiceUnavailable
}
