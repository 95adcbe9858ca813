package auth

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrNoAccountSegment = errors.New("url has no path segment to use as account ID")

// AccountIDError reports that an account ID cannot be derived from a URL.
type AccountIDError struct {
	URL    string
	Marker string
	Err    error
}

func (e *AccountIDError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not parse account ID from %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("not a %s URL, cannot infer account ID: %s", e.Marker, e.URL)
}

func (e *AccountIDError) Unwrap() error {
	return e.Err
}

// ParseAccountID derives the sign-in routing key from an RPC URL such as
// https://us-west-1.genesysgo.net/<account-id>. The URL must contain marker.
// Trailing slashes are ignored; a URL with no path segment at all is
// rejected rather than producing an empty ID.
func ParseAccountID(rawURL, marker string) (string, error) {
	if marker == "" || !strings.Contains(rawURL, marker) {
		return "", &AccountIDError{URL: rawURL, Marker: marker}
	}

	path := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		path = u.Path
	}

	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i], nil
		}
	}
	return "", &AccountIDError{URL: rawURL, Marker: marker, Err: ErrNoAccountSegment}
}
