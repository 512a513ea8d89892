package releases

import (
	"fmt"
	"strings"
)

// NetworkError is a transport-level failure: refused connection, DNS, TLS, timeout.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError is a response with a non-2xx status.
type HTTPError struct {
	URL    string
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s returned HTTP status %d", e.URL, e.Status)
}

// DecodeError means the body of a successful response was not release metadata.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode release metadata from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AssetNotFoundError means no asset name contained every required pattern.
type AssetNotFoundError struct {
	Repo     string
	Tag      string
	Patterns []string
}

func (e *AssetNotFoundError) Error() string {
	where := e.Repo
	if e.Tag != "" {
		where += "@" + e.Tag
	}
	return fmt.Sprintf("no asset in %s matches [%s]", where, strings.Join(e.Patterns, ", "))
}
