package main

import "fmt"

// RemoteUnavailableError reports a listing or probe request that could not
// be served: connection failure, bad status, or an unparseable response.
type RemoteUnavailableError struct {
	URL string
	Err error
}

func (e *RemoteUnavailableError) Error() string {
	return fmt.Sprintf("remote unavailable: %s: %v", e.URL, e.Err)
}

func (e *RemoteUnavailableError) Unwrap() error { return e.Err }

// FetchError reports a single file transfer that did not complete.
type FetchError struct {
	Path string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed: %s: %v", e.Path, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
