package providers

import (
	"fmt"
	"io"
	"net/http"
)

// FetchError describes a failed outbound call. StatusCode is zero when the
// request never produced a response.
type FetchError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s returned status code: %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("%s request failed: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func statusError(source string, resp *http.Response) *FetchError {
	// drain a little so the connection can be reused
	_, _ = io.CopyN(io.Discard, resp.Body, 4<<10)
	return &FetchError{Source: source, StatusCode: resp.StatusCode}
}
