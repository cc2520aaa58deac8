package gateway

import (
	"errors"
	"fmt"
)

// ErrRemoteNotConfigured is returned by SaveRemote when no config store
// endpoint is set.
var ErrRemoteNotConfigured = errors.New("remote config endpoint not configured")

// ErrInvalidJSON marks an imported file that does not parse as a JSON
// configuration document.
var ErrInvalidJSON = errors.New("invalid JSON")

// RemoteSaveError reports a failed remote save: either a transport error or
// a non-2xx response, in which case Status carries the HTTP status code.
type RemoteSaveError struct {
	Status int
	Err    error
}

func (e *RemoteSaveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote save failed: %v", e.Err)
	}
	return fmt.Sprintf("remote save failed: status %d", e.Status)
}

func (e *RemoteSaveError) Unwrap() error { return e.Err }
