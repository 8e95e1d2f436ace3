// Package status declares the kinds of errors returned by remote providers.
//
// Providers return errors wrapping one of the sentinels below, so hosts may
// tell a caller mistake from a refused operation or a failing remote.
package status

import (
	"fmt"

	"github.com/oneconcern/s3web/pkg/errors"
)

var (
	// ErrInvalidArgument indicates a malformed locator, or unknown or missing properties
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotSupported indicates an operation this provider refuses to perform
	ErrNotSupported = errors.New("not supported")

	// ErrRemoteIO indicates that the remote could not be read
	ErrRemoteIO = errors.New("remote I/O error")
)

// RemoteIOError reports a failed read on a remote, with the resolved URL and status code.
//
// StatusCode is 0 when the remote could not be reached at all.
type RemoteIOError struct {
	URL        string
	StatusCode int
	Err        error
}

// NewRemoteIOError builds a RemoteIOError
func NewRemoteIOError(url string, code int, err error) *RemoteIOError {
	return &RemoteIOError{URL: url, StatusCode: code, Err: err}
}

func (e *RemoteIOError) Error() string {
	if e.StatusCode == 0 {
		if e.Err != nil {
			return fmt.Sprintf("failed to get %s: %v", e.URL, e.Err)
		}
		return fmt.Sprintf("failed to get %s", e.URL)
	}
	return fmt.Sprintf("failed to get %s, error code %d", e.URL, e.StatusCode)
}

// Unwrap yields ErrRemoteIO, then the underlying cause
func (e *RemoteIOError) Unwrap() error {
	return ErrRemoteIO.Wrap(e.Err)
}

// Kind classifies errors returned by providers
type Kind uint8

// Known kinds
const (
	KindOK Kind = iota
	KindInvalidArgument
	KindNotSupported
	KindRemoteIO
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindInvalidArgument:
		return "invalid argument"
	case KindNotSupported:
		return "not supported"
	case KindRemoteIO:
		return "remote I/O"
	default:
		return "unknown"
	}
}

// KindOf tells the kind of an error. A nil error is KindOK.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrNotSupported):
		return KindNotSupported
	case errors.Is(err, ErrRemoteIO):
		return KindRemoteIO
	default:
		return KindUnknown
	}
}
