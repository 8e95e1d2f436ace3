package web

import (
	"fmt"
	"net/http"

	"github.com/oneconcern/s3web/pkg/storage/status"
)

// ResponseError reports a non-successful HTTP response for some object
type ResponseError struct {
	URL        string
	StatusCode int
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("failed to get %s, error code %d", e.URL, e.StatusCode)
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

// toSentinelErrors qualifies a response error with the sentinels defined by the status package
func toSentinelErrors(err *ResponseError) error {
	switch err.StatusCode {
	case http.StatusNotFound, http.StatusGone:
		return status.ErrNotExists.Wrap(err)
	case http.StatusUnauthorized:
		return status.ErrUnauthorized.Wrap(err)
	case http.StatusForbidden:
		return status.ErrForbidden.Wrap(err)
	default:
		return status.ErrStorageAPI.Wrap(err)
	}
}
