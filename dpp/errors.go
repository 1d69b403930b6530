package dpp

import (
	ierr "github.com/flexprice/dpp-gateway/internal/errors"
	"github.com/flexprice/dpp-gateway/internal/httpclient"
)

// HTTPError carries the status code and raw body of a non-2xx response
type HTTPError = httpclient.Error

// ErrorResponse is a flattened, display friendly view of an error
type ErrorResponse = ierr.ErrorResponse

// IsHTTPError reports whether err was caused by a non-2xx response
func IsHTTPError(err error) (*HTTPError, bool) {
	return httpclient.IsHTTPError(err)
}

// IsAuthentication reports whether err is a token or credential failure,
// including a 401 from any endpoint
func IsAuthentication(err error) bool {
	return ierr.IsAuthentication(err)
}

// IsNotFound reports whether the gateway answered 404
func IsNotFound(err error) bool {
	return ierr.IsNotFound(err)
}

// HTTPStatus returns the status code that best describes err. A gateway
// 401 yields 401, other non-2xx responses and network failures yield 502.
func HTTPStatus(err error) int {
	return ierr.HTTPStatusFromErr(err)
}

// IsUnsupportedMethod reports whether a request used a verb the gateway does not accept
func IsUnsupportedMethod(err error) bool {
	return ierr.IsInvalidOperation(err)
}

// IsValidation reports whether the call was rejected before reaching the network
func IsValidation(err error) bool {
	return ierr.IsValidation(err)
}

// IsTransport reports whether the call failed talking to the gateway
func IsTransport(err error) bool {
	return ierr.IsHTTPClient(err)
}

// NewErrorResponse converts err into an ErrorResponse
func NewErrorResponse(err error) ErrorResponse {
	return ierr.NewErrorResponse(err)
}
