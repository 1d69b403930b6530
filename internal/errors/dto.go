package errors

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

const jsonDetailPrefix = "__json__:"

// ErrorResponse is the structured view of a failed gateway call
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Display       string         `json:"message"`
	InternalError string         `json:"internal_error,omitempty"`
	Status        int            `json:"status"`
	Details       map[string]any `json:"details,omitempty"`
}

// NewErrorResponse flattens an error chain into an ErrorResponse
func NewErrorResponse(err error) ErrorResponse {
	display := GetHint(err)
	if display == "" {
		display = "An unexpected error occurred"
	}
	return ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Display:       display,
			InternalError: err.Error(),
			Status:        HTTPStatusFromErr(err),
			Details:       GetDetails(err),
		},
	}
}

// GetDetails collects the reportable details recorded anywhere in the
// error chain. The outermost value wins when a key repeats.
func GetDetails(err error) map[string]any {
	details := make(map[string]any)

	for _, sdp := range errors.GetAllSafeDetails(err) {
		for _, payload := range sdp.SafeDetails {
			if !strings.HasPrefix(payload, jsonDetailPrefix) {
				continue
			}
			var decoded map[string]any
			if err := json.Unmarshal([]byte(payload[len(jsonDetailPrefix):]), &decoded); err != nil {
				continue
			}
			for k, v := range decoded {
				if _, ok := details[k]; !ok {
					details[k] = v
				}
			}
		}
	}

	return details
}
