package types

import (
	"net/http"
	"strings"

	ierr "github.com/flexprice/dpp-gateway/internal/errors"
	"github.com/samber/lo"
)

// HTTPMethod is a request verb understood by the gateway
type HTTPMethod string

const (
	HTTPMethodGet   HTTPMethod = http.MethodGet
	HTTPMethodPost  HTTPMethod = http.MethodPost
	HTTPMethodPatch HTTPMethod = http.MethodPatch
)

var supportedHTTPMethods = []HTTPMethod{
	HTTPMethodGet,
	HTTPMethodPost,
	HTTPMethodPatch,
}

// ParseHTTPMethod normalizes a verb such as "post" or "PATCH"
func ParseHTTPMethod(s string) (HTTPMethod, error) {
	m := HTTPMethod(strings.ToUpper(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate rejects any verb the gateway does not accept
func (m HTTPMethod) Validate() error {
	if lo.Contains(supportedHTTPMethods, m) {
		return nil
	}
	return ierr.NewErrorf("unsupported operation %q", string(m)).
		WithHint("Only GET, POST and PATCH requests are supported").
		WithReportableDetails(map[string]any{
			"method":  string(m),
			"allowed": supportedHTTPMethods,
		}).
		Mark(ierr.ErrInvalidOperation)
}

// HasBody reports whether requests with this verb carry a JSON body
func (m HTTPMethod) HasBody() bool {
	return m == HTTPMethodPost || m == HTTPMethodPatch
}

func (m HTTPMethod) String() string {
	return string(m)
}
