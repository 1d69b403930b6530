package validator

import (
	"testing"

	ierr "github.com/flexprice/dpp-gateway/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	BaseURL string `validate:"required,url"`
	Mode    string `validate:"oneof=sandbox production"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(profile{BaseURL: "https://api.example.com/", Mode: "sandbox"}))

	err := ValidateRequest(profile{BaseURL: "nope", Mode: "staging"})
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
	assert.Equal(t, "Configuration validation failed", ierr.GetHint(err))
}

func TestGetValidatorIsShared(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
