package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type placeholderPayload struct {
	Response string `json:"response" validate:"required,notplaceholder"`
}

func TestNotPlaceholderRule(t *testing.T) {
	t.Parallel()

	v := New()

	for _, bad := range []string{"string", "   ", "\t\n"} {
		err := v.Validate(&placeholderPayload{Response: bad})
		require.Error(t, err, "value %q must be rejected", bad)

		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, vErr.Errors, "response", "errors keyed by JSON field name")
	}

	assert.NoError(t, v.Validate(&placeholderPayload{Response: "an actual answer"}))
	// The word itself inside a longer answer is fine.
	assert.NoError(t, v.Validate(&placeholderPayload{Response: "a string of events"}))
}

type emailPayload struct {
	Email string `json:"email" validate:"required,email"`
}

func TestMessagesUseJSONFieldNames(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&emailPayload{Email: "not-an-email"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors["email"], "valid email")
}
