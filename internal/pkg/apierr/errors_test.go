package apierr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_MessageOrderIsStable(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"title":        "title is required",
		"amount":       "must be a number",
		"contact_info": "contact is required",
	}}

	want := "validation failed: amount: must be a number; contact_info: contact is required; title: title is required"
	for i := 0; i < 10; i++ {
		assert.Equal(t, want, err.Error())
	}
}

func TestAsValidationError_Unwraps(t *testing.T) {
	inner := &ValidationError{Fields: map[string]string{"name": "name is required"}}
	wrapped := fmt.Errorf("submit failed: %w", inner)

	unwrapped, ok := AsValidationError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, inner, unwrapped)

	_, ok = AsValidationError(fmt.Errorf("plain"))
	assert.False(t, ok)
}
