package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	verr := NewValidationError("content", "This field is required.")
	verr.Add("author_name", "Too long.")

	assert.False(t, verr.Empty())
	assert.Equal(t, "validation failed: author_name: Too long., content: This field is required.", verr.Error())
}

func TestValidationErrorUnwrapsCause(t *testing.T) {
	verr := &ValidationError{Cause: ErrUnresolvedTarget}
	verr.Add("target", "unknown entity type")
	wrapped := fmt.Errorf("create feedback: %w", verr)

	var target *ValidationError
	assert.True(t, errors.As(wrapped, &target))
	assert.True(t, errors.Is(wrapped, ErrUnresolvedTarget))
}
