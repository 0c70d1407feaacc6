package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrStoreUnavailable", ErrStoreUnavailable},
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnknownKey", ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrStoreUnavailable(t *testing.T) {
	assert.Equal(t, "unable to locate store", ErrStoreUnavailable.Error())

	wrapped := fmt.Errorf("get isEditMode: %w", ErrStoreUnavailable)
	assert.True(t, errors.Is(wrapped, ErrStoreUnavailable))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
}
