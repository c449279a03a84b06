//go:build unit

package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkAndIs(t *testing.T) {
	cause := errors.New("E11000 duplicate key")
	marked := Mark(cause, ErrDuplicate)

	assert.True(t, Is(marked, ErrDuplicate))
	assert.True(t, Is(marked, cause))
	assert.False(t, Is(marked, ErrNotFound))
	assert.True(t, Is(fmt.Errorf("settle: %w", marked), ErrDuplicate))
	assert.Equal(t, ErrConflict, Mark(nil, ErrConflict))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	err := Wrap(ErrProvider, "create payment intent")
	assert.True(t, Is(err, ErrProvider))
	assert.Contains(t, err.Error(), "create payment intent")
	assert.NotEmpty(t, ExtractStackLines(err, 3))
	assert.LessOrEqual(t, len(ExtractStackLines(err, 3)), 3)
}
