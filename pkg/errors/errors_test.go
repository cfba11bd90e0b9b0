package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(cause, ErrInternal.Code, ErrInternal.Status, "detection failed")

	assert.Equal(t, "detection failed: boom", err.Error())
	assert.Equal(t, cause, err.Unwrap())
}

func TestCloneOverridesMessageOnly(t *testing.T) {
	clone := Clone(ErrInvalidTarget, "slot q is not part of this clash")

	assert.Equal(t, ErrInvalidTarget.Code, clone.Code)
	assert.Equal(t, ErrInvalidTarget.Status, clone.Status)
	assert.Equal(t, "slot q is not part of this clash", clone.Message)
	assert.Equal(t, "slot is not a participant of the clash", ErrInvalidTarget.Message, "the sentinel itself stays untouched")
}

func TestFromErrorNormalises(t *testing.T) {
	typed := Clone(ErrUnmappableSlot, "")
	assert.Equal(t, typed, FromError(typed))

	plain := FromError(fmt.Errorf("boom"))
	require.NotNil(t, plain)
	assert.Equal(t, ErrInternal.Code, plain.Code)

	assert.Nil(t, FromError(nil))
}

func TestHasCodeMatchesThroughWrapping(t *testing.T) {
	err := Wrap(Clone(ErrInvalidTimeFormat, "bad clock"), ErrInvalidTimeFormat.Code, ErrInvalidTimeFormat.Status, "slot x")

	assert.True(t, HasCode(err, ErrInvalidTimeFormat))
	assert.False(t, HasCode(err, ErrValidation))
	assert.False(t, HasCode(nil, ErrValidation))
	assert.False(t, HasCode(fmt.Errorf("plain"), ErrValidation))
}
