package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorFormatting(t *testing.T) {
	assert.Equal(t, "VALIDATION: limit must not be negative",
		NewValidation("limit must not be negative").Error())

	cause := stderrors.New("dial tcp: connection refused")
	assert.Equal(t, "UPSTREAM: failed to query profiles: dial tcp: connection refused",
		NewUpstream("failed to query profiles", cause).Error())
}

func TestAppError_UnwrapExposesCause(t *testing.T) {
	cause := stderrors.New("record not found")
	err := NewUpstream("failed to query groups", cause)

	assert.ErrorIs(t, err, cause)
}

func TestWrap_PreservesType(t *testing.T) {
	inner := NewUpstream("failed to query posts", stderrors.New("timeout"))

	wrapped := Wrap(inner, "live moments branch")

	require.Error(t, wrapped)
	assert.True(t, IsUpstream(wrapped))
	assert.Contains(t, wrapped.Error(), "live moments branch: failed to query posts")
}

func TestWrap_DefaultsToInternal(t *testing.T) {
	wrapped := Wrap(stderrors.New("boom"), "orchestration")

	assert.True(t, IsInternal(wrapped))
}

func TestWrap_NilIsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "anything"))
}

func TestTypePredicates(t *testing.T) {
	validation := NewValidation("bad input")
	upstream := NewUpstream("store down", nil)
	internal := NewInternal("bug", nil)

	assert.True(t, IsValidation(validation))
	assert.False(t, IsValidation(upstream))
	assert.True(t, IsUpstream(upstream))
	assert.False(t, IsUpstream(internal))
	assert.True(t, IsInternal(internal))
	assert.False(t, IsInternal(stderrors.New("plain")))
}
