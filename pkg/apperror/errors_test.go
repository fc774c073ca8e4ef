package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamNotFoundWithEmptyBody(t *testing.T) {
	err := NewUpstreamError(404, "")
	assert.True(t, IsUpstreamNotFound(err))

	// a local 404 is not an upstream one
	assert.False(t, IsUpstreamNotFound(NewNotFoundError("Table")))
}

func TestDuplicateClassification(t *testing.T) {
	assert.True(t, IsDuplicate(NewDuplicateError("Item already added")))
	assert.True(t, IsDuplicate(NewUpstreamError(400, `{"error":"bill number exists"}`)))
	assert.True(t, IsDuplicate(NewUpstreamError(400, "")))

	// a local bad-request is not a duplicate
	assert.False(t, IsDuplicate(ErrBadRequest))
	assert.False(t, IsDuplicate(errors.New("plain")))
}

func TestClassificationSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("settle order 101: %w", NewUpstreamError(404, ""))
	assert.True(t, IsUpstreamNotFound(err))
}

func TestNetworkErrorIsBadGateway(t *testing.T) {
	err := NewNetworkError(errors.New("dial tcp: connection refused"))
	assert.Equal(t, 502, GetAppError(err).Code)
	assert.False(t, IsUpstreamNotFound(err))
}
