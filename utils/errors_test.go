package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("no rows")
	err := NotFoundError(ErrBookNotFound, cause)

	assert.Equal(t, http.StatusNotFound, err.Code)
	assert.Equal(t, "Book not found: no rows", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsNotFoundError(err))
	assert.True(t, IsNotFoundError(fmt.Errorf("handler: %w", err)))
	assert.False(t, IsNotFoundError(cause))
}

func TestDataAccessError(t *testing.T) {
	cause := fmt.Errorf("%w: %w", ErrDataAccess, errors.New("timeout"))
	err := DataAccessError(ErrFetchBooks, cause)

	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.True(t, IsDataAccessError(err))
	assert.False(t, IsNotFoundError(err))
	assert.Same(t, err, GetAppError(err))
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))

	cause := errors.New("boom")
	wrapped := WrapError(cause, "loading")
	assert.EqualError(t, wrapped, "loading: boom")
	assert.ErrorIs(t, wrapped, cause)
}
