package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	message := "order not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("test not found")

	notFoundErr, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, notFoundErr)
	assert.Equal(t, "test not found", notFoundErr.Message)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	notFoundErr, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, notFoundErr)
}

func TestBadRequestError_Creation(t *testing.T) {
	err := NewBadRequestError("no warehouse has sufficient inventory for all items")

	assert.NotNil(t, err)
	assert.Equal(t, "no warehouse has sufficient inventory for all items", err.Error())

	bre, ok := IsBadRequestError(err)
	assert.True(t, ok)
	assert.NotNil(t, bre)
}

func TestBadRequestError_NotConfusedWithOtherTypes(t *testing.T) {
	err := NewNotFoundError("nope")

	_, ok := IsBadRequestError(err)
	assert.False(t, ok)
}

func TestPaymentDeclinedError_Creation(t *testing.T) {
	err := NewPaymentDeclinedError("payment declined")

	assert.NotNil(t, err)
	assert.Equal(t, "payment declined", err.Error())

	pde, ok := IsPaymentDeclinedError(err)
	assert.True(t, ok)
	assert.Equal(t, "payment declined", pde.Message)
}

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "customerId", Message: "customerId must be a UUID"},
		{Field: "items", Message: "items must not be empty"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("database error")
	err := NewInternalError("failed to query database", cause)

	assert.NotNil(t, err)
	assert.Equal(t, "failed to query database", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "failed to query database")
	assert.Contains(t, err.Error(), "database error")
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewInternalError("wrapper", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}
