package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Kind_HTTPStatus(t *testing.T) {
	testCases := []struct {
		kind     Kind
		expected int
	}{
		{BadRequest, http.StatusBadRequest},
		{Unauthorized, http.StatusUnauthorized},
		{Forbidden, http.StatusForbidden},
		{NotFound, http.StatusNotFound},
		{Conflict, http.StatusConflict},
		{ValidationFailed, http.StatusUnprocessableEntity},
		{Internal, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.kind.HTTPStatus())
		})
	}
}

func Test_KindOf(t *testing.T) {
	assert.Equal(t, NotFound, KindOf(New(NotFound, "gone")))
	assert.Equal(t, Conflict, KindOf(fmt.Errorf("wrapped: %w", Newf(Conflict, "dup %q", "x"))))
	assert.Equal(t, Internal, KindOf(errors.New("plain")))
}

func Test_Validation(t *testing.T) {
	err := Validation([]string{"name is required", "price must be greater than 0"})

	assert.Equal(t, ValidationFailed, err.Kind)
	assert.Len(t, err.Details, 2)
	assert.Equal(t, "Validation failed", err.Error())
}
