package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		kind   Kind
		status int
	}{
		{KindValidation, http.StatusUnprocessableEntity},
		{KindDuplicateAccount, http.StatusConflict},
		{KindInvalidCredentials, http.StatusUnauthorized},
		{KindTokenInvalid, http.StatusUnauthorized},
		{KindTokenExpired, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, Status(New(tc.kind, "x")), "kind %s", tc.kind)
	}
}

func TestFrom(t *testing.T) {
	e := Validation("name is required")
	assert.Same(t, e, From(e))

	wrapped := fmt.Errorf("handling request: %w", e)
	assert.Same(t, e, From(wrapped))

	unknown := From(errors.New("driver exploded"))
	assert.Equal(t, KindInternal, unknown.Kind)
	assert.Equal(t, "internal server error", unknown.Message)
}
