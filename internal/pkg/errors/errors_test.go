package errors_test

import (
	"net/http"
	"testing"

	"turf-booking/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{"bad request", errors.BadRequest("bad"), http.StatusBadRequest, errors.KindBadRequest},
		{"unauthorized", errors.UnauthorizedError("who"), http.StatusUnauthorized, errors.KindUnauthorized},
		{"forbidden", errors.Forbidden("no"), http.StatusForbidden, errors.KindForbidden},
		{"not found", errors.NotFound("gone"), http.StatusNotFound, errors.KindNotFound},
		{"internal", errors.InternalServerError("boom"), http.StatusInternalServerError, errors.KindInternalError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			customErr, ok := tc.err.(errors.CustomError)
			assert.True(t, ok)
			assert.Equal(t, tc.code, customErr.Code)
			assert.Equal(t, tc.kind, customErr.Kind)
			assert.Equal(t, customErr.Message, tc.err.Error())
		})
	}
}

func TestWithDetails(t *testing.T) {
	base := errors.New(http.StatusBadRequest, "outside_window", "outside window")
	withDetails := base.WithDetails(map[string]string{"start": "09:00"})

	assert.Nil(t, base.Details)
	assert.Equal(t, map[string]string{"start": "09:00"}, withDetails.Details)
	assert.Equal(t, base.Message, withDetails.Message)
}
