package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"turf-booking/internal/module/booking/mocks"
	"turf-booking/internal/module/booking/models/response"
	"turf-booking/internal/pkg/errors"
	log_internal "turf-booking/internal/pkg/log"
	"turf-booking/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*mocks.Repositories, *fiber.App) {
	repoMock := mocks.NewRepositories(t)
	m := &middleware.Middleware{
		Log:  log_internal.Setup(),
		Repo: repoMock,
	}

	app := fiber.New()
	app.Get("/me", m.ValidateToken, func(ctx *fiber.Ctx) error {
		return ctx.SendString(ctx.Locals("user_id").(string))
	})

	return repoMock, app
}

func TestValidateToken(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		validate   *response.UserServiceValidate
		err        error
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{
			name:       "auth service error",
			header:     "Bearer tok",
			validate:   &response.UserServiceValidate{},
			err:        errors.UnauthorizedError("invalid token"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token not valid",
			header:     "Bearer tok",
			validate:   &response.UserServiceValidate{IsValid: false},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid",
			header:     "Bearer tok",
			validate:   &response.UserServiceValidate{IsValid: true, UserID: "owner-1", EmailUser: "o@example.com"},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repoMock, app := setup(t)
			if tt.validate != nil {
				repoMock.On("ValidateToken", mock.Anything, "tok").Return(*tt.validate, tt.err)
			}

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
