package router_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	bookingHandler "turf-booking/internal/module/booking/handler"
	checkinHandler "turf-booking/internal/module/checkin/handler"
	log_internal "turf-booking/internal/pkg/log"
	"turf-booking/internal/pkg/middleware"
	router "turf-booking/internal/route"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup() *fiber.App {
	logger := log_internal.Setup()
	return router.Initialize(fiber.New(),
		&bookingHandler.BookingHandler{Log: logger},
		&checkinHandler.CheckinHandler{Log: logger},
		&middleware.Middleware{Log: logger},
	)
}

func TestHealth(t *testing.T) {
	app := setup()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))
}

func TestApiRequiresToken(t *testing.T) {
	app := setup()

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPatch, "/api/v1/bookings/b1"},
		{http.MethodGet, "/api/v1/bookings/b1/qr"},
		{http.MethodPost, "/api/v1/bookings/b1/qr/refresh"},
		{http.MethodPost, "/api/v1/qr/verify"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}
