package router

import (
	bookingHandler "turf-booking/internal/module/booking/handler"
	checkinHandler "turf-booking/internal/module/checkin/handler"
	"turf-booking/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerBooking *bookingHandler.BookingHandler, handlerCheckin *checkinHandler.CheckinHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	v1 := Api.Group("/v1", m.ValidateToken)
	v1.Patch("/bookings/:id", handlerBooking.UpdateStatus)
	v1.Get("/bookings/:id/qr", handlerBooking.GetCode)
	v1.Post("/bookings/:id/qr/refresh", handlerBooking.RefreshCode)
	v1.Post("/qr/verify", handlerCheckin.Verify)

	return app

}
