package http

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"turf-booking/config"
	"turf-booking/internal/pkg/helpers"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm/module/apmfiber"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func SetupHttpEngine(cfg *config.HttpServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "turf-booking",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return ctx.Status(code).JSON(helpers.ErrorResponse{
				Message: err.Error(),
				Kind:    "http",
			})
		},
	})

	app.Use(recover.New())
	app.Use(apmfiber.Middleware())

	return app
}

// StartHttpServer serves app until SIGINT or SIGTERM, then shuts down gracefully.
func StartHttpServer(app *fiber.App, port string, log *otelzap.Logger) {
	ctx := context.Background()
	srvErr := make(chan error, 1)
	go func() {
		srvErr <- app.Listen(fmt.Sprintf(":%s", port))
	}()

	stopCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil {
			log.Ctx(ctx).Error("server error", zap.Error(err))
		}
	case <-stopCtx.Done():
		log.Ctx(ctx).Info("shutdown signal received, stopping server")
	}

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Ctx(ctx).Error("server shutdown error", zap.Error(err))
	}
	log.Ctx(ctx).Info("server stopped")
}
