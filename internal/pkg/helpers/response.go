package helpers

import (
	"fmt"

	"turf-booking/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Message string      `json:"message"`
	Kind    string      `json:"kind"`
	Details interface{} `json:"details,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Message: message,
		Data:    data,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	customErr, ok := err.(errors.CustomError)
	if !ok {
		log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("unexpected error: %v", err))
		customErr = errors.InternalServerError("internal server error").(errors.CustomError)
	}

	return ctx.Status(customErr.Code).JSON(ErrorResponse{
		Message: customErr.Message,
		Kind:    customErr.Kind,
		Details: customErr.Details,
	})
}
