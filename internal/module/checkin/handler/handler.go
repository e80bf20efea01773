package handler

import (
	"fmt"

	"turf-booking/internal/module/checkin/models/request"
	"turf-booking/internal/module/checkin/usecases"
	"turf-booking/internal/pkg/errors"
	"turf-booking/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type CheckinHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *CheckinHandler) Verify(ctx *fiber.Ctx) error {
	var req request.VerifyQR
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("qr_data is required"))
	}

	userID := ctx.Locals("user_id").(string)

	resp, err := h.Usecase.Verify(ctx.UserContext(), userID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error verify qr code: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	message := "booking verified"
	if resp.AlreadyVerified {
		message = "booking already verified"
	}

	return helpers.RespSuccess(ctx, h.Log, resp, message)
}
