package handler

import (
	"context"
	"fmt"

	"turf-booking/internal/module/booking/models/request"
	"turf-booking/internal/module/booking/usecases"
	"turf-booking/internal/pkg/errors"
	"turf-booking/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *BookingHandler) UpdateStatus(ctx *fiber.Ctx) error {
	var req request.UpdateStatus
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("status must be accepted or rejected"))
	}

	userID := ctx.Locals("user_id").(string)

	resp, err := h.Usecase.UpdateStatus(ctx.UserContext(), ctx.Params("id"), userID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update booking status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update booking status")
}

func (h *BookingHandler) GetCode(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	resp, err := h.Usecase.GetCode(ctx.UserContext(), ctx.Params("id"), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get qr code: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get qr code")
}

func (h *BookingHandler) RefreshCode(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	resp, err := h.Usecase.RefreshCode(ctx.UserContext(), ctx.Params("id"), userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error refresh qr code: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success refresh qr code")
}

// ConsumeReissueQueue handles booking_qr_reissue messages. Returned errors
// send the message to the poisoned queue.
func (h *BookingHandler) ConsumeReissueQueue(msg *message.Message) error {
	var req request.ReissueCode
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		return err
	}

	if _, err := h.Usecase.ReissueCode(msg.Context(), &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error reissue qr code: %v", err))
		return err
	}

	return nil
}

func (h *BookingHandler) SendCheckInReminder(ctx context.Context, t *asynq.Task) error {
	var req request.CheckInReminder
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.SendCheckInReminder(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error send check-in reminder: %v", err))
		return err
	}

	return nil
}
