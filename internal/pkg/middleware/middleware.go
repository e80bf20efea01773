package middleware

import (
	"context"
	"fmt"
	"strings"

	"turf-booking/internal/module/booking/models/response"
	"turf-booking/internal/pkg/errors"
	"turf-booking/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const bearerPrefix = "Bearer "

type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
}

type Middleware struct {
	Log  *otelzap.Logger
	Repo TokenValidator
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get("Authorization")
	if auth == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	if !strings.HasPrefix(auth, bearerPrefix) {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header: not a bearer token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	token := strings.TrimSpace(strings.TrimPrefix(auth, bearerPrefix))
	if token == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header: empty token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	resp, err := m.Repo.ValidateToken(ctx.UserContext(), token)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	if !resp.IsValid || resp.UserID == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error validate token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals("user_id", resp.UserID)
	ctx.Locals("email_user", resp.EmailUser)

	return ctx.Next()
}
