package httpserver

import (
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/msb-dashboard/backend/internal/pkg/dasherr"
)

func handleCustomError(ctx *fiber.Ctx, e *dasherr.DashError) error {
	log.Ctx(ctx.UserContext()).Warn().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}

	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var de *dasherr.DashError
	if errors.As(err, &de) {
		return handleCustomError(ctx, de)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code == fiber.StatusNotFound {
			return handleCustomError(ctx, dasherr.ErrNotFound.Msg("%s", fe.Message))
		}
		if fe.Code < fiber.StatusInternalServerError {
			return handleCustomError(ctx, dasherr.New(fe.Code, "UNKNOWN_ERROR", fe.Message))
		}
	}

	re := *dasherr.ErrInternalError

	log.Ctx(ctx.UserContext()).Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("internal server error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		hub.CaptureException(err)
	}

	return handleCustomError(ctx, &re)
}
