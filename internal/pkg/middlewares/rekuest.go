package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msb-dashboard/backend/internal/pkg/dasherr"
	"github.com/msb-dashboard/backend/internal/util/rekuest"
)

const LocalsKeyQuery = "query"

// InjectValidQuery parses the query string into T, validates it and stores the
// result in ctx.Locals under LocalsKeyQuery. Use QueryFrom to retrieve it.
func InjectValidQuery[T any]() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		dest := new(T)
		if err := ctx.QueryParser(dest); err != nil {
			return dasherr.ErrInvalidReq.Msg("invalid request: %s", err)
		}

		if err := rekuest.ValidStruct(dest); err != nil {
			return err
		}

		ctx.Locals(LocalsKeyQuery, dest)

		return ctx.Next()
	}
}

func QueryFrom[T any](ctx *fiber.Ctx) *T {
	return ctx.Locals(LocalsKeyQuery).(*T)
}
