package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"github.com/msb-dashboard/backend/internal/pkg/bininfo"
	"github.com/msb-dashboard/backend/internal/server/svr"
	"github.com/msb-dashboard/backend/internal/service"
)

type Meta struct {
	fx.In

	HealthService *service.Health
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	meta.Get("/health", cache.New(cache.Config{
		// cache it for a second to mitigate potential DDoS
		Expiration: time.Second,
	}), c.Health)
}

func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

// Health reports the availability of every snapshot file. A missing file makes the
// report unhealthy but is not an error of the endpoint itself.
func (c *Meta) Health(ctx *fiber.Ctx) error {
	report, err := c.HealthService.Check(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(report)
}
