package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/msb-dashboard/backend/internal/constant"
	"github.com/msb-dashboard/backend/internal/model"
	"github.com/msb-dashboard/backend/internal/pkg/cachectrl"
	"github.com/msb-dashboard/backend/internal/server/svr"
	"github.com/msb-dashboard/backend/internal/service"
)

type Statistics struct {
	fx.In

	StatisticsService *service.Statistics
}

func RegisterStatistics(api *svr.Api, c Statistics) {
	api.Get("/statistics", c.Combined)
	api.Get("/ltap_statistics", c.kind(constant.DatasetLTAP))
	api.Get("/cdhdr_statistics", c.kind(constant.DatasetCDHDR))
	api.Get("/zu_history_statistics", c.kind(constant.DatasetZUHistory))
	api.Get("/pgid_lines_statistics", c.kind(constant.DatasetPGIDLines))
}

// respond writes env with status 200 whether or not it succeeded; the dashboard
// reads success from the body.
func respond(ctx *fiber.Ctx, env *model.Envelope) error {
	cachectrl.OptOut(ctx)
	return ctx.Status(fiber.StatusOK).JSON(env)
}

// @Summary Get Combined Statistics
// @Description Get the combined statistics document with today's by_date entry as today_data
// @Tags Dashboard
// @Produce json
// @Success 200 {object} model.Envelope
// @Router /api/statistics [GET]
func (c *Statistics) Combined(ctx *fiber.Ctx) error {
	return respond(ctx, c.StatisticsService.Combined(ctx.UserContext()))
}

func (c *Statistics) kind(kind constant.DatasetKind) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return respond(ctx, c.StatisticsService.Kind(ctx.UserContext(), kind))
	}
}
