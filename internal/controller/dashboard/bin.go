package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/msb-dashboard/backend/internal/model/types"
	"github.com/msb-dashboard/backend/internal/pkg/middlewares"
	"github.com/msb-dashboard/backend/internal/server/svr"
	"github.com/msb-dashboard/backend/internal/service"
)

type Bin struct {
	fx.In

	LayoutService      *service.Layout
	BinActivityService *service.BinActivity
	BinRangeService    *service.BinRange
}

func RegisterBin(api *svr.Api, c Bin) {
	api.Get("/bin_locations", c.BinLocations)
	api.Get("/bin_activity", c.BinActivity)
	api.Get("/bin_range", middlewares.InjectValidQuery[types.BinRangeQuery](), c.BinRange)
}

// @Summary Get Bin Locations
// @Description Get the warehouse layout of the bin locations document
// @Tags Dashboard
// @Produce json
// @Success 200 {object} model.Envelope
// @Router /api/bin_locations [GET]
func (c *Bin) BinLocations(ctx *fiber.Ctx) error {
	return respond(ctx, c.LayoutService.BinLocations(ctx.UserContext()))
}

// @Summary Get Bin Activity
// @Description Get transaction counts per bin prefix, with bounds for heatmap color scaling
// @Tags Dashboard
// @Produce json
// @Success 200 {object} model.Envelope
// @Router /api/bin_activity [GET]
func (c *Bin) BinActivity(ctx *fiber.Ctx) error {
	return respond(ctx, c.BinActivityService.Envelope(ctx.UserContext()))
}

// @Summary Generate Bin Range
// @Tags Dashboard
// @Produce json
// @Param start query string true "First bin" example(C0001)
// @Param end query string true "Last bin" example(C0003)
// @Param column query int false "Column tag" default(1)
// @Success 200 {object} model.BinRangeResponse
// @Failure 400 {object} dasherr.DashError "Invalid query"
// @Router /api/bin_range [GET]
func (c *Bin) BinRange(ctx *fiber.Ctx) error {
	res, err := c.BinRangeService.Generate(middlewares.QueryFrom[types.BinRangeQuery](ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
