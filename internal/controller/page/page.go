package page

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msb-dashboard/backend/internal/pkg/bininfo"
)

type page struct {
	template string
	title    string
}

func RegisterPage(app *fiber.App) {
	for path, p := range map[string]page{
		"/":         {template: "index", title: "Dashboard"},
		"/heatmap":  {template: "heatmap", title: "Bin Heatmap"},
		"/conveyor": {template: "conveyor", title: "Conveyor"},
	} {
		app.Get(path, render(p))
	}
}

func render(p page) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return ctx.Render(p.template, fiber.Map{
			"Title":   p.title,
			"Version": bininfo.Version,
		})
	}
}
