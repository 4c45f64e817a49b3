package meta

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msb-dashboard/backend/internal/pkg/bininfo"
)

func RegisterIndex(app *fiber.App) {
	app.Get("/api", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "MSB warehouse dashboard API",
			"version": bininfo.Version,
		})
	})
}
