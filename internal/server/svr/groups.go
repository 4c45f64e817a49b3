package svr

import (
	"github.com/gofiber/fiber/v2"
)

// Api is the group of dashboard data endpoints under /api.
type Api struct {
	fiber.Router
}

// Meta is the group of operational endpoints under /api/_.
type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*Api, *Meta) {
	api := app.Group("/api")
	meta := app.Group("/api/_")

	return &Api{Router: api}, &Meta{Router: meta}
}
