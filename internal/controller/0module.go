package controller

import (
	"go.uber.org/fx"

	controllerdashboard "github.com/msb-dashboard/backend/internal/controller/dashboard"
	controllermeta "github.com/msb-dashboard/backend/internal/controller/meta"
	controllerpage "github.com/msb-dashboard/backend/internal/controller/page"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (dashboard data)
		controllerdashboard.Module(),

		// Controllers (meta)
		controllermeta.Module(),

		// Controllers (page shells)
		controllerpage.Module(),
	)
}
