package dashboard

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("controllers.dashboard", fx.Invoke(
		RegisterStatistics,
		RegisterBin,
	))
}
