package page

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("controllers.page", fx.Invoke(
		RegisterPage,
	))
}
