package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/msb-dashboard/backend/internal/app"
	"github.com/msb-dashboard/backend/internal/app/appcontext"
)

func Start(module fx.Option) {
	if err := app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background()); err != nil {
		panic(err)
	}
}
