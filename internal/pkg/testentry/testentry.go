// Package testentry builds the server's fx graph for package tests.
package testentry

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/msb-dashboard/backend/internal/app/appconfig"
	"github.com/msb-dashboard/backend/internal/controller"
	"github.com/msb-dashboard/backend/internal/infra"
	"github.com/msb-dashboard/backend/internal/repo"
	"github.com/msb-dashboard/backend/internal/server"
	"github.com/msb-dashboard/backend/internal/service"
)

// Populate starts the server graph with conf and fills targets. The graph is stopped
// when the test finishes. Workers are left out.
func Populate(t *testing.T, conf *appconfig.Config, targets ...any) {
	t.Helper()

	// route logs to the test output; request loggers copy the global logger when the app is built
	prev := log.Logger
	log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))

	// for testing, fx logger is too annoying. therefore, we use a NopLogger here
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(conf),
		infra.Module(),
		server.Module(),
		repo.Module(),
		service.Module(),
		controller.Module(),
		fx.Populate(targets...),
	)
	app.RequireStart()
	t.Cleanup(func() {
		app.RequireStop()
		log.Logger = prev
	})
}
