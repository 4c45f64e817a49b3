package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/msb-dashboard/backend/cmd/app/cli/binrange"
	"github.com/msb-dashboard/backend/cmd/app/cli/deploy"
	"github.com/msb-dashboard/backend/cmd/app/server"
	"github.com/msb-dashboard/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        bininfo.ServiceName,
		Description: "Backend of the MSB warehouse dashboard. Serves the statistics snapshots and bin activity produced by the SAP batch. Built with Go, fiber and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			deploy.Command(depsFn[deploy.CommandDeps]()),
			binrange.Command(depsFn[binrange.CommandDeps]()),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
