package deploy

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/msb-dashboard/backend/internal/service"
)

var ErrDeployFailed = errors.New("deployment was not triggered")

type CommandDeps struct {
	fx.In

	DeployService *service.Deploy
}

func Command(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:        "deploy",
		Usage:       "trigger a Render deploy after the data files were refreshed",
		Description: "POSTs a deploy request for MSBDASH_RENDER_SERVICE_ID to the Render API. Run it after the SAP scripts finish updating the JSON files.",
		Action: func(ctx *cli.Context) error {
			if !depsFn().DeployService.Trigger(ctx.Context) {
				return cli.Exit(ErrDeployFailed, 1)
			}
			return nil
		},
	}
}
