package binrange

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/msb-dashboard/backend/internal/model/types"
	"github.com/msb-dashboard/backend/internal/service"
	"github.com/msb-dashboard/backend/internal/util/rekuest"
)

type CommandDeps struct {
	fx.In

	BinRangeService *service.BinRange
}

func Command(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:  "bin-range",
		Usage: "print every bin between two bin locations as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "start", Usage: "first bin, e.g. C0001", Required: true},
			&cli.StringFlag{Name: "end", Usage: "last bin, e.g. C0003", Required: true},
			&cli.IntFlag{Name: "column", Usage: "column tag of the generated bins", Value: 1},
		},
		Action: func(ctx *cli.Context) error {
			q := &types.BinRangeQuery{
				Start:  ctx.String("start"),
				End:    ctx.String("end"),
				Column: ctx.Int("column"),
			}
			if err := rekuest.ValidStruct(q); err != nil {
				return cli.Exit(err, 2)
			}

			res, err := depsFn().BinRangeService.Generate(q)
			if err != nil {
				return cli.Exit(err, 2)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res.Bins)
		},
	}
}
