package app

import (
	"go.uber.org/fx"

	cliapp "github.com/msb-dashboard/backend/cmd/app/cli"
)

// depsFn defers building the fx graph until the command actually runs.
func depsFn[T any]() func() T {
	return func() T {
		var deps T
		cliapp.Start(fx.Populate(&deps))
		return deps
	}
}
