package main

import (
	"github.com/msb-dashboard/backend/cmd/app"
)

func main() {
	app.Run()
}
