package main

import (
	"EduAgent/internal/bootstrap"
	pkg "EduAgent/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.Loadenv()

	app := fx.New(
		pkg.EchoModules,
	)

	app.Run()
}
