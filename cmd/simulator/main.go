// Interactive seat-booking simulator reading commands from stdin.
package main

import (
	"context"
	"os"

	"github.com/YelyzavetaZahorulko/oop-airfligth/config"
	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/appServer"
	"github.com/YelyzavetaZahorulko/oop-airfligth/internal/cli"
	"github.com/sirupsen/logrus"
)

func main() {
	// Keep the interactive session readable: structured logs go to stderr.
	logrus.SetFormatter(new(logrus.JSONFormatter))
	logrus.SetOutput(os.Stderr)

	viperInstance, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Cannot load config. Error: {%s}", err.Error())
	}

	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		logrus.Fatalf("Cannot parse config. Error: {%s}", err.Error())
	}

	ctx := context.Background()

	app, err := appServer.Build(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	reader := cli.NewReader(app.Booking, app.Flights, os.Stdout)
	if err := reader.Run(ctx, os.Stdin); err != nil {
		logrus.Fatalf("Input error: %v", err)
	}
}
