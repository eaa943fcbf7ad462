package main

import (
	"context"
	"os"

	"bloodlink/config"
	"bloodlink/connection"
	"bloodlink/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "bloodlink",
		Usage: "Blood donation coordination API",
		Commands: []*cli.Command{
			serveCommand,
			seedCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Start the HTTP API server",
	Action: func(_ *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		gin.SetMode(gin.ReleaseMode)
		return connection.StartServer(cfg)
	},
}

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed district and upazila reference data",
	Action: func(_ *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		ctx := context.Background()
		fb, _, err := connection.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer fb.Close()

		if err := services.SeedReferenceData(ctx, fb); err != nil {
			return err
		}
		logrus.Info("reference data seeded")
		return nil
	},
}
