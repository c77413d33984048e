package main

import (
	"bufio"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"tabset/pkg/config"
	"tabset/pkg/data"
	"tabset/pkg/logging"
)

func dumpAction(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ds, err := data.Load(cfg.Data.Path,
		data.WithExpectedShape(cfg.Data.ExpectedRows, cfg.Data.ExpectedFeatures),
		data.WithLogger(logger))
	if err != nil {
		logger.Error("load dataset", zap.String("path", cfg.Data.Path), zap.Error(err))
		return err
	}
	rows, features := ds.Shape()
	logger.Info("dataset loaded",
		zap.String("path", cfg.Data.Path),
		zap.Int("samples", rows),
		zap.Int("features", features))

	w := bufio.NewWriter(os.Stdout)
	if err := ds.Dump(w); err != nil {
		return err
	}
	return w.Flush()
}

func main() {
	app := &cli.App{
		Name:      "tabset",
		HelpName:  "tabset",
		Usage:     "load a numeric CSV into a feature matrix and label vector and dump it",
		UsageText: "tabset [--config config.yaml]",
		Action:    dumpAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "configuration file; defaults apply when it does not exist",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
