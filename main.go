package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"gopkg.in/urfave/cli.v2"

	"github.com/km-arc/learn-di/app"
	"github.com/km-arc/learn-di/app/cases"
	"github.com/km-arc/learn-di/framework/config"
	"github.com/km-arc/learn-di/framework/log"
)

const (
	argEnvFile = "env-file"
	argJSONLog = "json-log"
)

func main() {
	cliApp := &cli.App{
		Name:    "learn-di",
		Version: "0.1.0",
		Usage:   "Dependency injection walkthrough",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List the cases",
				Action: listCases,
			},
			{
				Name:      "run",
				Usage:     "Run cases by id, every case when none is given",
				ArgsUsage: "[id...]",
				Action:    runCases,
				Flags:     appFlags(),
			},
			{
				Name:   "serve",
				Usage:  "Serve the cases over HTTP",
				Action: serve,
				Flags:  appFlags(),
			},
		},
	}

	sort.Sort(cli.CommandsByName(cliApp.Commands))
	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "learn-di:", err)
		os.Exit(1)
	}
}

func appFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  argEnvFile,
			Usage: "dotenv file to load before reading the environment",
			Value: ".env",
		},
		&cli.BoolFlag{
			Name:  argJSONLog,
			Usage: "log as JSON regardless of LOG_FORMAT",
		},
	}
	sort.Sort(cli.FlagsByName(flags))
	return flags
}

func newApplication(c *cli.Context) (*app.Application, error) {
	cfg := config.Load(c.String(argEnvFile))
	if c.Bool(argJSONLog) {
		cfg.Log.Format = log.FormatJSON
	}
	return app.New(app.Options{Config: cfg})
}

func listCases(_ *cli.Context) error {
	for _, cs := range cases.All() {
		fmt.Printf("%s  %s\n", cs.ID, cs.Title)
	}
	return nil
}

func runCases(c *cli.Context) error {
	a, err := newApplication(c)
	if err != nil {
		return err
	}

	ids := c.Args().Slice()
	if len(ids) == 0 {
		for _, cs := range cases.All() {
			ids = append(ids, cs.ID)
		}
	}
	for _, id := range ids {
		out, err := a.RunCase(id)
		if err != nil {
			return err
		}
		fmt.Printf("── %s %s\n%s", id, strings.Repeat("─", 40), out)
	}
	return nil
}

func serve(c *cli.Context) error {
	a, err := newApplication(c)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.Run(ctx)
}
