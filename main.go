package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "go-life"
	app.Usage = "Conway's Game of Life in the terminal"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Value: "config.yaml", Usage: "YAML or JSON configuration file"},
		cli.StringFlag{Name: "pattern, p", Usage: "pattern to run: 1-5 or glider, oscillators, r-pentomino, glider-gun, mixed"},
		cli.StringFlag{Name: "mode, m", Usage: "a for limited generations, b for infinite mode"},
		cli.StringFlag{Name: "speed, s", Usage: "delay per generation in ms (50-1000, default 200)"},
		cli.StringFlag{Name: "display", Usage: "clear to redraw with the clear command, live to redraw in place"},
		cli.IntFlag{Name: "width", Usage: "viewport width, 0 uses the pattern's default"},
		cli.IntFlag{Name: "height", Usage: "viewport height, 0 uses the pattern's default"},
		cli.IntFlag{Name: "generations, g", Value: -1, Usage: "generation limit in limited mode, negative uses the pattern's default"},
		cli.BoolFlag{Name: "parallel", Usage: "compute generations on all CPUs"},
		cli.IntFlag{Name: "workers", Usage: "number of parallel workers, 0 uses one per CPU"},
		cli.BoolTFlag{Name: "pool", Usage: "recycle live sets between generations"},
		cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		cli.BoolFlag{Name: "no-prompt", Usage: "never ask for pattern, mode and speed interactively"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	config := loadConfig(os.Stdout, c.String("config"), c.IsSet("config"))
	applyFlags(c, &config)

	if !c.IsSet("pattern") && !c.Bool("no-prompt") {
		printMenu(os.Stdout)
		promptConfig(os.Stdin, os.Stdout, &config)
	}

	logger := newLogger(os.Stderr, config.LogLevel)
	setup, err := setupGame(config, os.Stdout, logger)
	if err != nil {
		return err
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	displayGameInfo(os.Stdout, setup)
	return playGame(ctx, os.Stdout, setup)
}
