package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/utils"
)

// gameSetup is everything needed to start a run
type gameSetup struct {
	preset       patterns.Preset
	validPattern bool
	mode         utils.RunMode
	generations  int
	delayMs      int
	runner       *game.Runner
}

// loadConfig reads the config file, falling back to defaults if it can't be used.
// A missing default file is expected and not reported.
func loadConfig(w io.Writer, filename string, explicit bool) utils.Config {
	config, err := utils.LoadConfig(filename)
	if err != nil {
		if explicit || !os.IsNotExist(errors.Cause(err)) {
			fmt.Fprintf(w, "Using default configuration (%v)\n", errors.Cause(err))
		}
		return utils.DefaultConfig()
	}
	return config
}

// applyFlags overrides the configuration with the flags given on the command line
func applyFlags(c *cli.Context, config *utils.Config) {
	if c.IsSet("pattern") {
		config.Pattern = c.String("pattern")
	}
	if c.IsSet("mode") {
		config.Mode = c.String("mode")
	}
	if c.IsSet("speed") {
		config.DelayMs = utils.ParseDelay(c.String("speed"))
	}
	if c.IsSet("display") {
		config.Display = c.String("display")
	}
	if c.IsSet("width") {
		config.Width = c.Int("width")
	}
	if c.IsSet("height") {
		config.Height = c.Int("height")
	}
	if c.IsSet("generations") {
		config.Generations = c.Int("generations")
	}
	if c.IsSet("parallel") {
		config.UseParallel = c.Bool("parallel")
	}
	if c.IsSet("workers") {
		config.Workers = c.Int("workers")
	}
	if c.IsSet("pool") {
		config.UseMemoryPool = c.BoolT("pool")
	}
	if c.IsSet("log-level") {
		config.LogLevel = c.String("log-level")
	}
}

func printMenu(w io.Writer) {
	fmt.Fprintln(w, "Conway's Game of Life")
	fmt.Fprintln(w, "====================")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Choose a demo:")
	for _, p := range patterns.Presets() {
		fmt.Fprintf(w, "%s. %s\n", p.Key, p.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run mode:")
	fmt.Fprintln(w, "a. Limited generations (stops automatically)")
	fmt.Fprintln(w, "b. Infinite mode (run forever, press Ctrl+C to stop)")
	fmt.Fprintln(w)
}

// promptConfig asks for pattern, mode and speed. Empty answers keep the configured value.
func promptConfig(in io.Reader, out io.Writer, config *utils.Config) {
	reader := bufio.NewReader(in)

	if choice := getUserInput(reader, out, fmt.Sprintf("Enter pattern choice (1-%d): ", len(patterns.Presets()))); choice != "" {
		config.Pattern = choice
	}
	if mode := getUserInput(reader, out, "Enter mode (a/b): "); mode != "" {
		config.Mode = mode
	}
	speed := getUserInput(reader, out, fmt.Sprintf("Enter speed in ms (%d-%d, default %d): ",
		utils.MinDelayMs, utils.MaxDelayMs, utils.DefaultDelayMs))
	if speed != "" {
		config.DelayMs = utils.ParseDelay(speed)
	}
}

func getUserInput(reader *bufio.Reader, out io.Writer, prompt string) string {
	fmt.Fprint(out, prompt)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// newLogger builds a logfmt logger filtered to the named level
func newLogger(w io.Writer, levelName string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	var allow level.Option
	switch strings.ToLower(strings.TrimSpace(levelName)) {
	case "debug":
		allow = level.AllowDebug()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		allow = level.AllowInfo()
	}
	return level.NewFilter(logger, allow)
}

// newScreen picks the console surface frames are drawn on
func newScreen(display string, out io.Writer) game.Screen {
	if strings.EqualFold(strings.TrimSpace(display), utils.DisplayLive) {
		return model.NewLiveScreen(out)
	}
	return model.NewTerminalScreen(out)
}

// setupGame resolves the configuration into a preset, a run mode and a runner
func setupGame(config utils.Config, out io.Writer, logger log.Logger) (*gameSetup, error) {
	preset, ok := patterns.Lookup(config.Pattern)

	settings := game.Settings{
		Width:         preset.Width,
		Height:        preset.Height,
		Delay:         time.Duration(utils.ClampDelay(config.DelayMs)) * time.Millisecond,
		UseParallel:   config.UseParallel,
		Workers:       config.Workers,
		UseMemoryPool: config.UseMemoryPool,
	}
	if config.Width > 0 {
		settings.Width = config.Width
	}
	if config.Height > 0 {
		settings.Height = config.Height
	}
	if config.Workers < 0 {
		return nil, errors.Errorf("[setupGame] workers must not be negative, got %d", config.Workers)
	}

	generations := preset.Generations
	if config.Generations >= 0 {
		generations = config.Generations
	}

	return &gameSetup{
		preset:       preset,
		validPattern: ok,
		mode:         config.RunMode(),
		generations:  generations,
		delayMs:      utils.ClampDelay(config.DelayMs),
		runner:       game.NewRunner(newScreen(config.Display, out), settings, logger),
	}, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, g *gameSetup) {
	if !g.validPattern {
		fmt.Fprintln(w, "Invalid choice. Running glider demo...")
	}
	fmt.Fprintln(w, "\nStarting simulation...")
	fmt.Fprintln(w)
	if g.mode == utils.Unbounded {
		fmt.Fprintln(w, "INFINITE MODE - Press Ctrl+C to stop")
	} else {
		fmt.Fprintln(w, "LIMITED MODE - Will stop automatically")
	}
	fmt.Fprintf(w, "Speed: %dms per generation\n", g.delayMs)
	time.Sleep(1 * time.Second)
}

// playGame runs the selected mode and reports how it ended
func playGame(ctx context.Context, w io.Writer, g *gameSetup) error {
	var (
		summary game.Summary
		err     error
	)
	if g.mode == utils.Unbounded {
		summary, err = g.runner.RunUnbounded(ctx, g.preset.Cells())
	} else {
		summary, err = g.runner.RunBounded(ctx, g.generations, g.preset.Cells())
	}

	switch {
	case errors.Is(err, context.Canceled):
		stats := g.runner.Stats()
		fmt.Fprintln(w, "\nShutting down gracefully...")
		fmt.Fprintf(w, "Final stats: %d generations in %.1f seconds\n",
			summary.Generations, stats.Runtime().Seconds())
		fmt.Fprintf(w, "Population: %d | Peak: %d | Avg: %.1f\n",
			summary.Population, stats.PeakPopulation, stats.AveragePopulation)
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintln(w, "\nSimulation complete!")
	return nil
}
