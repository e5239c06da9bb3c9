package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/icodeforyou/tibberprice/chart"
	"github.com/icodeforyou/tibberprice/config"
	"github.com/icodeforyou/tibberprice/hours"
	"github.com/icodeforyou/tibberprice/logging"
	"github.com/icodeforyou/tibberprice/report"
	"github.com/icodeforyou/tibberprice/tibber"
	"github.com/icodeforyou/tibberprice/types"
	"github.com/urfave/cli/v2"
)

var Version = "?.?.?"

func main() {
	defer func() {
		if err := recover(); err != nil {
			exitWithError(slog.Default(), fmt.Errorf("application panicked: %v", err))
		}
	}()

	slog.SetDefault(logging.NewConsoleLogger(os.Stderr, slog.LevelInfo))

	if err := newApp().Run(os.Args); err != nil {
		exitWithError(slog.Default(), err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "tibberprice",
		Usage:   "Show current, today's and tomorrow's electricity prices from Tibber",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "today",
				Aliases: []string{"t"},
				Usage:   "Show today's prices (default unless --tomorrow is given)",
			},
			&cli.BoolFlag{
				Name:    "tomorrow",
				Aliases: []string{"T"},
				Usage:   "Show tomorrow's prices, published around 13:00 CET",
			},
			&cli.BoolFlag{
				Name:    "plot",
				Aliases: []string{"p"},
				Usage:   "Draw a chart instead of listing the prices",
			},
			&cli.BoolFlag{
				Name:    "summary",
				Aliases: []string{"s"},
				Usage:   "Print lowest, highest and average price per day",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file, default: config/config.yaml if present",
				EnvVars: []string{"TIBBERPRICE_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Console log level (debug, info, warn, error), overrides logging.console_level",
			},
		},
		Action: pricesAction,
		Commands: []*cli.Command{
			{
				Name:   "whoami",
				Usage:  "Show the name of the account the api token belongs to",
				Action: whoamiAction,
			},
		},
	}
}

type app struct {
	cnfg   *config.AppConfig
	logger *slog.Logger
	tibber *tibber.Tibber
}

// setup loads and validates config, nothing is sent to tibber if it fails.
func setup(c *cli.Context) (*app, error) {
	cnfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cnfg.Logging.GetConsoleLevel()
	if c.IsSet("log-level") {
		lvl := c.String("log-level")
		level = logging.LevelFromString(&lvl)
	}
	logger := logging.NewConsoleLogger(c.App.ErrWriter, level)
	slog.SetDefault(logger)

	if err := cnfg.Validate(); err != nil {
		return nil, err
	}

	if err := hours.SetTimezone(cnfg.Gui.GetTimezone()); err != nil {
		return nil, err
	}

	client := tibber.New(cnfg.Tibber.ApiToken,
		tibber.WithEndpoint(cnfg.Tibber.GetEndpoint()),
		tibber.WithTimeout(cnfg.Tibber.GetTimeout()),
		tibber.WithLogger(logger.With(slog.String("module", "tibber"))))

	return &app{cnfg: cnfg, logger: logger, tibber: client}, nil
}

func pricesAction(c *cli.Context) error {
	a, err := setup(c)
	if err != nil {
		return err
	}

	opts := report.Options{
		Today:    c.Bool("today"),
		Tomorrow: c.Bool("tomorrow"),
		Plot:     c.Bool("plot"),
		Summary:  c.Bool("summary"),
		Chart: chart.Options{
			Width:     a.cnfg.Chart.GetWidth(),
			Height:    a.cnfg.Chart.GetHeight(),
			Precision: a.cnfg.Chart.GetPrecision(),
		},
	}

	return runPrices(c.Context, a.logger, a.tibber, c.App.Writer, opts)
}

func runPrices(ctx context.Context, logger *slog.Logger, provider types.PriceInfoProvider, w io.Writer, opts report.Options) error {
	res, err := provider.GetPriceInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch prices: %w", err)
	}
	if !res.IsValid() {
		logger.Info("no price data, nothing to show")
		return nil
	}

	report.Print(w, res.Value(), opts)
	return nil
}

func whoamiAction(c *cli.Context) error {
	a, err := setup(c)
	if err != nil {
		return err
	}

	res, err := a.tibber.GetViewerName(c.Context)
	if err != nil {
		return fmt.Errorf("failed to fetch viewer: %w", err)
	}
	if res.IsValid() {
		fmt.Fprintf(c.App.Writer, "Logged in as %s\n", res.Value())
	}
	return nil
}

func exitWithError(logger *slog.Logger, err error) {
	if err != nil {
		logger.Error("tibberprice failed", slog.Any("error", err))
	}
	os.Exit(1)
}
