package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/together/internal/cli"
	"github.com/idilsaglam/together/internal/config"
	"github.com/idilsaglam/together/internal/logging"
	"github.com/idilsaglam/together/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	asJSON := flag.Bool("json", false, "JSON output for list views")
	theme := flag.String("theme", "", "color theme: classic, neon or mono")
	debug := flag.Bool("debug", false, "log stubbed backend calls")
	cfgPath := flag.String("config", "", "path to config.toml")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(1)
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(2)
	}

	ui.SetTheme(cfg.Theme)
	if cfg.NoColor {
		ui.SetColorForcing(false, true)
	}
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(1)
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		JSON:   *asJSON,
		Config: cfg,
		Logger: logger,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
