package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"dolarito-rates/internal/bootstrap"
	"dolarito-rates/internal/domain"
	"dolarito-rates/internal/infrastructure/console"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	format := flag.String("format", "table", "output format: table or json")
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*format, *configPath, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(format, configPath string, out io.Writer) error {
	render, err := renderer(format)
	if err != nil {
		return err
	}

	app, cleanup, err := bootstrap.Build(configPath)
	defer cleanup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rates, err := app.Service.GetRates(ctx)
	if err != nil {
		return err
	}
	app.Log.Info("rates fetched", zap.Int("count", len(rates)))
	return render(out, rates)
}

func renderer(format string) (func(io.Writer, domain.Rates) error, error) {
	switch format {
	case "table":
		return console.RenderTable, nil
	case "json":
		return console.RenderJSON, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
