package bootstrap

import (
	"fmt"
	"net/http"

	"dolarito-rates/internal/application"
	"dolarito-rates/internal/config"
	httpserver "dolarito-rates/internal/infrastructure/http"
	"dolarito-rates/internal/infrastructure/logx"
	"dolarito-rates/internal/infrastructure/provider"

	"go.uber.org/zap"
)

func ProvideConfig(path string) (config.Config, error) { return config.Load(path) }

// ProvideLogger installs the configured logger as the package-level one.
func ProvideLogger(cfg config.Config) (*zap.Logger, func(), error) {
	return logx.Init(cfg)
}

func ProvideRateProvider(cfg config.Config, log *zap.Logger) (application.RateProvider, error) {
	switch cfg.Provider {
	case "dolarito":
		return provider.NewDolarito(log), nil
	case "fake":
		return provider.NewFake(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

func ProvideRatesService(rp application.RateProvider, log *zap.Logger) *application.RatesService {
	return application.NewRatesService(rp, application.WithLogger(log))
}

// App bundles what the binaries need after startup.
type App struct {
	Config  config.Config
	Log     *zap.Logger
	Service *application.RatesService
}

// Build wires config, logger, provider and service. The returned cleanup
// flushes the logger and is safe to call on error.
func Build(configPath string) (*App, func(), error) {
	cfg, err := ProvideConfig(configPath)
	if err != nil {
		return nil, func() {}, fmt.Errorf("config: %w", err)
	}
	log, cleanup, err := ProvideLogger(cfg)
	if err != nil {
		return nil, cleanup, fmt.Errorf("logger: %w", err)
	}
	rp, err := ProvideRateProvider(cfg, log)
	if err != nil {
		return nil, cleanup, err
	}
	return &App{Config: cfg, Log: log, Service: ProvideRatesService(rp, log)}, cleanup, nil
}

// Handler returns the HTTP router serving the app's quotes.
func (a *App) Handler() http.Handler {
	return httpserver.NewRouter(httpserver.NewServer(a.Service))
}
