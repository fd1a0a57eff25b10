package provider

import (
	"context"
	"fmt"

	"dolarito-rates/internal/application"
	"dolarito-rates/internal/domain"
	"dolarito-rates/internal/infrastructure/config"
	"dolarito-rates/internal/infrastructure/httpx"

	"go.uber.org/zap"
)

type DolaritoProvider struct {
	BaseURL string
	Client  *httpx.Client
	Log     *zap.Logger
}

var _ application.RateProvider = (*DolaritoProvider)(nil)

// NewDolarito returns a provider for the live page with the default client.
func NewDolarito(log *zap.Logger) *DolaritoProvider {
	return &DolaritoProvider{
		BaseURL: config.DefaultSourceURL,
		Client:  httpx.New(config.DefaultRequestTimeout),
		Log:     log,
	}
}

// Rates fetches the page once and extracts every known quote.
func (p *DolaritoProvider) Rates(ctx context.Context) (domain.Rates, error) {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	client := p.Client
	if client == nil {
		client = httpx.New(config.DefaultRequestTimeout)
	}
	url := p.BaseURL
	if url == "" {
		url = config.DefaultSourceURL
	}

	doc, err := client.GetHTML(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: dolarito: %w", application.ErrFetch, err)
	}
	rates := ExtractAll(doc, log)
	log.Debug("dolarito.fetched", zap.String("url", url), zap.Int("types", len(rates)))
	return rates, nil
}
