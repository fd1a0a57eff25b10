package provider

import (
	"context"

	"dolarito-rates/internal/application"
	"dolarito-rates/internal/domain"
)

// Ensure Fake implements application.RateProvider.
var _ application.RateProvider = (*Fake)(nil)

// Fake serves a fixed set of quotes without touching the network.
type Fake struct {
	rates domain.Rates
}

func NewFake() *Fake {
	return &Fake{rates: domain.Rates{
		domain.Oficial: domain.NewRateQuote(domain.Oficial, price(1140), price(1190)),
		domain.Blue:    domain.NewRateQuote(domain.Blue, price(1225.5), price(1245.5)),
		domain.MEP:     domain.NewRateQuote(domain.MEP, nil, price(1198.73)),
	}}
}

func (f *Fake) Rates(_ context.Context) (domain.Rates, error) {
	out := make(domain.Rates, len(f.rates))
	for t, q := range f.rates {
		out[t] = domain.NewRateQuote(q.Name, q.Buy, q.Sell)
	}
	return out, nil
}

func price(v float64) *float64 { return &v }
