package application

import (
	"context"

	"dolarito-rates/internal/domain"
)

type fakeRateProvider struct {
	rates domain.Rates
	err   error
	calls int
}

func (f *fakeRateProvider) Rates(_ context.Context) (domain.Rates, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rates, nil
}

func ptr(v float64) *float64 { return &v }
