package application

import (
	"context"

	"dolarito-rates/internal/domain"
)

// RateProvider runs one fetch cycle against a quote source.
type RateProvider interface {
	Rates(ctx context.Context) (domain.Rates, error)
}
