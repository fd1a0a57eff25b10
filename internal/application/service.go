package application

import (
	"context"
	"errors"
	"fmt"

	"dolarito-rates/internal/domain"

	"go.uber.org/zap"
)

type RatesService struct {
	rateProvider RateProvider
	log          *zap.Logger
}

type Option func(*RatesService)

func WithLogger(l *zap.Logger) Option { return func(s *RatesService) { s.log = l } }

func NewRatesService(rateProvider RateProvider, opts ...Option) *RatesService {
	s := &RatesService{rateProvider: rateProvider}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// GetRates runs one fetch cycle and returns every quote found.
func (s *RatesService) GetRates(ctx context.Context) (domain.Rates, error) {
	rates, err := s.rateProvider.Rates(ctx)
	if err != nil {
		if !errors.Is(err, ErrFetch) {
			err = fmt.Errorf("%w: %w", ErrFetch, err)
		}
		s.log.Error("rates.fetch_failed", zap.Error(err))
		return nil, err
	}
	for _, t := range domain.AllDollarTypes() {
		if q, ok := rates[t]; !ok || !q.HasData() {
			s.log.Warn("rates.no_data", zap.String("type", string(t)))
		}
	}
	return rates, nil
}

// GetRate resolves name through the alias table before fetching, so unknown
// names never hit the network.
func (s *RatesService) GetRate(ctx context.Context, name string) (domain.RateQuote, error) {
	t, err := domain.ParseDollarType(name)
	if err != nil {
		return domain.RateQuote{}, err
	}
	rates, err := s.GetRates(ctx)
	if err != nil {
		return domain.RateQuote{}, err
	}
	q, ok := rates[t]
	if !ok {
		return domain.RateQuote{Name: t}, nil
	}
	return q, nil
}
