package domain

import (
	"fmt"
	"strconv"
)

type Side int

const (
	SideBuy Side = iota
	SideSell
)

func (s Side) String() string {
	if s == SideBuy {
		return "buy"
	}
	return "sell"
}

// RateQuote is the buy/sell pair for one dollar type. A nil side means the
// price could not be read from the page.
type RateQuote struct {
	Name DollarType `json:"name"`
	Buy  *float64   `json:"buy"`
	Sell *float64   `json:"sell"`
}

// NewRateQuote copies buy and sell so the quote never aliases caller memory.
func NewRateQuote(name DollarType, buy, sell *float64) RateQuote {
	return RateQuote{Name: name, Buy: copyPrice(buy), Sell: copyPrice(sell)}
}

func (q RateQuote) HasData() bool { return q.Buy != nil || q.Sell != nil }

func (q RateQuote) String() string {
	return fmt.Sprintf("%s - Buy: %s, Sell: %s", q.Name.Title(), priceString(q.Buy), priceString(q.Sell))
}

// Rates holds one fetch cycle's quotes keyed by type.
type Rates map[DollarType]RateQuote

// Ordered returns the known quotes in display order.
func (r Rates) Ordered() []RateQuote {
	out := make([]RateQuote, 0, len(r))
	for _, t := range AllDollarTypes() {
		if q, ok := r[t]; ok {
			out = append(out, q)
		}
	}
	return out
}

func copyPrice(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func priceString(p *float64) string {
	if p == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}
