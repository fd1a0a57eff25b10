package domain_test

import (
	"testing"

	"dolarito-rates/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestParseDollarType_Aliases(t *testing.T) {
	cases := map[string]domain.DollarType{
		"oficial":  domain.Oficial,
		"Official": domain.Oficial,
		"blue":     domain.Blue,
		"informal": domain.Blue,
		" BLUE ":   domain.Blue,
		"mep":      domain.MEP,
		"MEP":      domain.MEP,
	}
	for in, want := range cases {
		got, err := domain.ParseDollarType(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, want, got)
	}
}

func TestParseDollarType_Unknown(t *testing.T) {
	_, err := domain.ParseDollarType("cripto")
	require.ErrorIs(t, err, domain.ErrUnsupportedType)
	require.Contains(t, err.Error(), "cripto")
}

func TestDollarType_ContainerIDs(t *testing.T) {
	require.Equal(t, []string{"quotation-oficial-desktop"}, domain.Oficial.ContainerIDs())
	require.Equal(t, []string{"quotation-informal-desktop", "quotation-blue-desktop"}, domain.Blue.ContainerIDs())
	require.Equal(t, []string{"quotation-mep-desktop"}, domain.MEP.ContainerIDs())
	require.Equal(t, []string{"quotation-tarjeta-desktop"}, domain.DollarType("tarjeta").ContainerIDs())

	ids := domain.Blue.ContainerIDs()
	ids[0] = "mutated"
	require.Equal(t, "quotation-informal-desktop", domain.Blue.ContainerIDs()[0])
}

func TestRateQuote_String(t *testing.T) {
	buy, sell := 100.0, 105.0
	require.Equal(t, "Oficial - Buy: 100.00, Sell: 105.00", domain.NewRateQuote(domain.Oficial, &buy, &sell).String())
	require.Equal(t, "MEP - Buy: n/a, Sell: 105.00", domain.NewRateQuote(domain.MEP, nil, &sell).String())
}

func TestNewRateQuote_CopiesPrices(t *testing.T) {
	buy := 1140.0
	q := domain.NewRateQuote(domain.Oficial, &buy, nil)
	buy = 1
	require.Equal(t, 1140.0, *q.Buy)
	require.Nil(t, q.Sell)
	require.True(t, q.HasData())
	require.False(t, domain.RateQuote{Name: domain.MEP}.HasData())
}

func TestRates_Ordered(t *testing.T) {
	rates := domain.Rates{
		domain.MEP:     {Name: domain.MEP},
		domain.Oficial: {Name: domain.Oficial},
		domain.Blue:    {Name: domain.Blue},
	}
	got := rates.Ordered()
	require.Len(t, got, 3)
	require.Equal(t, domain.Oficial, got[0].Name)
	require.Equal(t, domain.Blue, got[1].Name)
	require.Equal(t, domain.MEP, got[2].Name)
}
