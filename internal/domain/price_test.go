package domain_test

import (
	"strings"
	"testing"
	"time"

	"dolarito-rates/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestParseARS(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.140", 1140},
		{"350,50", 350.50},
		{"$1.140", 1140},
		{"$ 1.225,50", 1225.50},
		{"  $1.198,73\n", 1198.73},
		{"$1.234.567,89", 1234567.89},
		{"-$12,50", -12.50},
		{"0,01", 0.01},
	}
	for _, c := range cases {
		got, ok := domain.ParseARS(c.in)
		require.True(t, ok, "input %q", c.in)
		require.InDelta(t, c.want, got, 1e-9, "input %q", c.in)
	}
}

func TestParseARS_Invalid(t *testing.T) {
	for _, in := range []string{"", "$", " $ ", "invalid", "12a", "NaN", "Inf", "1,2,3", "--5", "1e400", "-1e400", "1E5", "1e99999999", "0x1F", "+5"} {
		_, ok := domain.ParseARS(in)
		require.False(t, ok, "input %q", in)
	}
}

func TestParseARS_ExponentRejectedQuickly(t *testing.T) {
	done := make(chan bool, 1)
	go func() {
		_, ok := domain.ParseARS("$1e99999999")
		done <- ok
	}()
	select {
	case ok := <-done:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("ParseARS did not return within 1s")
	}
}

func TestParseARS_Overflow(t *testing.T) {
	_, ok := domain.ParseARS(strings.Repeat("9", 400))
	require.False(t, ok)
}

func TestFormatARS(t *testing.T) {
	require.Equal(t, "$1.140,00", domain.FormatARS(1140))
	require.Equal(t, "$350,50", domain.FormatARS(350.5))
	require.Equal(t, "$0,00", domain.FormatARS(0))
	require.Equal(t, "$1.234.567,89", domain.FormatARS(1234567.89))
	require.Equal(t, "$999,99", domain.FormatARS(999.99))
	require.Equal(t, "-$12,50", domain.FormatARS(-12.5))
}

func TestFormatParse_RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.01, 1, 99.9, 350.5, 1140, 1190.25, 1225.5, 100000, 1234567.89, -42.42} {
		got, ok := domain.ParseARS(domain.FormatARS(v))
		require.True(t, ok)
		require.Equal(t, v, got)
	}
}
