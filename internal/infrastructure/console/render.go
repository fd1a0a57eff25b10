package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"dolarito-rates/internal/domain"
)

const (
	tableWidth = 40
	tableTitle = "   COTIZACIONES DISPONIBLES   "
	noData     = "sin datos"
)

// RenderTable writes the quotes as the boxed terminal listing.
func RenderTable(w io.Writer, rates domain.Rates) error {
	rule := strings.Repeat("═", tableWidth)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(rule + "\n")
	b.WriteString(strings.TrimRight(center(tableTitle, tableWidth), " ") + "\n")
	b.WriteString(rule + "\n")
	for _, q := range rates.Ordered() {
		b.WriteString(quoteLine(q) + "\n")
	}
	b.WriteString(rule + "\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderJSON writes the quotes as a JSON array in display order.
func RenderJSON(w io.Writer, rates domain.Rates) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rates.Ordered())
}

func quoteLine(q domain.RateQuote) string {
	parts := []string{padRight(fmt.Sprintf("- %s:", strings.ToUpper(string(q.Name))), 12)}
	if !q.HasData() {
		parts = append(parts, noData)
		return strings.Join(parts, " ")
	}
	if q.Buy != nil {
		parts = append(parts, padRight("Compra: "+domain.FormatARS(*q.Buy), 15))
	}
	if q.Sell != nil {
		parts = append(parts, "Venta: "+domain.FormatARS(*q.Sell))
	}
	return strings.TrimRight(strings.Join(parts, " "), " ")
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
