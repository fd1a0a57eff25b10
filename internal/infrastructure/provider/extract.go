package provider

import (
	"strings"

	"dolarito-rates/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Structural markers emitted by the page's CSS-in-JS build. They change
// whenever the site is redeployed with new styles.
const (
	buyContainerSelector  = "div.css-4ywm3s"
	buyPriceSelector      = "p.css-113t1jt"
	sellContainerSelector = "div.css-6g5h8t"
	sellPriceSelector     = "p.css-12u0t8b"
)

func selectorsFor(side domain.Side) (container, price string) {
	if side == domain.SideBuy {
		return buyContainerSelector, buyPriceSelector
	}
	return sellContainerSelector, sellPriceSelector
}

// ParsePrice reads one side's price from a quotation container. Any missing
// element or unreadable number yields nil.
func ParsePrice(container *goquery.Selection, side domain.Side, log *zap.Logger) *float64 {
	if log == nil {
		log = zap.NewNop()
	}
	divSel, pSel := selectorsFor(side)

	div := container.Find(divSel).First()
	if div.Length() == 0 {
		log.Warn("extract.price_container_missing", zap.Stringer("side", side), zap.String("selector", divSel))
		return nil
	}
	p := div.Find(pSel).First()
	if p.Length() == 0 {
		log.Warn("extract.price_element_missing", zap.Stringer("side", side), zap.String("selector", pSel))
		return nil
	}

	text := strings.TrimSpace(p.Text())
	v, ok := domain.ParseARS(text)
	if !ok {
		log.Warn("extract.price_invalid", zap.Stringer("side", side), zap.String("text", text))
		return nil
	}
	return &v
}

// findContainer returns the first li whose id matches one of ids, in order.
func findContainer(doc *goquery.Document, ids []string) (*goquery.Selection, string) {
	items := doc.Find("li")
	for _, id := range ids {
		sel := items.FilterFunction(func(_ int, s *goquery.Selection) bool {
			v, ok := s.Attr("id")
			return ok && v == id
		}).First()
		if sel.Length() > 0 {
			return sel, id
		}
	}
	return nil, ""
}

// ExtractRate builds the quote for t. A type that is not on the page comes
// back with both sides nil.
func ExtractRate(doc *goquery.Document, t domain.DollarType, log *zap.Logger) domain.RateQuote {
	if log == nil {
		log = zap.NewNop()
	}
	ids := t.ContainerIDs()
	container, id := findContainer(doc, ids)
	if container == nil {
		log.Warn("extract.container_missing", zap.String("type", string(t)), zap.Strings("ids", ids))
		return domain.RateQuote{Name: t}
	}

	log = log.With(zap.String("type", string(t)), zap.String("container", id))
	buy := ParsePrice(container, domain.SideBuy, log)
	sell := ParsePrice(container, domain.SideSell, log)
	return domain.NewRateQuote(t, buy, sell)
}

// ExtractAll runs ExtractRate for every known type.
func ExtractAll(doc *goquery.Document, log *zap.Logger) domain.Rates {
	out := make(domain.Rates, len(domain.AllDollarTypes()))
	for _, t := range domain.AllDollarTypes() {
		out[t] = ExtractRate(doc, t, log)
	}
	return out
}
