package domain

import "strings"

// Price is the subscription price shown to a visitor of a given region.
type Price struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

func (p Price) String() string {
	return p.Amount
}

// defaultPrice is used for unknown or missing region codes.
var defaultPrice = Price{Currency: "USD", Amount: "$4.99/month"}

// regionPrices maps ISO-3166 alpha-2 country codes to localized prices.
// Anything not listed here falls back to defaultPrice.
var regionPrices = map[string]Price{
	"BR": {Currency: "BRL", Amount: "R$ 24,90/mês"},
}

// PriceForRegion returns the subscription price for a country code. The
// lookup is case-insensitive; empty or unknown codes get the default price.
func PriceForRegion(country string) Price {
	if price, ok := regionPrices[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return price
	}
	return defaultPrice
}
