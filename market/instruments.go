package market

import (
	"fmt"
	"strings"
)

type InstrumentMeta struct {
	Name          string
	BaseCurrency  string
	QuoteCurrency string
	PipLocation   int
}

// Instruments maps canonical feed codes to metadata. The feed addresses
// pairs by concatenated codes (EURUSD), not the broker-style EUR_USD.
var Instruments = map[string]InstrumentMeta{
	"EURUSD": {Name: "EURUSD", BaseCurrency: "EUR", QuoteCurrency: "USD", PipLocation: -4},
	"GBPUSD": {Name: "GBPUSD", BaseCurrency: "GBP", QuoteCurrency: "USD", PipLocation: -4},
	"USDJPY": {Name: "USDJPY", BaseCurrency: "USD", QuoteCurrency: "JPY", PipLocation: -2},
	"USDCHF": {Name: "USDCHF", BaseCurrency: "USD", QuoteCurrency: "CHF", PipLocation: -4},
	"AUDUSD": {Name: "AUDUSD", BaseCurrency: "AUD", QuoteCurrency: "USD", PipLocation: -4},
	"USDCAD": {Name: "USDCAD", BaseCurrency: "USD", QuoteCurrency: "CAD", PipLocation: -4},
	"NZDUSD": {Name: "NZDUSD", BaseCurrency: "NZD", QuoteCurrency: "USD", PipLocation: -4},
	"EURGBP": {Name: "EURGBP", BaseCurrency: "EUR", QuoteCurrency: "GBP", PipLocation: -4},
	"EURJPY": {Name: "EURJPY", BaseCurrency: "EUR", QuoteCurrency: "JPY", PipLocation: -2},
	"GBPJPY": {Name: "GBPJPY", BaseCurrency: "GBP", QuoteCurrency: "JPY", PipLocation: -2},
	"XAUUSD": {Name: "XAUUSD", BaseCurrency: "XAU", QuoteCurrency: "USD", PipLocation: -2},
}

// ValidatePair normalizes a user-supplied pair ("eur/usd", "EUR_USD",
// "eurusd") to its canonical feed code. Unknown pairs are rejected.
func ValidatePair(pair string) (string, error) {
	canon := strings.ToUpper(strings.TrimSpace(pair))
	canon = strings.NewReplacer("/", "", "_", "", "-", "").Replace(canon)
	if canon == "" {
		return "", fmt.Errorf("empty currency pair")
	}
	if _, ok := Instruments[canon]; !ok {
		return "", fmt.Errorf("unknown currency pair %q", pair)
	}
	return canon, nil
}
