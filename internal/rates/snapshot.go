// Package rates implements the in-memory exchange-rate cache and the HTTP
// provider clients that populate it.
package rates

import "time"

// BaseCurrency is the currency all fiat rates are quoted against.
const BaseCurrency = "EUR"

// Snapshot is one immutable set of exchange rates. A snapshot is built fully
// off to the side by the Fetcher and published wholesale; it must never be
// mutated after Store.Replace.
type Snapshot struct {
	// FetchedAt is when both tables were fetched.
	FetchedAt time.Time
	// Fiat maps a 3-letter currency code to its rate relative to
	// BaseCurrency. Every published snapshot contains BaseCurrency at 1.0.
	Fiat map[string]float64
	// Crypto maps a pair key such as "BTCUSD" to the day-average price of
	// one unit of the crypto asset in the quote currency.
	Crypto map[string]float64
}
