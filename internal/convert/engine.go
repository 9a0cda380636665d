// Package convert implements conversion-rate lookup, query parsing, and
// reply formatting for the currency command.
package convert

import (
	"fmt"
	"strings"

	"currencybot/internal/rates"
)

// UnsupportedCurrencyError reports a code missing from the rate tables.
// Unknown codes are a lookup-time result, not a parse-time rejection.
type UnsupportedCurrencyError struct {
	Code string
}

func (e *UnsupportedCurrencyError) Error() string {
	return fmt.Sprintf("currency %s is not supported", e.Code)
}

// Rate returns the multiplicative rate from one currency to another using the
// given snapshot. Codes are upper-cased; no other normalization is applied.
func Rate(snap *rates.Snapshot, of, to string) (float64, error) {
	of = strings.ToUpper(of)
	to = strings.ToUpper(to)

	if of == rates.CryptoAsset || to == rates.CryptoAsset {
		return cryptoRate(snap, of, to)
	}

	rateOf, ok := snap.Fiat[of]
	if !ok {
		return 0, &UnsupportedCurrencyError{Code: of}
	}
	rateTo, ok := snap.Fiat[to]
	if !ok {
		return 0, &UnsupportedCurrencyError{Code: to}
	}

	// Both rates are quoted against the base currency, so convert through it.
	return (1 / rateOf) * rateTo, nil
}

// cryptoRate resolves pairs involving the crypto asset. The ticker table is
// keyed "BTC<code>" and holds the day-average price of one BTC in <code>
// units, so converting into BTC takes the reciprocal.
func cryptoRate(snap *rates.Snapshot, of, to string) (float64, error) {
	other := to
	if to == rates.CryptoAsset {
		other = of
	}

	avg, ok := snap.Crypto[rates.CryptoAsset+other]
	if !ok {
		return 0, &UnsupportedCurrencyError{Code: other}
	}

	if of == rates.CryptoAsset {
		return avg, nil
	}
	return 1 / avg, nil
}
