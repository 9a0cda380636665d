package rates

import (
	"context"
	"errors"
)

// Sentinel errors for provider failures. Callers dispatch on these with
// errors.Is; the wrapped detail carries the underlying cause for logging.
var (
	// ErrNetwork covers transport failures and non-2xx responses.
	ErrNetwork = errors.New("exchange rate provider unreachable")
	// ErrProviderRejected means the keyed provider returned an explicit
	// failure payload (bad key, plan limit, etc).
	ErrProviderRejected = errors.New("exchange rate provider rejected the request")
	// ErrMalformedData means the response body did not have the expected shape.
	ErrMalformedData = errors.New("malformed exchange rate data")
)

// FiatProvider fetches a full fiat rate table quoted against BaseCurrency.
type FiatProvider interface {
	FetchRates(ctx context.Context) (map[string]float64, error)
}

// CryptoProvider fetches day-average crypto prices keyed by pair, e.g. "BTCUSD".
type CryptoProvider interface {
	FetchRates(ctx context.Context) (map[string]float64, error)
}
