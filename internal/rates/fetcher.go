package rates

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Fetcher refreshes the store from the fiat and crypto providers. There is no
// scheduler: the freshness check is the rate limiter, and the first query
// after the TTL lapses pays the network latency.
type Fetcher struct {
	store  *Store
	fiat   FiatProvider
	crypto CryptoProvider
	log    *zap.SugaredLogger
}

// NewFetcher creates a new Fetcher around the given store and providers.
func NewFetcher(store *Store, fiat FiatProvider, crypto CryptoProvider, logger *zap.SugaredLogger) *Fetcher {
	return &Fetcher{
		store:  store,
		fiat:   fiat,
		crypto: crypto,
		log:    logger,
	}
}

// RefreshIfStale fetches both rate tables and publishes a combined snapshot.
// A fresh store is a no-op with zero network calls. The snapshot is committed
// only after both fetches succeed; on any failure the previous snapshot stays
// fully intact, so the store never holds mismatched-age halves.
func (f *Fetcher) RefreshIfStale(ctx context.Context) error {
	if f.store.IsFresh() {
		return nil
	}

	cryptoRates, err := f.crypto.FetchRates(ctx)
	if err != nil {
		return fmt.Errorf("crypto rates: %w", err)
	}

	fiatRates, err := f.fiat.FetchRates(ctx)
	if err != nil {
		return fmt.Errorf("fiat rates: %w", err)
	}

	// The base currency is absent from base-quoted responses; inject it so
	// lookups treat it like any other code.
	fiatRates[BaseCurrency] = 1.0

	f.store.Replace(&Snapshot{
		FetchedAt: time.Now().UTC(),
		Fiat:      fiatRates,
		Crypto:    cryptoRates,
	})
	f.log.Infow("Exchange rates refreshed",
		"fiat_codes", len(fiatRates),
		"crypto_pairs", len(cryptoRates),
	)
	return nil
}
