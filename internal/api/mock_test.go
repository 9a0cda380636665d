package api

import (
	"context"
	"time"

	"go.uber.org/zap"

	"currencybot/internal/bot"
	"currencybot/internal/rates"
)

type stubFiatProvider struct {
	rates map[string]float64
	err   error
}

func (s *stubFiatProvider) FetchRates(ctx context.Context) (map[string]float64, error) {
	return s.rates, s.err
}

type stubCryptoProvider struct {
	rates map[string]float64
	err   error
}

func (s *stubCryptoProvider) FetchRates(ctx context.Context) (map[string]float64, error) {
	return s.rates, s.err
}

func newTestDispatcher(autoConvert bool) (*bot.Dispatcher, *rates.Store) {
	store := rates.NewStore(24 * time.Hour)
	fetcher := rates.NewFetcher(
		store,
		&stubFiatProvider{rates: map[string]float64{"USD": 1.1, "CAD": 1.5}},
		&stubCryptoProvider{rates: map[string]float64{"BTCUSD": 40000.0}},
		zap.NewNop().Sugar(),
	)
	cmd := bot.NewCurrencyCommand(store, fetcher, zap.NewNop().Sugar())
	return bot.NewDispatcher(cmd, ".", autoConvert), store
}
