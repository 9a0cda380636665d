// Package main is the entry point for the currency conversion bot.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"currencybot/internal/bot"
	"currencybot/internal/config"
	"currencybot/internal/rates"
)

// App holds all application dependencies and manages their lifecycle.
type App struct {
	cfg        *config.Config
	logger     *zap.SugaredLogger
	store      *rates.Store
	dispatcher *bot.Dispatcher
	httpServer *http.Server
}

// NewApp wires the rate store, providers, and bot command into a
// ready-to-run App.
func NewApp(cfg *config.Config, logger *zap.SugaredLogger) *App {
	store := rates.NewStore(time.Duration(cfg.Cache.TTLHours) * time.Hour)
	fetcher := rates.NewFetcher(
		store,
		newFiatProvider(cfg, logger),
		rates.NewBitcoinAverageProvider(cfg.Crypto.BaseURL, cfg.Crypto.Timeout),
		logger,
	)
	command := bot.NewCurrencyCommand(store, fetcher, logger)

	app := &App{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		dispatcher: bot.NewDispatcher(command, cfg.Bot.CommandPrefix, cfg.Bot.AutoConvert),
	}
	app.initHTTP()
	return app
}

// newFiatProvider selects the keyed fixer.io provider when an API key is
// configured, otherwise the free endpoint.
func newFiatProvider(cfg *config.Config, logger *zap.SugaredLogger) rates.FiatProvider {
	if cfg.Fixer.APIKey != "" {
		logger.Infow("Using fixer.io for fiat rates")
		return rates.NewFixerProvider(cfg.Fixer.BaseURL, cfg.Fixer.APIKey, cfg.Fixer.Timeout)
	}
	logger.Infow("Using exchangeratesapi.io for fiat rates")
	return rates.NewExchangeRatesProvider(cfg.Fiat.BaseURL, cfg.Fiat.Timeout)
}

// Run starts the HTTP gateway, blocking until the context is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Infow("HTTP gateway listening", "port", app.cfg.Server.Port)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		return app.shutdown()
	})

	return g.Wait()
}

// shutdown drains in-flight requests before exiting.
func (app *App) shutdown() error {
	app.logger.Infow("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		app.logger.Errorw("HTTP server shutdown error", "error", err)
		return fmt.Errorf("http shutdown: %w", err)
	}

	app.logger.Infow("Shutdown complete")
	return nil
}
