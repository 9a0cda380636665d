// Package bot wires the conversion engine into the chat command surface.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"currencybot/internal/convert"
	"currencybot/internal/rates"
)

// User-facing replies. Every trigger produces exactly one of these or a
// formatted conversion; errors never propagate past the command boundary.
const (
	msgBadInput      = "Sorry, I didn't understand the input."
	msgAmountRange   = "Sorry, input amount was out of range."
	msgNetwork       = "Something went wrong while I was getting the exchange rate."
	msgProviderError = "Sorry, something went wrong"
	msgMalformedData = "Error: Got malformed data."
	msgNoSearchTerm  = "No search term. An example: .cur 100 usd in btc cad eur"
	msgZeroAmount    = "Zero is zero, no matter what country you're in."
)

func msgUnsupported(code string) string {
	return fmt.Sprintf("Sorry, %s isn't currently supported", code)
}

// CurrencyCommand handles one conversion query end to end: parse, refresh the
// rate cache if stale, convert per target, format the reply.
type CurrencyCommand struct {
	store   *rates.Store
	fetcher *rates.Fetcher
	log     *zap.SugaredLogger
}

// NewCurrencyCommand creates a new CurrencyCommand.
func NewCurrencyCommand(store *rates.Store, fetcher *rates.Fetcher, logger *zap.SugaredLogger) *CurrencyCommand {
	return &CurrencyCommand{
		store:   store,
		fetcher: fetcher,
		log:     logger,
	}
}

// Aliases returns the command names this handler answers to.
func (c *CurrencyCommand) Aliases() []string {
	return []string{"cur", "currency", "exchange"}
}

// Execute runs a conversion query and always returns exactly one reply.
func (c *CurrencyCommand) Execute(ctx context.Context, arg string) string {
	if strings.TrimSpace(arg) == "" {
		return msgNoSearchTerm
	}

	query, err := convert.ParseQuery(arg)
	if err != nil {
		if errors.Is(err, convert.ErrAmountRange) {
			return msgAmountRange
		}
		return msgBadInput
	}
	if query.Amount == 0 {
		return msgZeroAmount
	}

	if err := c.fetcher.RefreshIfStale(ctx); err != nil {
		return c.refreshReply(err)
	}

	snap := c.store.Current()
	results := make([]convert.Result, 0, len(query.Targets))
	for _, target := range query.Targets {
		rate, err := convert.Rate(snap, query.Source, target)
		if err != nil {
			var unsupported *convert.UnsupportedCurrencyError
			if errors.As(err, &unsupported) {
				// The first unsupported code becomes the whole reply;
				// remaining targets are never computed.
				return msgUnsupported(unsupported.Code)
			}
			c.log.Errorw("Rate lookup failed", "source", query.Source, "target", target, "error", err)
			return msgNetwork
		}
		results = append(results, convert.Result{Code: target, Value: rate * query.Amount})
	}

	return convert.FormatReply(query.Amount, query.Source, results)
}

func (c *CurrencyCommand) refreshReply(err error) string {
	switch {
	case errors.Is(err, rates.ErrProviderRejected):
		c.log.Errorw("Fiat provider rejected the request", "error", err)
		return msgProviderError
	case errors.Is(err, rates.ErrMalformedData):
		c.log.Errorw("Provider returned malformed data", "error", err)
		return msgMalformedData
	default:
		c.log.Errorw("Exchange rate refresh failed", "error", err)
		return msgNetwork
	}
}
