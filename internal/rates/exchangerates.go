package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

var _ FiatProvider = (*ExchangeRatesProvider)(nil)

// ExchangeRatesProvider fetches fiat rates from the free exchangeratesapi.io
// endpoint. No API key is required.
type ExchangeRatesProvider struct {
	baseURL string
	client  *http.Client
}

// NewExchangeRatesProvider creates a new ExchangeRatesProvider.
func NewExchangeRatesProvider(baseURL string, timeoutSec int) *ExchangeRatesProvider {
	if baseURL == "" {
		baseURL = "https://api.exchangeratesapi.io"
	}
	return &ExchangeRatesProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

type exchangeRatesResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// FetchRates retrieves the latest rate table quoted against BaseCurrency.
func (p *ExchangeRatesProvider) FetchRates(ctx context.Context) (map[string]float64, error) {
	reqURL := fmt.Sprintf("%s/latest?base=%s", p.baseURL, BaseCurrency)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrNetwork, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: exchangeratesapi returned status %d: %s", ErrNetwork, resp.StatusCode, string(body))
	}

	var result exchangeRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decoding exchangeratesapi response: %v", ErrMalformedData, err)
	}
	if len(result.Rates) == 0 {
		return nil, fmt.Errorf("%w: no rates in exchangeratesapi response", ErrMalformedData)
	}

	return result.Rates, nil
}
