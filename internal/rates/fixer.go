package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

var _ FiatProvider = (*FixerProvider)(nil)

// FixerProvider fetches fiat rates from the keyed fixer.io API. The free plan
// only supports EUR as the base currency, which matches BaseCurrency.
type FixerProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewFixerProvider creates a new FixerProvider with the given API key.
func NewFixerProvider(baseURL, apiKey string, timeoutSec int) *FixerProvider {
	if baseURL == "" {
		baseURL = "http://data.fixer.io/api"
	}
	return &FixerProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

type fixerResponse struct {
	Success bool               `json:"success"`
	Error   json.RawMessage    `json:"error"`
	Base    string             `json:"base"`
	Rates   map[string]float64 `json:"rates"`
}

// FetchRates retrieves the latest rate table. An explicit success=false
// payload maps to ErrProviderRejected with the provider's error detail.
func (p *FixerProvider) FetchRates(ctx context.Context) (map[string]float64, error) {
	reqURL := fmt.Sprintf("%s/latest?base=%s&access_key=%s", p.baseURL, BaseCurrency, p.apiKey)
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
		return nil, fmt.Errorf("%w: fixer returned status %d: %s", ErrNetwork, resp.StatusCode, string(body))
	}

	var result fixerResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decoding fixer response: %v", ErrMalformedData, err)
	}
	if !result.Success {
		return nil, fmt.Errorf("%w: %s", ErrProviderRejected, string(result.Error))
	}
	if len(result.Rates) == 0 {
		return nil, fmt.Errorf("%w: no rates in fixer response", ErrMalformedData)
	}

	return result.Rates, nil
}
