package rates

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

var _ CryptoProvider = (*BitcoinAverageProvider)(nil)

// CryptoAsset is the symbol of the single supported crypto currency.
const CryptoAsset = "BTC"

// BitcoinAverageProvider fetches BTC day-average prices from the
// bitcoinaverage global ticker. No authentication is required.
type BitcoinAverageProvider struct {
	baseURL string
	client  *http.Client
}

// NewBitcoinAverageProvider creates a new BitcoinAverageProvider.
func NewBitcoinAverageProvider(baseURL string, timeoutSec int) *BitcoinAverageProvider {
	if baseURL == "" {
		baseURL = "https://apiv2.bitcoinaverage.com"
	}
	return &BitcoinAverageProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

// FetchRates retrieves the ticker and flattens it into a pair table. The
// ticker is keyed by dynamic pair symbols ("BTCUSD", "BTCEUR", ...) so it is
// walked with gjson instead of a fixed struct; any entry without a day
// average fails the whole fetch closed.
func (p *BitcoinAverageProvider) FetchRates(ctx context.Context) (map[string]float64, error) {
	reqURL := fmt.Sprintf("%s/indices/global/ticker/short?crypto=%s", p.baseURL, CryptoAsset)
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
		return nil, fmt.Errorf("%w: bitcoinaverage returned status %d: %s", ErrNetwork, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading bitcoinaverage response: %v", ErrNetwork, err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: bitcoinaverage response is not valid JSON", ErrMalformedData)
	}

	ticker := gjson.ParseBytes(body)
	if !ticker.IsObject() {
		return nil, fmt.Errorf("%w: bitcoinaverage response is not an object", ErrMalformedData)
	}

	table := make(map[string]float64)
	badPair := ""
	ticker.ForEach(func(pair, entry gjson.Result) bool {
		day := entry.Get("averages.day")
		if day.Type != gjson.Number {
			badPair = pair.String()
			return false
		}
		table[pair.String()] = day.Float()
		return true
	})
	if badPair != "" {
		return nil, fmt.Errorf("%w: no day average for %s", ErrMalformedData, badPair)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: empty bitcoinaverage ticker", ErrMalformedData)
	}

	return table, nil
}
