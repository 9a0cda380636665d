package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"currencybot/internal/rates"
)

func TestHandleMessage(t *testing.T) {
	dispatcher, _ := newTestDispatcher(true)
	handler := HandleMessage(dispatcher)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/messages", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler(rec, req)
		return rec
	}

	t.Run("command message", func(t *testing.T) {
		rec := post(`{"text":".cur 100 usd in btc cad eur"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Handled)
		assert.Equal(t, "100.0 USD is 0.00250 BTC, 136.36 CAD, 90.91 EUR", resp.Reply)
	})

	t.Run("passive conversion", func(t *testing.T) {
		rec := post(`{"text":"1 usd in eur"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Handled)
		assert.Equal(t, "1.0 USD is 0.91 EUR", resp.Reply)
	})

	t.Run("unhandled chatter", func(t *testing.T) {
		rec := post(`{"text":"hello there"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Handled)
		assert.Empty(t, resp.Reply)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		rec := post(`{"text":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty text", func(t *testing.T) {
		rec := post(`{"text":"  "}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleRatesStatus(t *testing.T) {
	t.Run("empty cache", func(t *testing.T) {
		store := rates.NewStore(24 * time.Hour)
		rec := httptest.NewRecorder()
		HandleRatesStatus(store)(rec, httptest.NewRequest(http.MethodGet, "/v1/rates/status", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp StatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Fresh)
		assert.Empty(t, resp.FetchedAt)
	})

	t.Run("warm cache", func(t *testing.T) {
		store := rates.NewStore(24 * time.Hour)
		store.Replace(&rates.Snapshot{
			FetchedAt: time.Now().UTC(),
			Fiat:      map[string]float64{"EUR": 1.0, "USD": 1.1},
			Crypto:    map[string]float64{"BTCUSD": 40000.0},
		})

		rec := httptest.NewRecorder()
		HandleRatesStatus(store)(rec, httptest.NewRequest(http.MethodGet, "/v1/rates/status", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp StatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Fresh)
		assert.NotEmpty(t, resp.FetchedAt)
		assert.Equal(t, 2, resp.FiatCodes)
		assert.Equal(t, 1, resp.CryptoPairs)
	})
}

func TestHandleHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleHealthz()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
