package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixerProvider_FetchRates(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/latest", r.URL.Path)
			assert.Equal(t, "EUR", r.URL.Query().Get("base"))
			assert.Equal(t, "secret-key", r.URL.Query().Get("access_key"))
			_, _ = w.Write([]byte(`{"success":true,"base":"EUR","rates":{"USD":1.1,"GBP":0.9}}`))
		}))
		defer srv.Close()

		p := NewFixerProvider(srv.URL, "secret-key", 5)
		rates, err := p.FetchRates(context.Background())
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"USD": 1.1, "GBP": 0.9}, rates)
	})

	t.Run("explicit failure payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"error":{"code":101,"type":"invalid_access_key"}}`))
		}))
		defer srv.Close()

		p := NewFixerProvider(srv.URL, "bad-key", 5)
		_, err := p.FetchRates(context.Background())
		require.ErrorIs(t, err, ErrProviderRejected)
		// The provider's error detail must survive for logging.
		assert.Contains(t, err.Error(), "invalid_access_key")
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		p := NewFixerProvider(srv.URL, "secret-key", 5)
		_, err := p.FetchRates(context.Background())
		require.ErrorIs(t, err, ErrNetwork)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":`))
		}))
		defer srv.Close()

		p := NewFixerProvider(srv.URL, "secret-key", 5)
		_, err := p.FetchRates(context.Background())
		require.ErrorIs(t, err, ErrMalformedData)
	})
}
