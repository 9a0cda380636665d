package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"currencybot/internal/bot"
	"currencybot/internal/rates"
)

// MessageRequest is an incoming chat message from the host platform.
type MessageRequest struct {
	Text string `json:"text"`
}

// MessageResponse carries the bot's reply. Handled is false when the message
// triggered neither a command nor the passive rule; Reply is empty then.
type MessageResponse struct {
	Handled bool   `json:"handled"`
	Reply   string `json:"reply,omitempty"`
}

// StatusResponse describes the rate cache.
type StatusResponse struct {
	Fresh       bool   `json:"fresh"`
	FetchedAt   string `json:"fetched_at,omitempty"`
	FiatCodes   int    `json:"fiat_codes"`
	CryptoPairs int    `json:"crypto_pairs"`
}

// HandleMessage feeds one chat message through the dispatcher and returns the
// reply, if any.
func HandleMessage(dispatcher *bot.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "text is required"})
			return
		}

		reply, handled := dispatcher.HandleMessage(r.Context(), req.Text)
		writeJSON(w, http.StatusOK, MessageResponse{Handled: handled, Reply: reply})
	}
}

// HandleRatesStatus reports the age and size of the cached rate snapshot.
func HandleRatesStatus(store *rates.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := StatusResponse{Fresh: store.IsFresh()}
		if snap := store.Current(); snap != nil {
			resp.FetchedAt = snap.FetchedAt.Format(time.RFC3339)
			resp.FiatCodes = len(snap.Fiat)
			resp.CryptoPairs = len(snap.Crypto)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleHealthz always returns 200 OK while the process is running.
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	}
}

// HandleReadyz reports readiness. The bot has no external dependencies at
// startup (rates are fetched lazily), so ready follows liveness.
func HandleReadyz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
