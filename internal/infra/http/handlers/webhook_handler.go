package handlers

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/xavierca1/growthx-admin/internal/infra/http/middleware"
	"github.com/xavierca1/growthx-admin/internal/usecase"
)

const maxWebhookBody = 1 << 20 // 1 MiB

// WebhookHandler receives TradingView alerts and fans them out to paid
// users. The shared secret travels in a header because TradingView
// cannot sign requests.
type WebhookHandler struct {
	BroadcastUC *usecase.BroadcastSignalUseCase
	Secret      string
}

func NewWebhookHandler(broadcast *usecase.BroadcastSignalUseCase, secret string) *WebhookHandler {
	return &WebhookHandler{BroadcastUC: broadcast, Secret: secret}
}

func (h *WebhookHandler) HandleTradingView(w http.ResponseWriter, r *http.Request) {
	got := r.Header.Get("X-Webhook-Secret")
	if h.Secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.Secret)) != 1 {
		writeError(w, http.StatusUnauthorized, "Invalid webhook secret")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	var payload usecase.TradingViewSignal
	if err := json.Unmarshal(body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := usecase.ValidateTradingViewSignal(payload); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, errs[0].Error())
		return
	}

	log.Printf("📥 [Webhook] TradingView alert: %s %s", payload.Symbol, payload.Action)

	// Identical payloads hash to the same dedup key, so an alert
	// retried by TradingView is suppressed inside the dedup window.
	sum := sha256.Sum256(body)

	report, err := h.BroadcastUC.Execute(r.Context(), usecase.BroadcastSignalInput{
		SignalText: usecase.SignalTextFromWebhook(payload),
		EntryPrice: payload.EntryPrice,
		ExitPrice:  payload.ExitPrice,
		StopLoss:   payload.StopLoss,
		TakeProfit: payload.TakeProfit,
		Type:       payload.Action,
		DedupKey:   hex.EncodeToString(sum[:]),
	})
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordSignalBroadcast(report.Sent, report.Failed)
	writeJSON(w, http.StatusOK, report)
}

// HandleTest lets the operator verify reachability from the TradingView
// alert editor without secrets or side effects.
func (h *WebhookHandler) HandleTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"message":   "Webhook endpoint is reachable",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
