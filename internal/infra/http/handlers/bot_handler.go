package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/xavierca1/growthx-admin/internal/infra/queue"
	"github.com/xavierca1/growthx-admin/internal/usecase"
)

// BotHandler receives lifecycle events pushed by the Telegram bot:
// a user started a chat, a user said they paid, a user walked away from
// checkout. When a queue producer is configured the events are published
// for durable processing; otherwise they are recorded in-line.
type BotHandler struct {
	RecordLeadUC     *usecase.RecordLeadUseCase
	RecordPaymentUC  *usecase.RecordPaymentUseCase
	RecordFollowupUC *usecase.RecordFollowupUseCase
	Producer         queue.QueueProducerInterface // optional

	rateLimiter *RateLimiter
}

func NewBotHandler(
	recordLead *usecase.RecordLeadUseCase,
	recordPayment *usecase.RecordPaymentUseCase,
	recordFollowup *usecase.RecordFollowupUseCase,
	producer queue.QueueProducerInterface,
) *BotHandler {
	return &BotHandler{
		RecordLeadUC:     recordLead,
		RecordPaymentUC:  recordPayment,
		RecordFollowupUC: recordFollowup,
		Producer:         producer,
		rateLimiter:      NewRateLimiter(60, time.Minute), // 60 req/min per IP
	}
}

func (h *BotHandler) RecordLead(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	var input usecase.RecordLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if h.Producer != nil {
		h.publish(w, r, queue.BotEventPayload{
			Type:       queue.EventTypeLead,
			TelegramID: input.TelegramID,
			FirstName:  input.FirstName,
			LastName:   input.LastName,
			Username:   input.Username,
			Email:      input.Email,
		})
		return
	}

	if err := h.RecordLeadUC.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

func (h *BotHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	var input usecase.RecordPaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if h.Producer != nil {
		h.publish(w, r, queue.BotEventPayload{
			Type:       queue.EventTypePayment,
			TelegramID: input.TelegramID,
			Plan:       input.Plan,
			Amount:     input.Amount,
			Method:     input.Method,
		})
		return
	}

	if err := h.RecordPaymentUC.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

func (h *BotHandler) RecordFollowup(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	var input usecase.RecordFollowupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if h.Producer != nil {
		h.publish(w, r, queue.BotEventPayload{
			Type:       queue.EventTypeFollowup,
			TelegramID: input.TelegramID,
			Plan:       input.Plan,
			Reason:     input.Reason,
		})
		return
	}

	if err := h.RecordFollowupUC.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

func (h *BotHandler) allow(w http.ResponseWriter, r *http.Request) bool {
	if h.rateLimiter.Allow(getClientIP(r)) {
		return true
	}
	writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
	return false
}

func (h *BotHandler) publish(w http.ResponseWriter, r *http.Request, payload queue.BotEventPayload) {
	if err := h.Producer.PublishBotEvent(r.Context(), payload); err != nil {
		log.Printf("❌ [Bot] Failed to enqueue %s event: %v", payload.Type, err)
		writeError(w, http.StatusInternalServerError, "Failed to enqueue event")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]bool{"success": true})
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
