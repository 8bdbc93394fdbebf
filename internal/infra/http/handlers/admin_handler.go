package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/growthx-admin/internal/entity"
	"github.com/xavierca1/growthx-admin/internal/infra/http/middleware"
	"github.com/xavierca1/growthx-admin/internal/usecase"
)

// AdminHandler is the dashboard's query and action surface. Every route
// behind it requires the admin token (enforced by middleware, not here).
type AdminHandler struct {
	Leads     entity.LeadRepositoryInterface
	Payments  entity.PaymentRepositoryInterface
	Followups entity.FollowupRepositoryInterface
	Signals   entity.SignalRepositoryInterface

	ApproveUC   *usecase.ApproveUserUseCase
	DispatchUC  *usecase.DispatchFollowupsUseCase
	BroadcastUC *usecase.BroadcastSignalUseCase
}

func NewAdminHandler(
	leads entity.LeadRepositoryInterface,
	payments entity.PaymentRepositoryInterface,
	followups entity.FollowupRepositoryInterface,
	signals entity.SignalRepositoryInterface,
	approve *usecase.ApproveUserUseCase,
	dispatch *usecase.DispatchFollowupsUseCase,
	broadcast *usecase.BroadcastSignalUseCase,
) *AdminHandler {
	return &AdminHandler{
		Leads:       leads,
		Payments:    payments,
		Followups:   followups,
		Signals:     signals,
		ApproveUC:   approve,
		DispatchUC:  dispatch,
		BroadcastUC: broadcast,
	}
}

func (h *AdminHandler) GetLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load leads")
		return
	}
	if leads == nil {
		leads = []*entity.Lead{}
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *AdminHandler) GetLeadStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Leads.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load lead stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Payments.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load payments")
		return
	}
	if payments == nil {
		payments = []*entity.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *AdminHandler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.Payments.RevenueStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load revenue")
		return
	}
	writeJSON(w, http.StatusOK, revenue)
}

// PendingFollowupItem decorates a stored followup with the cadence
// fields the dashboard renders: the level the next message would use and
// whether it is already due.
type PendingFollowupItem struct {
	*entity.Followup
	NextLevel entity.FollowupLevel `json:"next_level"`
	Due       bool                 `json:"due"`
}

func (h *AdminHandler) GetPendingFollowups(w http.ResponseWriter, r *http.Request) {
	pending, err := h.Followups.FindPending(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load followups")
		return
	}

	now := time.Now()
	items := make([]PendingFollowupItem, 0, len(pending))
	for _, f := range pending {
		items = append(items, PendingFollowupItem{
			Followup:  f,
			NextLevel: f.Level(),
			Due:       f.IsDueAt(now),
		})
	}
	writeJSON(w, http.StatusOK, items)
}

// LeadDetails aggregates everything known about one lead into a single
// dashboard response.
type LeadDetails struct {
	Lead      *entity.Lead       `json:"lead"`
	Payments  []*entity.Payment  `json:"payments"`
	Followups []*entity.Followup `json:"followups"`
	Signals   []*entity.Signal   `json:"signals"`
}

func (h *AdminHandler) GetLeadDetails(w http.ResponseWriter, r *http.Request) {
	telegramID := chi.URLParam(r, "telegramId")

	lead, err := h.Leads.FindByTelegramID(r.Context(), telegramID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load lead")
		return
	}
	if lead == nil {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}

	details := LeadDetails{
		Lead:      lead,
		Payments:  []*entity.Payment{},
		Followups: []*entity.Followup{},
		Signals:   []*entity.Signal{},
	}

	if payments, err := h.Payments.FindByTelegramID(r.Context(), telegramID); err == nil && payments != nil {
		details.Payments = payments
	}
	if followups, err := h.Followups.FindByTelegramID(r.Context(), telegramID); err == nil && followups != nil {
		details.Followups = followups
	}
	if signals, err := h.Signals.FindByTelegramID(r.Context(), telegramID); err == nil && signals != nil {
		details.Signals = signals
	}

	writeJSON(w, http.StatusOK, details)
}

func (h *AdminHandler) ApproveUser(w http.ResponseWriter, r *http.Request) {
	var input usecase.ApproveUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.ApproveUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordPaymentConfirmed()
	writeJSON(w, http.StatusOK, output)
}

type dispatchRequest struct {
	Channel string `json:"channel"` // telegram (default), email
}

func (h *AdminHandler) DispatchFollowups(w http.ResponseWriter, r *http.Request) {
	var req dispatchRequest
	// Body is optional; an empty body means the default channel.
	_ = json.NewDecoder(r.Body).Decode(&req)

	channel := usecase.ChannelTelegram
	switch req.Channel {
	case "", string(usecase.ChannelTelegram):
	case string(usecase.ChannelEmail):
		channel = usecase.ChannelEmail
	default:
		writeError(w, http.StatusBadRequest, "channel must be telegram or email")
		return
	}

	report, err := h.DispatchUC.Execute(r.Context(), time.Now(), channel)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordFollowupDispatch(string(channel), report.Sent, report.Failed)
	writeJSON(w, http.StatusOK, report)
}

func (h *AdminHandler) BroadcastSignal(w http.ResponseWriter, r *http.Request) {
	var input usecase.BroadcastSignalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Manual broadcasts are deliberate; no dedup key is attached.
	report, err := h.BroadcastUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordSignalBroadcast(report.Sent, report.Failed)
	writeJSON(w, http.StatusOK, report)
}

// DeactivateLead is the manual-only path to inactive. Nothing automated
// flips a lead inactive; an operator decides.
func (h *AdminHandler) DeactivateLead(w http.ResponseWriter, r *http.Request) {
	telegramID := chi.URLParam(r, "telegramId")
	if telegramID == "" {
		writeError(w, http.StatusBadRequest, "telegramId is required")
		return
	}

	if err := h.Leads.UpdateStatus(r.Context(), telegramID, entity.LeadStatusInactive); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to deactivate lead")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
