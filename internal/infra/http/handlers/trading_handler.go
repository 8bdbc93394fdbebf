package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/xavierca1/growthx-admin/internal/entity"
	"github.com/xavierca1/growthx-admin/internal/usecase"
)

const defaultSymbol = "SOL/USDT"

// TradingHandler serves the public dashboard data: backtest metrics,
// the live trade feed and the profit calculator. Read endpoints fall
// back to the canonical backtest block when nothing is stored yet.
type TradingHandler struct {
	Trades  entity.TradeRepositoryInterface
	Metrics entity.MetricsRepositoryInterface
}

func NewTradingHandler(trades entity.TradeRepositoryInterface, metrics entity.MetricsRepositoryInterface) *TradingHandler {
	return &TradingHandler{Trades: trades, Metrics: metrics}
}

// defaultMetrics is the published backtest result the site launched
// with, used until real metrics rows are loaded.
func defaultMetrics() *entity.BacktestMetrics {
	return &entity.BacktestMetrics{
		ID:                     "default",
		Symbol:                 defaultSymbol,
		InitialCapital:         10000,
		NetProfit:              77953,
		NetProfitPercent:       "779.54",
		TotalTrades:            24431,
		WinRate:                "73.64",
		AvgPnL:                 "3.19",
		ProfitFactor:           "1.441",
		MaxDrawdown:            "7884.11",
		MonthlyReturnPercent:   "12.99",
		QuarterlyReturnPercent: "39.99",
		AnnualReturnPercent:    "155.91",
		CreatedAt:              time.Now(),
	}
}

func (h *TradingHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		symbol = defaultSymbol
	}

	metrics, err := h.Metrics.FindBySymbol(r.Context(), symbol)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load metrics")
		return
	}
	if metrics == nil {
		metrics = defaultMetrics()
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (h *TradingHandler) UpsertMetrics(w http.ResponseWriter, r *http.Request) {
	var metrics entity.BacktestMetrics
	if err := json.NewDecoder(r.Body).Decode(&metrics); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if metrics.Symbol == "" {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	if err := h.Metrics.Upsert(r.Context(), &metrics); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save metrics")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *TradingHandler) GetTrades(w http.ResponseWriter, r *http.Request) {
	trades, err := h.Trades.FindAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load trades")
		return
	}
	if trades == nil {
		trades = []*entity.LiveTrade{}
	}
	writeJSON(w, http.StatusOK, trades)
}

func (h *TradingHandler) GetOpenTrades(w http.ResponseWriter, r *http.Request) {
	trades, err := h.Trades.FindOpen(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load open trades")
		return
	}
	if trades == nil {
		trades = []*entity.LiveTrade{}
	}
	writeJSON(w, http.StatusOK, trades)
}

// UpsertTrade is the strategy feed's write path: the same trade_id is
// posted once on entry and again on close.
func (h *TradingHandler) UpsertTrade(w http.ResponseWriter, r *http.Request) {
	var trade entity.LiveTrade
	if err := json.NewDecoder(r.Body).Decode(&trade); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if trade.TradeID == "" {
		writeError(w, http.StatusBadRequest, "trade_id is required")
		return
	}
	if trade.Status == "" {
		trade.Status = entity.TradeStatusOpen
	}

	if err := h.Trades.Upsert(r.Context(), &trade); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save trade")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GetProjection runs the compounding calculator. The rate defaults to
// the stored monthly return for the default symbol.
func (h *TradingHandler) GetProjection(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	principal, err := strconv.ParseFloat(q.Get("principal"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "principal must be a number")
		return
	}

	months := 12
	if raw := q.Get("months"); raw != "" {
		months, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "months must be an integer")
			return
		}
	}

	rate := h.monthlyRate(r)
	if raw := q.Get("rate"); raw != "" {
		rate, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "rate must be a number")
			return
		}
	}

	projections, err := usecase.ProjectProfit(principal, rate, months)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"principal":   principal,
		"monthlyRate": rate,
		"projections": projections,
	})
}

func (h *TradingHandler) monthlyRate(r *http.Request) float64 {
	metrics, err := h.Metrics.FindBySymbol(r.Context(), defaultSymbol)
	if err != nil || metrics == nil {
		metrics = defaultMetrics()
	}
	pct, err := strconv.ParseFloat(metrics.MonthlyReturnPercent, 64)
	if err != nil {
		return 0.1299
	}
	return pct / 100
}
