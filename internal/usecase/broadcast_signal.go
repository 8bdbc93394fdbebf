package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/xavierca1/growthx-admin/internal/entity"
)

// BroadcastSignalUseCase fans a market signal out to every paying lead,
// recording one Signal audit row per delivered recipient. Sends are
// sequential; volumes are small and there is no backpressure need.
type BroadcastSignalUseCase struct {
	Leads    entity.LeadRepositoryInterface
	Payments entity.PaymentRepositoryInterface
	Signals  entity.SignalRepositoryInterface
	Chat     ChatSenderInterface
	Deduper  SignalDeduperInterface // optional
}

func NewBroadcastSignalUseCase(
	leads entity.LeadRepositoryInterface,
	payments entity.PaymentRepositoryInterface,
	signals entity.SignalRepositoryInterface,
	chat ChatSenderInterface,
	deduper SignalDeduperInterface,
) *BroadcastSignalUseCase {
	return &BroadcastSignalUseCase{Leads: leads, Payments: payments, Signals: signals, Chat: chat, Deduper: deduper}
}

func (uc *BroadcastSignalUseCase) Execute(ctx context.Context, input BroadcastSignalInput) (*BroadcastReport, error) {
	if strings.TrimSpace(input.SignalText) == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "signalText is required"}
	}

	// Replayed webhooks inside the dedup window are acknowledged
	// without re-sending to everyone a second time.
	if uc.Deduper != nil && input.DedupKey != "" {
		seen, err := uc.Deduper.SeenRecently(ctx, input.DedupKey)
		if err != nil {
			log.Printf("⚠️ [Broadcast] Dedup check failed, proceeding anyway: %v", err)
		} else if seen {
			log.Printf("📭 [Broadcast] Duplicate signal suppressed (key=%s)", input.DedupKey)
			return &BroadcastReport{Duplicate: true}, nil
		}
	}

	recipients, err := uc.paidLeads(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to load recipients: " + err.Error()}
	}

	report := &BroadcastReport{Total: len(recipients)}
	if len(recipients) == 0 {
		log.Println("📭 [Broadcast] No paid users to send signal to")
		return report, nil
	}

	text := FormatSignalText(input)

	for _, lead := range recipients {
		if err := uc.Chat.SendMessage(ctx, lead.TelegramID, text); err != nil {
			log.Printf("❌ [Broadcast] Failed to send to %s: %v", lead.TelegramID, err)
			report.Failed++
			continue
		}

		signal := entity.NewSignal(lead.TelegramID, input.SignalText)
		signal.EntryPrice = input.EntryPrice
		signal.ExitPrice = input.ExitPrice
		signal.StopLoss = input.StopLoss
		signal.TakeProfit = input.TakeProfit
		signal.Type = input.Type

		if err := uc.Signals.Create(ctx, signal); err != nil {
			// Delivered but not recorded; count as sent, it reached
			// the user.
			log.Printf("⚠️ [Broadcast] Sent to %s but audit row failed: %v", lead.TelegramID, err)
		}
		report.Sent++
	}

	log.Printf("✅ [Broadcast] Signal broadcast complete: %d sent, %d failed", report.Sent, report.Failed)
	return report, nil
}

// paidLeads: every lead flagged paid, plus any lead holding at least one
// confirmed payment whose status flip hasn't landed yet.
func (uc *BroadcastSignalUseCase) paidLeads(ctx context.Context) ([]*entity.Lead, error) {
	leads, err := uc.Leads.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	confirmed := map[string]bool{}
	payments, err := uc.Payments.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		if p.Status == entity.PaymentStatusConfirmed {
			confirmed[p.TelegramID] = true
		}
	}

	var paid []*entity.Lead
	for _, l := range leads {
		if l.Status == entity.LeadStatusPaid || confirmed[l.TelegramID] {
			paid = append(paid, l)
		}
	}
	return paid, nil
}

// FormatSignalText renders the Telegram HTML message body.
func FormatSignalText(input BroadcastSignalInput) string {
	var b strings.Builder

	b.WriteString("<b>🚀 NEW TRADING SIGNAL</b>\n\n")
	b.WriteString("<b>Signal:</b>\n" + input.SignalText + "\n")

	if input.EntryPrice != "" {
		b.WriteString(fmt.Sprintf("\n<b>Entry Price:</b> $%s", input.EntryPrice))
	}
	if input.ExitPrice != "" {
		b.WriteString(fmt.Sprintf("\n<b>Exit Price:</b> $%s", input.ExitPrice))
	}
	if input.StopLoss != "" {
		b.WriteString(fmt.Sprintf("\n<b>Stop Loss:</b> $%s", input.StopLoss))
	}
	if input.TakeProfit != "" {
		b.WriteString(fmt.Sprintf("\n<b>Take Profit:</b> $%s", input.TakeProfit))
	}

	b.WriteString(fmt.Sprintf("\n\n<i>Sent at %s</i>", time.Now().Format("2006-01-02 15:04 MST")))
	return b.String()
}

// SignalTextFromWebhook builds the plain broadcast body out of the raw
// webhook payload.
func SignalTextFromWebhook(payload TradingViewSignal) string {
	text := fmt.Sprintf("%s - %s SIGNAL\n", payload.Symbol, strings.ToUpper(payload.Action))
	if payload.Message != "" {
		text += "\n" + payload.Message + "\n"
	}
	if payload.Price != "" {
		text += fmt.Sprintf("\nCurrent Price: $%s\n", payload.Price)
	}
	return text
}
