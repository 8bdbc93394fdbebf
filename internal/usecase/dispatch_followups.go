package usecase

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/growthx-admin/internal/entity"
)

// DispatchFollowupsUseCase runs one escalation cycle over a channel:
// select due followups, resolve each to a deliverable address, send,
// and advance the record only on success. Partial success is the normal
// outcome, not an error — there is no batch rollback.
type DispatchFollowupsUseCase struct {
	Followups entity.FollowupRepositoryInterface
	Leads     entity.LeadRepositoryInterface
	Chat      ChatSenderInterface
	Email     EmailSenderInterface
}

func NewDispatchFollowupsUseCase(
	followups entity.FollowupRepositoryInterface,
	leads entity.LeadRepositoryInterface,
	chat ChatSenderInterface,
	email EmailSenderInterface,
) *DispatchFollowupsUseCase {
	return &DispatchFollowupsUseCase{Followups: followups, Leads: leads, Chat: chat, Email: email}
}

func (uc *DispatchFollowupsUseCase) Execute(ctx context.Context, now time.Time, channel DispatchChannel) (*DispatchReport, error) {
	if channel == ChannelEmail && (uc.Email == nil || !uc.Email.Enabled()) {
		return nil, &DomainError{Code: "EMAIL_CHANNEL_DISABLED", Message: "email channel is disabled until addresses are collected"}
	}

	pending, err := uc.Followups.FindPending(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to load followups: " + err.Error()}
	}

	due := entity.SelectDue(now, pending)
	report := &DispatchReport{Total: len(due)}

	log.Printf("📤 [Dispatch] %d of %d followups due on channel %s", len(due), len(pending), channel)

	for _, item := range due {
		lead, err := uc.Leads.FindByTelegramID(ctx, item.Followup.TelegramID)
		if err != nil || lead == nil {
			log.Printf("⚠️ [Dispatch] Skipping %s: lead not found", item.Followup.TelegramID)
			continue
		}

		// A lead that paid since the campaign opened converts instead
		// of being nagged again.
		if lead.Status == entity.LeadStatusPaid {
			if err := uc.Followups.UpdateStatus(ctx, item.Followup.ID, entity.FollowupStatusConverted); err != nil {
				log.Printf("⚠️ [Dispatch] Failed to mark %s converted: %v", item.Followup.ID, err)
			}
			continue
		}

		if channel == ChannelEmail && lead.Email == "" {
			// No address on file: skip without marking sent, the
			// record stays eligible for the next cycle.
			log.Printf("⚠️ [Dispatch] No email on file for %s, skipping", lead.TelegramID)
			continue
		}

		if err := uc.send(ctx, channel, lead, item.Level); err != nil {
			// Record untouched: it stays eligible next cycle.
			log.Printf("❌ [Dispatch] Level %d to %s failed: %v", item.Level, item.Followup.TelegramID, err)
			report.Failed++
			continue
		}

		if err := uc.Followups.MarkSent(ctx, item.Followup.ID, now); err != nil {
			log.Printf("⚠️ [Dispatch] Sent but failed to advance followup %s: %v", item.Followup.ID, err)
			report.Failed++
			continue
		}
		report.Sent++
	}

	log.Printf("✅ [Dispatch] Cycle done: %d sent, %d failed, %d total", report.Sent, report.Failed, report.Total)
	return report, nil
}

func (uc *DispatchFollowupsUseCase) send(ctx context.Context, channel DispatchChannel, lead *entity.Lead, level entity.FollowupLevel) error {
	if channel == ChannelEmail {
		return uc.Email.SendFollowup(lead.Email, lead.DisplayName(), level)
	}
	return uc.Chat.SendFollowup(ctx, lead.TelegramID, lead.DisplayName(), level)
}
