package usecase

import (
	"context"

	"github.com/xavierca1/growthx-admin/internal/entity"
)

// ChatSenderInterface is the Telegram delivery channel. Implementations
// must no-op with an error (never panic) when credentials are missing.
type ChatSenderInterface interface {
	SendMessage(ctx context.Context, chatID, text string) error
	SendFollowup(ctx context.Context, chatID, name string, level entity.FollowupLevel) error
}

// EmailSenderInterface is the SMTP delivery channel. Enabled reflects an
// explicit configuration flag: while the bot collects no email addresses
// the channel stays off instead of silently no-op'ing.
type EmailSenderInterface interface {
	Enabled() bool
	SendFollowup(to, name string, level entity.FollowupLevel) error
}

// BotGatewayInterface activates the paid tier in the external bot.
type BotGatewayInterface interface {
	Configured() bool
	ActivateSubscription(ctx context.Context, telegramID, tier, plan string) error
}

// SignalDeduperInterface guards the inbound webhook against replays.
// SeenRecently marks the key and reports whether it was already marked
// inside the replay window.
type SignalDeduperInterface interface {
	SeenRecently(ctx context.Context, key string) (bool, error)
}
