package usecase

type RecordLeadInput struct {
	TelegramID string `json:"telegramId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName,omitempty"`
	Username   string `json:"username,omitempty"`
	Email      string `json:"email,omitempty"`
}

type RecordPaymentInput struct {
	TelegramID string  `json:"telegramId"`
	Plan       string  `json:"plan"`
	Amount     float64 `json:"amount"`
	Method     string  `json:"paymentMethod"`
}

type RecordFollowupInput struct {
	TelegramID string `json:"telegramId"`
	Plan       string `json:"plan"`
	Reason     string `json:"reason,omitempty"`
}

type ApproveUserInput struct {
	TelegramID string `json:"telegramId"`
	Tier       string `json:"tier"` // basic, pro, vip, premium
	Plan       string `json:"plan"` // monthly, quarterly, yearly, lifetime
}

// ApproveUserOutput reports both outcomes separately: the local
// confirmation and the best-effort bot activation. Success=false with a
// filled Error still means the payment was confirmed locally.
type ApproveUserOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type BroadcastSignalInput struct {
	SignalText string `json:"signalText"`
	EntryPrice string `json:"entryPrice,omitempty"`
	ExitPrice  string `json:"exitPrice,omitempty"`
	StopLoss   string `json:"stopLoss,omitempty"`
	TakeProfit string `json:"takeProfit,omitempty"`
	Type       string `json:"type,omitempty"`
	// DedupKey, when non-empty, suppresses replays of the same payload
	// inside the dedup window. Empty disables the check.
	DedupKey string `json:"-"`
}

type BroadcastReport struct {
	Sent      int  `json:"sent"`
	Failed    int  `json:"failed"`
	Total     int  `json:"total"`
	Duplicate bool `json:"duplicate,omitempty"`
}

// TradingViewSignal is the inbound webhook payload.
type TradingViewSignal struct {
	Symbol     string `json:"symbol"`
	Action     string `json:"action"` // buy, sell, close
	Price      string `json:"price,omitempty"`
	Message    string `json:"message,omitempty"`
	EntryPrice string `json:"entryPrice,omitempty"`
	ExitPrice  string `json:"exitPrice,omitempty"`
	StopLoss   string `json:"stopLoss,omitempty"`
	TakeProfit string `json:"takeProfit,omitempty"`
}

type DispatchChannel string

const (
	ChannelTelegram DispatchChannel = "telegram"
	ChannelEmail    DispatchChannel = "email"
)

// DispatchReport is the only result surfaced to the administrative
// caller. Individual failures are logged, never itemized back.
type DispatchReport struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
}
