package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls the external signal bot's admin endpoint to grant the
// paid tier. The bot token doubles as the shared admin secret.
type Client struct {
	baseURL    string
	adminToken string
	http       *http.Client
}

func NewClient(baseURL, adminToken string) *Client {
	return &Client{
		baseURL:    baseURL,
		adminToken: adminToken,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured: without both a URL and a token the activation step is
// skipped and the operator is told to activate manually.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.adminToken != ""
}

type activateRequest struct {
	TelegramID string `json:"telegram_id"`
	Tier       string `json:"tier"`
	Plan       string `json:"plan"`
}

func (c *Client) ActivateSubscription(ctx context.Context, telegramID, tier, plan string) error {
	if !c.Configured() {
		return fmt.Errorf("bot activation not configured")
	}

	body, err := json.Marshal(activateRequest{TelegramID: telegramID, Tier: tier, Plan: plan})
	if err != nil {
		return fmt.Errorf("failed to marshal activation payload: %w", err)
	}

	url := fmt.Sprintf("%s/admin/activate-subscription", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Token", c.adminToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("bot activation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("bot rejected activation (status %d): %s", resp.StatusCode, string(respBody))
	}

	return nil
}
