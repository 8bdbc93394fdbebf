package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/xavierca1/growthx-admin/internal/entity"
)

// Client talks to the Telegram Bot API. With no token configured every
// send fails softly: the campaigns count a failure instead of crashing.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: "https://api.telegram.org",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL exists for tests against a stub server.
func NewClientWithBaseURL(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (c *Client) SendMessage(ctx context.Context, chatID, text string) error {
	if c.token == "" {
		log.Println("⚠️ Telegram: TELEGRAM_BOT_TOKEN not configured, message not sent")
		return fmt.Errorf("telegram not configured")
	}

	payload := sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("❌ Telegram: API returned status %d: %s", resp.StatusCode, string(respBody))
		return fmt.Errorf("telegram api error (status %d)", resp.StatusCode)
	}

	var response sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode telegram response: %w", err)
	}
	if !response.OK {
		return fmt.Errorf("telegram rejected message: %s", response.Description)
	}

	return nil
}

func (c *Client) SendFollowup(ctx context.Context, chatID, name string, level entity.FollowupLevel) error {
	text, ok := followupMessages[level]
	if !ok {
		return fmt.Errorf("no chat template for level %d", level)
	}
	return c.SendMessage(ctx, chatID, fmt.Sprintf(text, name))
}
