package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrNoToken is returned by Telegram.Send when the client was constructed
// without a bot token.
var ErrNoToken = errors.New("notify: telegram bot token not configured")

// Telegram delivers messages through the Telegram Bot API sendMessage method,
// rendering buttons as an inline keyboard with one button per row.
//
// Telegram is safe for concurrent use.
type Telegram struct {
	apiBase string
	token   string
	http    *http.Client
}

// NewTelegram constructs a Telegram sender.
//
//   - apiBase: API root, e.g. "https://api.telegram.org".
//   - token:   bot token; empty makes every Send fail with ErrNoToken.
//   - timeout: per-delivery budget.
func NewTelegram(apiBase, token string, timeout time.Duration) *Telegram {
	return &Telegram{
		apiBase: strings.TrimRight(apiBase, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

type inlineButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

type inlineKeyboard struct {
	InlineKeyboard [][]inlineButton `json:"inline_keyboard"`
}

type sendMessageRequest struct {
	ChatID      int64           `json:"chat_id"`
	Text        string          `json:"text"`
	ReplyMarkup *inlineKeyboard `json:"reply_markup,omitempty"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send implements Sender. Delivery counts as confirmed only when the API
// answers 2xx with ok=true; anything else is an error.
func (t *Telegram) Send(ctx context.Context, channelID int64, text string, buttons []Button) error {
	if t.token == "" {
		return ErrNoToken
	}

	payload := sendMessageRequest{ChatID: channelID, Text: text}
	if len(buttons) > 0 {
		kb := &inlineKeyboard{InlineKeyboard: make([][]inlineButton, 0, len(buttons))}
		for _, b := range buttons {
			kb.InlineKeyboard = append(kb.InlineKeyboard, []inlineButton{{Text: b.Label, CallbackData: b.Token}})
		}
		payload.ReplyMarkup = kb
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notify: marshal sendMessage: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.http.Do(req)
	if err != nil {
		return fmt.Errorf("notify: send to channel %d: %w", channelID, err)
	}
	defer resp.Body.Close()

	var out sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		// A 2xx with an undecodable body still means the send is unconfirmed.
		return fmt.Errorf("notify: decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !out.OK {
		if out.Description != "" {
			return fmt.Errorf("notify: telegram rejected send (status %d): %s", resp.StatusCode, out.Description)
		}
		return fmt.Errorf("notify: telegram rejected send (status %d)", resp.StatusCode)
	}
	return nil
}
