package telegram

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

const (
	DefaultAPIURL  = "https://api.telegram.org"
	DefaultTimeout = 15 * time.Second

	// MaxMessageLength is the Bot API limit on message text, in characters.
	MaxMessageLength = 4096
)

// Config configures a Bot.
type Config struct {
	Token      string
	APIURL     string // without the /bot<token> suffix
	HTTPClient *http.Client
}

// Bot is the Telegram Bot API client.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client.
func NewBot(cfg Config) (*Bot, error) {
	if cfg.Token == "" {
		return nil, errors.New("telegram: bot token is required")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Bot{
		apiURL:     fmt.Sprintf("%s/bot%s", strings.TrimRight(cfg.APIURL, "/"), cfg.Token),
		httpClient: cfg.HTTPClient,
	}, nil
}

// SendMessage sends a plain text message to a Telegram chat. Text longer
// than MaxMessageLength is rejected by Telegram; use SplitMessage first.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) (*Message, error) {
	body, err := json.Marshal(SendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/sendMessage", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("telegram sendMessage API error %d: undecodable response: %w", resp.StatusCode, err)
	}
	if !apiResp.OK {
		return nil, fmt.Errorf("telegram sendMessage failed (%d): %s", apiResp.ErrorCode, apiResp.Description)
	}

	var msg Message
	if err := json.Unmarshal(apiResp.Result, &msg); err != nil {
		return nil, fmt.Errorf("failed to decode sent message: %w", err)
	}
	return &msg, nil
}

// SplitMessage cuts text into chunks of at most limit characters, preferring
// to break after a newline. Empty text yields no chunks.
func SplitMessage(text string, limit int) []string {
	if limit <= 0 {
		limit = MaxMessageLength
	}

	var chunks []string
	runes := []rune(text)
	for len(runes) > limit {
		cut := limit
		for i := limit; i > limit/2; i-- {
			if runes[i-1] == '\n' {
				cut = i
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}
