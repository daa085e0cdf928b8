// Package telegram is a minimal Telegram Bot API client covering the calls
// the notifier needs: sendMessage and getUpdates.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public Bot API endpoint.
	DefaultBaseURL = "https://api.telegram.org"
	// DefaultSendTimeout bounds a single sendMessage call.
	DefaultSendTimeout = 10 * time.Second
	// DefaultRatePerSecond keeps below Telegram's ~30 messages/s global limit.
	DefaultRatePerSecond = 25

	parseModeHTML = "HTML"
)

// APIError is returned for any non-2xx response from the Bot API.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("telegram api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("telegram api: status %d: %s", e.StatusCode, e.Description)
}

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL       string
	SendTimeout   time.Duration
	RatePerSecond float64
	HTTPClient    *http.Client
}

// Client talks to the Bot API for one bot token.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	token       string
	sendTimeout time.Duration
	limiter     *rate.Limiter
}

// New creates a client for token.
func New(token string, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = DefaultSendTimeout
	}
	if opts.RatePerSecond <= 0 {
		opts.RatePerSecond = DefaultRatePerSecond
	}
	if opts.HTTPClient == nil {
		// No client-level timeout: getUpdates long-polls and each call sets its own deadline.
		opts.HTTPClient = &http.Client{}
	}

	return &Client{
		httpClient:  opts.HTTPClient,
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		token:       token,
		sendTimeout: opts.SendTimeout,
		limiter:     rate.NewLimiter(rate.Limit(opts.RatePerSecond), 1),
	}
}

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage delivers an HTML-formatted message to chatID.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.sendTimeout)
	defer cancel()

	return c.call(ctx, "sendMessage", sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseModeHTML,
	}, nil)
}

// User is the sender of a message.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

// Chat identifies where a message was posted.
type Chat struct {
	ID int64 `json:"id"`
}

// Message is the subset of a Telegram message the bot reads.
type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

// Update is one entry returned by getUpdates.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type getUpdatesRequest struct {
	Offset         int64    `json:"offset,omitempty"`
	Timeout        int      `json:"timeout"`
	AllowedUpdates []string `json:"allowed_updates"`
}

// GetUpdates long-polls for new messages starting at offset. timeout is the
// server-side poll duration.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
	seconds := int(timeout / time.Second)

	ctx, cancel := context.WithTimeout(ctx, timeout+c.sendTimeout)
	defer cancel()

	var updates []Update
	err := c.call(ctx, "getUpdates", getUpdatesRequest{
		Offset:         offset,
		Timeout:        seconds,
		AllowedUpdates: []string{"message"},
	}, &updates)
	if err != nil {
		return nil, err
	}
	return updates, nil
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

func (c *Client) call(ctx context.Context, method string, body any, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The URL embeds the token; never let it reach the logs.
		return fmt.Errorf("%s request failed: %w", method, redact(err, c.token))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", method, err)
	}

	var decoded apiResponse
	decodeErr := json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		desc := decoded.Description
		if desc == "" {
			desc = strings.TrimSpace(string(raw))
		}
		return &APIError{StatusCode: resp.StatusCode, Description: desc}
	}

	if result != nil && decodeErr != nil {
		return fmt.Errorf("decode %s response: %w", method, decodeErr)
	}
	if result != nil && len(decoded.Result) > 0 {
		if err := json.Unmarshal(decoded.Result, result); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
	}
	return nil
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

func redact(err error, token string) error {
	if token == "" {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), token, "<token>"), err: err}
}
