// Package ai wraps the Gemini text-completion API behind a never-failing
// adapter: every degraded condition becomes a user-visible message.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash"

	unavailableMessage = "Sorry, I’m unable to connect to AI right now."
	failedMessage      = "Sorry, I couldn't generate an answer right now."

	promptTemplate = "Answer this as GAT college assistant:\n%s"
)

// Client calls the Gemini generateContent endpoint.
type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client

	log zerolog.Logger
}

// NewClient creates a Gemini client. An empty apiKey yields a client that
// answers with a fixed "AI unavailable" message without calling out.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		APIKey:     apiKey,
		Model:      model,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		log:        log.With().Str("component", "ai").Logger(),
	}
}

// request/response mirror the generateContent wire format.

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type request struct {
	Contents []content `json:"contents"`
}

type candidate struct {
	Content content `json:"content"`
}

type response struct {
	Candidates []candidate `json:"candidates"`
}

// Ask answers a question through the completion API. It never fails: a
// missing key or any call failure degrades to a fixed apology string.
func (c *Client) Ask(ctx context.Context, question string) string {
	if c.APIKey == "" {
		return unavailableMessage
	}

	text, err := c.complete(ctx, fmt.Sprintf(promptTemplate, question))
	if err != nil {
		c.log.Error().Err(err).Msg("completion call failed")
		return failedMessage
	}
	return text
}

// complete issues a single generateContent request and returns the trimmed
// text of the first candidate.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(request{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.BaseURL, c.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("response contained no candidates")
	}

	var b strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("response contained no text")
	}
	return text, nil
}
