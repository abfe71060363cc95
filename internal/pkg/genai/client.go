// Package genai talks to the external text-generation provider. The
// provider returns opaque text with no semantic guarantees; everything it
// produces is validated at the trust boundary before use.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/denizyilmaz/plansphere/internal/pkg/apperrors"
)

// TextGenerator submits a prompt and returns generated text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Provider errors
var (
	ErrEmptyResponse = errors.New("provider returned no candidates")
)

// Config holds the provider connection settings
type Config struct {
	APIKey   string
	Model    string
	Endpoint string
}

// Client is a Gemini generateContent REST client.
type Client struct {
	cfg    Config
	http   *http.Client
	logger zerolog.Logger
}

// NewClient creates a new provider client. Timeouts are carried by the
// caller's context, one per pipeline stage.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{},
		logger: logger,
	}
}

// request/response wire shapes for generateContent
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate submits a single prompt and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode provider request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.Endpoint, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrProviderCall, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Error bodies are not guaranteed to be JSON; an intermediate proxy
		// can answer with HTML. Keep the status code either way.
		msg := resp.Status
		var parsed generateResponse
		if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error != nil {
			msg = parsed.Error.Message
		}
		return "", fmt.Errorf("%w: status %d: %s", apperrors.ErrProviderCall, resp.StatusCode, msg)
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode provider response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var out string
	for _, p := range parsed.Candidates[0].Content.Parts {
		out += p.Text
	}

	c.logger.Debug().
		Int("promptLen", len(prompt)).
		Int("responseLen", len(out)).
		Msg("Provider call completed")

	return out, nil
}
