// Package ai talks to the generative-AI text endpoint used by the assistant
// surface.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/nisargamalap/gridle/internal/core/ports"
)

var ErrNotConfigured = errors.New("generative api key is not configured")

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// GeminiClient calls the generateContent REST endpoint of a Gemini-style API.
type GeminiClient struct {
	cfg  Config
	http *http.Client
}

var _ ports.GenerativeClient = (*GeminiClient)(nil)

func NewGeminiClient(cfg Config) *GeminiClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &GeminiClient{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}
}

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
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		zap.L().Error("generative api error",
			zap.Int("status", resp.StatusCode),
			zap.String("model", c.cfg.Model),
			zap.ByteString("body", truncate(payload, 300)),
		)
		return "", fmt.Errorf("generative api returned status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("generative api returned no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
