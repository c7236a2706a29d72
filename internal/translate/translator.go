package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrTranslationUnavailable marks a translation that failed or timed out
var ErrTranslationUnavailable = errors.New("translation unavailable")

// Translator translates text into the language identified by a two-letter code
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// Identity returns text unchanged. Used when no backend is configured.
type Identity struct{}

// Translate returns text
func (Identity) Translate(_ context.Context, text, _ string) (string, error) {
	return text, nil
}

// LibreTranslate calls a LibreTranslate-compatible /translate endpoint
type LibreTranslate struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewLibreTranslate creates a client for the server at baseURL
func NewLibreTranslate(baseURL, apiKey string) *LibreTranslate {
	return &LibreTranslate{
		endpoint: strings.TrimRight(baseURL, "/") + "/translate",
		apiKey:   apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type libreRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// Translate sends one text to the backend
func (l *LibreTranslate) Translate(ctx context.Context, text, target string) (string, error) {
	payload, err := json.Marshal(libreRequest{
		Q:      text,
		Source: "auto",
		Target: target,
		Format: "text",
		APIKey: l.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var out libreResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate API error (status %d): %s", resp.StatusCode, out.Error)
	}
	if out.TranslatedText == "" {
		return "", errors.New("translate API returned empty text")
	}
	return out.TranslatedText, nil
}
