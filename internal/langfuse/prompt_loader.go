// Package langfuse loads the advice prompt template from the Langfuse prompt
// API. When Langfuse is not configured or the fetch fails, callers fall back
// to the embedded default template, so prompt management stays optional.
package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// PromptConfig describes where to fetch the advice prompt from.
type PromptConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	PromptName  string
	PromptLabel string
}

var errDisabled = errors.New("langfuse integration disabled")

// LoadAdvicePrompt returns the managed prompt template, or fallback when
// Langfuse is not configured or unreachable. Fetch failures are logged, not
// propagated: advice generation must not depend on prompt management being
// up.
func LoadAdvicePrompt(ctx context.Context, cfg PromptConfig, fallback string) string {
	if cfg.PromptName == "" {
		return fallback
	}

	prompt, err := fetchPrompt(ctx, cfg)
	if err != nil {
		if !errors.Is(err, errDisabled) {
			log.Printf("[langfuse] prompt fetch failed, using built-in template: %v", err)
		}
		return fallback
	}
	return prompt
}

func fetchPrompt(ctx context.Context, cfg PromptConfig) (string, error) {
	if cfg.BaseURL == "" || cfg.PublicKey == "" || cfg.SecretKey == "" {
		return "", errDisabled
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}

	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(cfg.PromptName)
	query := parsed.Query()
	if cfg.PromptLabel != "" {
		query.Set("label", cfg.PromptLabel)
	}
	parsed.RawQuery = query.Encode()

	requestCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call Langfuse prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("Langfuse prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var promptResp struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&promptResp); err != nil {
		return "", fmt.Errorf("decode Langfuse prompt response: %w", err)
	}

	// Only text prompts make sense here: the advice template is a single
	// body with {{...}} placeholders filled locally.
	if promptResp.Type != "" && promptResp.Type != "text" {
		return "", fmt.Errorf("unsupported prompt type %q", promptResp.Type)
	}

	var textPrompt string
	if err := json.Unmarshal(promptResp.Prompt, &textPrompt); err != nil {
		return "", fmt.Errorf("parse text prompt: %w", err)
	}
	if strings.TrimSpace(textPrompt) == "" {
		return "", errors.New("empty prompt body")
	}
	return textPrompt, nil
}
