// Package openai habla con cualquier API compatible con /chat/completions de OpenAI (OpenAI, Groq).
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"penguin-pet/internal/platform/httpclient"
	"penguin-pet/internal/ports/completion"
)

const (
	GroqBaseURL   = "https://api.groq.com/openai/v1"
	OpenAIBaseURL = "https://api.openai.com/v1"

	GroqDefaultModel   = "llama-3.1-8b-instant"
	OpenAIDefaultModel = "gpt-4o-mini"

	DefaultMaxTokens   = 150
	DefaultTemperature = 0.8

	chatCompletionsPath = "/chat/completions"
)

var ErrNoModels = errors.New("openai: no models configured")

type Config struct {
	BaseURL string
	APIKey  string
	// Models se prueban en orden dentro del mismo deadline; el primero con texto gana.
	Models      []string
	MaxTokens   int
	// nil o negativa => DefaultTemperature; 0 es un valor válido.
	Temperature *float64
}

type Client struct {
	http        *httpclient.Client
	models      []string
	maxTokens   int
	temperature float64
}

var _ completion.Completer = (*Client)(nil)

// New arma el cliente. El timeout lo da el ctx de cada llamada (no hay timeout propio).
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("openai: api key required")
	}
	models := make([]string, 0, len(cfg.Models))
	for _, m := range cfg.Models {
		if m = strings.TrimSpace(m); m != "" {
			models = append(models, m)
		}
	}
	if len(models) == 0 {
		return nil, ErrNoModels
	}

	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, 0)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	hc.WithBearer(cfg.APIKey)

	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	temperature := DefaultTemperature
	if cfg.Temperature != nil && *cfg.Temperature >= 0 {
		temperature = *cfg.Temperature
	}

	return &Client{
		http:        hc,
		models:      models,
		maxTokens:   cfg.MaxTokens,
		temperature: temperature,
	}, nil
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete prueba cada modelo en orden. Devuelve el último error si ninguno respondió texto.
func (c *Client) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	var lastErr error
	for _, model := range c.models {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := c.completeWith(ctx, model, systemPrompt, userMessage)
		if err == nil {
			return text, nil
		}
		lastErr = fmt.Errorf("model %s: %w", model, err)
	}
	return "", lastErr
}

func (c *Client) completeWith(ctx context.Context, model, systemPrompt, userMessage string) (string, error) {
	req := chatRequest{
		Model: model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	var resp chatResponse
	if err := c.http.PostJSON(ctx, chatCompletionsPath, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", completion.ErrEmpty
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", completion.ErrEmpty
	}
	return text, nil
}
