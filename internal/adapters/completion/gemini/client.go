// Package gemini implementa completion.Completer sobre la API de Gemini (google.golang.org/genai).
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"penguin-pet/internal/ports/completion"

	"google.golang.org/genai"
)

const (
	DefaultModel       = "gemini-2.5-flash"
	DefaultMaxTokens   = 150
	DefaultTemperature = 0.8
)

type Config struct {
	APIKey      string
	Model       string
	MaxTokens   int
	// nil o negativa => DefaultTemperature; 0 es un valor válido.
	Temperature *float64
}

// generator es la parte de genai.Models que usamos; permite testear sin red.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Client struct {
	models      generator
	model       string
	maxTokens   int32
	temperature float32
}

var _ completion.Completer = (*Client)(nil)

func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini: api key required")
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return newWithGenerator(gc.Models, cfg), nil
}

func newWithGenerator(g generator, cfg Config) *Client {
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	temperature := DefaultTemperature
	if cfg.Temperature != nil && *cfg.Temperature >= 0 {
		temperature = *cfg.Temperature
	}
	return &Client{
		models:      g,
		model:       strings.TrimSpace(cfg.Model),
		maxTokens:   int32(cfg.MaxTokens),
		temperature: float32(temperature),
	}
}

func (c *Client) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(userMessage), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		MaxOutputTokens:   c.maxTokens,
		Temperature:       genai.Ptr(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}
	if resp == nil {
		return "", completion.ErrEmpty
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", completion.ErrEmpty
	}
	return text, nil
}
