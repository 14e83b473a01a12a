package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate aplica reglas de negocio sobre la configuración ya cargada.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0")
	}

	c.AI.Provider = strings.ToLower(strings.TrimSpace(c.AI.Provider))
	switch c.AI.Provider {
	case ProviderGroq, ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("ai.provider must be one of groq|openai|gemini (got %q)", c.AI.Provider)
	}
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("ai.timeout must be > 0")
	}

	if c.Ask.RateLimitPerMinute < 0 {
		c.Ask.RateLimitPerMinute = 0
	}
	if c.Ask.MaxQuestionLength <= 0 {
		return fmt.Errorf("ask.max_question_length must be > 0 (got %d)", c.Ask.MaxQuestionLength)
	}

	if b := strings.TrimSpace(c.Friend.Birthday); b != "" {
		if _, ok := ParseBirthday(b); !ok {
			return fmt.Errorf("friend.birthday must be YYYY-MM-DD (got %q)", b)
		}
	}
	return nil
}

// ParseBirthday acepta YYYY-MM-DD o RFC3339 y devuelve la fecha a medianoche UTC.
func ParseBirthday(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
