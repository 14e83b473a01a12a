package config

import (
	"strconv"
	"strings"
	"time"
)

// Config es la configuración raíz del servicio.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	AI       AIConfig       `yaml:"ai"`
	Ask      AskConfig      `yaml:"ask"`
	Friend   FriendConfig   `yaml:"friend"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig: si DSN viene vacío se usan los repos in-memory (modo dev).
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DB_DSN"`
	MaxOpenConns    int           `yaml:"max_open_conns"     env:"DB_MAX_OPEN_CONNS"     env-default:"10"`
	MaxIdleConns    int           `yaml:"max_idle_conns"     env:"DB_MAX_IDLE_CONNS"     env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"  env:"DB_CONN_MAX_LIFETIME"  env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" env:"DB_CONN_MAX_IDLE_TIME" env-default:"5m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DB_AUTO_MIGRATE"       env-default:"true"`
}

type AuthConfig struct {
	JWTSecret    string        `yaml:"jwt_secret"    env:"JWT_SECRET"         env-default:"penguin-pet-secret-change-me-in-production"`
	JWTIssuer    string        `yaml:"jwt_issuer"    env:"JWT_ISSUER"         env-default:"penguin-pet"`
	SessionTTL   time.Duration `yaml:"session_ttl"   env:"SESSION_TTL"        env-default:"168h"`
	CookieName   string        `yaml:"cookie_name"   env:"SESSION_COOKIE"     env-default:"penguin_session"`
	CookieSecure bool          `yaml:"cookie_secure" env:"SESSION_COOKIE_SECURE" env-default:"false"`
	BcryptCost   int           `yaml:"bcrypt_cost"   env:"BCRYPT_COST"        env-default:"10"`

	// DevHeader habilita X-Debug-User-ID (solo para desarrollo local).
	DevHeader bool `yaml:"dev_header" env:"AUTH_DEV_HEADER" env-default:"false"`
}

// AIConfig elige el backend de completions. Sin APIKey no hay IA y el chat usa solo respuestas guionadas.
type AIConfig struct {
	Provider          string        `yaml:"provider"        env:"AI_PROVIDER"        env-default:"groq"`
	APIKey            string        `yaml:"api_key"         env:"AI_API_KEY"`
	BaseURL           string        `yaml:"base_url"        env:"AI_BASE_URL"`
	Model             string        `yaml:"model"           env:"AI_MODEL"`
	FallbackModelsRaw string        `yaml:"fallback_models" env:"AI_FALLBACK_MODELS"`
	Timeout           time.Duration `yaml:"timeout"         env:"AI_TIMEOUT"         env-default:"12s"`
	MaxTokens         int           `yaml:"max_tokens"      env:"AI_MAX_TOKENS"      env-default:"150"`
	Temperature       float64       `yaml:"temperature"     env:"AI_TEMPERATURE"     env-default:"0.8"`

	// Compatibilidad con las variables de la versión anterior.
	GroqAPIKey   string `yaml:"-" env:"GROQ_API_KEY"`
	OpenAIAPIKey string `yaml:"-" env:"OPENAI_API_KEY"`
}

type AskConfig struct {
	Timeout            time.Duration `yaml:"timeout"               env:"ASK_TIMEOUT"               env-default:"18s"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute" env:"ASK_RATE_LIMIT_PER_MINUTE" env-default:"30"`
	MaxQuestionLength  int           `yaml:"max_question_length"   env:"ASK_MAX_QUESTION_LENGTH"   env-default:"500"`
}

// FriendConfig son valores por defecto para un despliegue personal (una sola persona).
type FriendConfig struct {
	DisplayName       string `yaml:"display_name"       env:"FRIEND_DISPLAY_NAME"`
	Birthday          string `yaml:"birthday"           env:"FRIEND_BIRTHDAY"`
	DedicationMessage string `yaml:"dedication_message" env:"DEDICATION_MESSAGE"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	App    string `yaml:"app"    env:"APP_NAME"   env-default:"penguin-pet"`
}

// Addr devuelve la dirección de escucha del servidor HTTP.
func (s ServerConfig) Addr() string {
	return ":" + strconv.Itoa(s.Port)
}

// FallbackModels parsea la lista CSV de modelos alternativos.
func (a AIConfig) FallbackModels() []string {
	raw := strings.TrimSpace(a.FallbackModelsRaw)
	if raw == "" {
		return nil
	}
	out := make([]string, 0)
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ResolvedAPIKey aplica el fallback a GROQ_API_KEY / OPENAI_API_KEY según el provider.
func (a AIConfig) ResolvedAPIKey() string {
	if k := strings.TrimSpace(a.APIKey); k != "" {
		return k
	}
	switch strings.ToLower(strings.TrimSpace(a.Provider)) {
	case ProviderGroq:
		return strings.TrimSpace(a.GroqAPIKey)
	case ProviderOpenAI:
		return strings.TrimSpace(a.OpenAIAPIKey)
	}
	return ""
}

// Enabled indica si hay un backend de IA utilizable.
func (a AIConfig) Enabled() bool {
	return a.ResolvedAPIKey() != ""
}

const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)
