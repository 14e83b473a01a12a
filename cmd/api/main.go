// @title       Penguin Pet API
// @version     1.0
// @description Pingüino virtual: stats con decay, chat scripted/IA, sesión por cookie y mensaje diario.
// @BasePath    /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"penguin-pet/internal/adapters/completion/gemini"
	"penguin-pet/internal/adapters/completion/openai"
	pg "penguin-pet/internal/adapters/storage/postgres"
	"penguin-pet/internal/config"
	"penguin-pet/internal/middleware"
	"penguin-pet/internal/platform/logger"
	"penguin-pet/internal/ports/completion"
	"penguin-pet/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "penguin-pet: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env es opcional; en producción las variables vienen del entorno.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{Config: cfg, Logger: log}

	if cfg.Database.DSN != "" {
		db, err := pg.Open(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		if cfg.Database.AutoMigrate {
			applied, err := pg.Migrate(ctx, db)
			if err != nil {
				return err
			}
			log.Info("db.migrated", map[string]any{"applied": applied})
		}
		opts.DB = db
	} else {
		log.Warn("db.memory", map[string]any{"reason": "DB_DSN vacío, los datos se pierden al reiniciar"})
	}

	completer, err := newCompleter(ctx, cfg.AI)
	if err != nil {
		return err
	}
	opts.Completer = completer
	log.Info("ai.configured", map[string]any{
		"enabled":  completer != nil,
		"provider": cfg.AI.Provider,
	})

	limiter := middleware.NewRateLimiter(cfg.Ask.RateLimitPerMinute, time.Minute)
	limiter.StartSweeper(5 * time.Minute)
	defer limiter.Stop()
	opts.RateLimiter = limiter

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server.start", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("server.shutdown", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// newCompleter devuelve nil (sin error) cuando no hay API key: el chat queda solo con reglas.
func newCompleter(ctx context.Context, ai config.AIConfig) (completion.Completer, error) {
	if !ai.Enabled() {
		return nil, nil
	}
	key := ai.ResolvedAPIKey()
	model := strings.TrimSpace(ai.Model)

	switch strings.ToLower(strings.TrimSpace(ai.Provider)) {
	case config.ProviderGemini:
		return gemini.New(ctx, gemini.Config{
			APIKey:      key,
			Model:       model,
			MaxTokens:   ai.MaxTokens,
			Temperature: &ai.Temperature,
		})

	case config.ProviderOpenAI:
		if model == "" {
			model = openai.OpenAIDefaultModel
		}
		fallbacks := ai.FallbackModels()
		if fallbacks == nil {
			fallbacks = []string{"gpt-3.5-turbo"}
		}
		return openai.New(openai.Config{
			BaseURL:     firstNonEmpty(ai.BaseURL, openai.OpenAIBaseURL),
			APIKey:      key,
			Models:      append([]string{model}, fallbacks...),
			MaxTokens:   ai.MaxTokens,
			Temperature: &ai.Temperature,
		})

	default:
		if model == "" {
			model = openai.GroqDefaultModel
		}
		return openai.New(openai.Config{
			BaseURL:     firstNonEmpty(ai.BaseURL, openai.GroqBaseURL),
			APIKey:      key,
			Models:      append([]string{model}, ai.FallbackModels()...),
			MaxTokens:   ai.MaxTokens,
			Temperature: &ai.Temperature,
		})
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
