package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"penguin-pet/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type HandlerOptions struct {
	// AskTimeout acota todo el request de /ask (IA + lectura de perfil).
	AskTimeout time.Duration
	// RateLimit se aplica solo a POST /ask.
	RateLimit func(http.Handler) http.Handler
}

func RegisterRoutes(r chi.Router, svc *Service, opts HandlerOptions) {
	r.Route("/ask", func(ar chi.Router) {
		post := ar
		if opts.RateLimit != nil {
			post = ar.With(opts.RateLimit)
		}
		post.Post("/", askHandler(svc, opts.AskTimeout))
		ar.Get("/status", statusHandler(svc))
	})
}

type AskRequest struct {
	Question string `json:"question"`
}

type AskResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source" enums:"ai,scripted"`
}

type ErrorResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter,omitempty"`
}

type StatusResponse struct {
	AIConfigured bool `json:"aiConfigured"`
}

// askHandler godoc
// @Summary Preguntarle algo al pingüino
// @Description Responde con IA si está configurada; ante cualquier falla usa respuestas scripted.
// @Tags ask
// @Accept json
// @Produce json
// @Param body body AskRequest true "pregunta (máx 500 caracteres)"
// @Success 200 {object} AskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 429 {object} ErrorResponse
// @Router /ask [post]
func askHandler(svc *Service, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// Body inválido o question no-string => pregunta vacía.
		var req AskRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		reply, err := svc.Ask(ctx, userID, req.Question)
		if err != nil {
			switch {
			case errors.Is(err, ErrQuestionTooLong):
				writeJSON(w, http.StatusBadRequest, ErrorResponse{
					Error: fmt.Sprintf("Message is too long (max %d characters).", svc.MaxQuestionLength()),
				})
			case errors.Is(err, ErrInvalidInput):
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			default:
				writeJSON(w, http.StatusOK, AskResponse{Reply: somethingWentWrong, Source: SourceScripted})
			}
			return
		}
		writeJSON(w, http.StatusOK, AskResponse{Reply: reply.Text, Source: reply.Source})
	}
}

// statusHandler godoc
// @Summary ¿Hay backend de IA configurado?
// @Tags ask
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 401 {string} string "unauthorized"
// @Router /ask/status [get]
func statusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, StatusResponse{AIConfigured: svc.AIConfigured()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
