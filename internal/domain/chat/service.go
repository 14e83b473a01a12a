package chat

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"penguin-pet/internal/domain/profiles"
	"penguin-pet/internal/observability"
	"penguin-pet/internal/platform/logger"
	"penguin-pet/internal/ports/completion"
)

const (
	SourceAI       = "ai"
	SourceScripted = "scripted"

	DefaultMaxQuestionLength = 500
	DefaultAITimeout         = 12 * time.Second

	emptyReply         = "I'm here! Try asking me something."
	somethingWentWrong = "I'm here! Something went wrong on my side. Try again?"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrQuestionTooLong = errors.New("question too long")
)

// PersonaSource resuelve nombre/cumpleaños del usuario (profiles.Service lo implementa).
type PersonaSource interface {
	Persona(ctx context.Context, userID string) (profiles.Persona, error)
}

type Reply struct {
	Text   string
	Source string
}

type Options struct {
	Completer         completion.Completer // nil => solo respuestas scripted
	AITimeout         time.Duration
	MaxQuestionLength int
	Logger            logger.Logger
}

type Service struct {
	personas  PersonaSource
	completer completion.Completer
	aiTimeout time.Duration
	maxLen    int
	log       logger.Logger
}

func NewService(personas PersonaSource, opts Options) *Service {
	if opts.AITimeout <= 0 {
		opts.AITimeout = DefaultAITimeout
	}
	if opts.MaxQuestionLength <= 0 {
		opts.MaxQuestionLength = DefaultMaxQuestionLength
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Service{
		personas:  personas,
		completer: opts.Completer,
		aiTimeout: opts.AITimeout,
		maxLen:    opts.MaxQuestionLength,
		log:       opts.Logger,
	}
}

func (s *Service) AIConfigured() bool {
	return s.completer != nil
}

func (s *Service) MaxQuestionLength() int {
	return s.maxLen
}

// Ask contesta primero con la IA (si hay) y cae a la respuesta scripted ante cualquier fallo.
// Solo devuelve error para input inválido; el resto se degrada a un mensaje genérico.
func (s *Service) Ask(ctx context.Context, userID, question string) (Reply, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Reply{}, ErrInvalidInput
	}
	question = strings.TrimSpace(question)
	if utf8.RuneCountInString(question) > s.maxLen {
		return Reply{}, ErrQuestionTooLong
	}

	persona, err := s.personas.Persona(ctx, userID)
	if err != nil {
		s.log.Error("chat.persona_failed", map[string]any{"user_id": userID, "error": err})
		observability.RecordChatReply(SourceScripted)
		return Reply{Text: somethingWentWrong, Source: SourceScripted}, nil
	}
	rc := ContextFromPersona(persona)

	if s.completer != nil && question != "" {
		if text, ok := s.askAI(ctx, userID, question, rc); ok {
			observability.RecordChatReply(SourceAI)
			return Reply{Text: text, Source: SourceAI}, nil
		}
	}

	text := ScriptedReply(question, rc)
	if text == "" {
		text = emptyReply
	}
	observability.RecordChatReply(SourceScripted)
	return Reply{Text: text, Source: SourceScripted}, nil
}

func (s *Service) askAI(ctx context.Context, userID, question string, rc ReplyContext) (string, bool) {
	aiCtx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	text, err := s.completer.Complete(aiCtx, BuildSystemPrompt(rc), question)
	if err == nil {
		text = strings.TrimSpace(text)
		if text != "" {
			return text, true
		}
		err = completion.ErrEmpty
	}

	observability.RecordAIFailure()
	s.log.Warn("chat.ai_fallback", map[string]any{"user_id": userID, "error": err})
	return "", false
}

// ContextFromPersona: sin nombre => "friend".
func ContextFromPersona(p profiles.Persona) ReplyContext {
	rc := ReplyContext{
		DisplayName:       fallbackName,
		BirthdayFormatted: p.BirthdayFormatted(),
		IsBirthdayToday:   p.IsBirthdayToday,
	}
	if p.DisplayName != nil && *p.DisplayName != "" {
		rc.DisplayName = *p.DisplayName
	}
	return rc
}
