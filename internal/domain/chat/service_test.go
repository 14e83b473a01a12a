package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"penguin-pet/internal/domain/profiles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPersonas struct {
	persona profiles.Persona
	err     error
}

func (s stubPersonas) Persona(context.Context, string) (profiles.Persona, error) {
	return s.persona, s.err
}

type fakeCompleter struct {
	text   string
	err    error
	block  bool
	system string
	user   string
	calls  int
}

func (f *fakeCompleter) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	f.calls++
	f.system, f.user = systemPrompt, userMessage
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func ana() profiles.Persona {
	name := "Ana"
	return profiles.Persona{DisplayName: &name}
}

func TestAsk_ScriptedWithoutCompleter(t *testing.T) {
	svc := NewService(stubPersonas{persona: ana()}, Options{})

	got, err := svc.Ask(context.Background(), "u1", "Do you love me?")
	require.NoError(t, err)
	assert.Equal(t, SourceScripted, got.Source)
	assert.Equal(t, "I love you so much, Ana! You're my favourite person.", got.Text)
	assert.False(t, svc.AIConfigured())
}

func TestAsk_AIReply(t *testing.T) {
	fc := &fakeCompleter{text: "  Squawk! Hi Ana!  "}
	svc := NewService(stubPersonas{persona: ana()}, Options{Completer: fc})

	got, err := svc.Ask(context.Background(), "u1", " hello ")
	require.NoError(t, err)
	assert.Equal(t, Reply{Text: "Squawk! Hi Ana!", Source: SourceAI}, got)
	assert.Equal(t, "hello", fc.user)
	assert.Contains(t, fc.system, "You are talking to Ana.")
}

func TestAsk_AIFailuresFallBack(t *testing.T) {
	cases := map[string]*fakeCompleter{
		"error": {err: errors.New("boom")},
		"empty": {text: "   "},
	}
	for name, fc := range cases {
		t.Run(name, func(t *testing.T) {
			svc := NewService(stubPersonas{persona: ana()}, Options{Completer: fc})
			got, err := svc.Ask(context.Background(), "u1", "hug me")
			require.NoError(t, err)
			assert.Equal(t, SourceScripted, got.Source)
			assert.Equal(t, "*waddles over and gives you a fluffy hug* You're the best, Ana!", got.Text)
		})
	}
}

func TestAsk_AITimeoutFallsBack(t *testing.T) {
	fc := &fakeCompleter{block: true}
	svc := NewService(stubPersonas{persona: ana()}, Options{Completer: fc, AITimeout: 20 * time.Millisecond})

	start := time.Now()
	got, err := svc.Ask(context.Background(), "u1", "hello")
	require.NoError(t, err)
	assert.Equal(t, SourceScripted, got.Source)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestAsk_EmptyQuestionSkipsAI(t *testing.T) {
	fc := &fakeCompleter{text: "nope"}
	svc := NewService(stubPersonas{persona: ana()}, Options{Completer: fc})

	got, err := svc.Ask(context.Background(), "u1", "   ")
	require.NoError(t, err)
	assert.Equal(t, 0, fc.calls)
	assert.Equal(t, SourceScripted, got.Source)
}

func TestAsk_TooLong(t *testing.T) {
	svc := NewService(stubPersonas{persona: ana()}, Options{})

	_, err := svc.Ask(context.Background(), "u1", strings.Repeat("a", 501))
	assert.ErrorIs(t, err, ErrQuestionTooLong)

	_, err = svc.Ask(context.Background(), "u1", strings.Repeat("ñ", 500))
	assert.NoError(t, err)
}

func TestAsk_PersonaFailureDegrades(t *testing.T) {
	svc := NewService(stubPersonas{err: errors.New("db down")}, Options{})

	got, err := svc.Ask(context.Background(), "u1", "hello")
	require.NoError(t, err)
	assert.Equal(t, Reply{Text: somethingWentWrong, Source: SourceScripted}, got)
}

func TestContextFromPersona(t *testing.T) {
	rc := ContextFromPersona(profiles.Persona{})
	assert.Equal(t, "friend", rc.DisplayName)
	assert.Nil(t, rc.BirthdayFormatted)

	b := time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)
	rc = ContextFromPersona(profiles.Persona{Birthday: &b, IsBirthdayToday: true})
	require.NotNil(t, rc.BirthdayFormatted)
	assert.Equal(t, "1995-06-15", *rc.BirthdayFormatted)
	assert.True(t, rc.IsBirthdayToday)
}
